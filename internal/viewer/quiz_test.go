package viewer

import (
	"errors"
	"testing"
	"time"
)

type fakeSubmitter struct {
	calls []submittedScore
	err   error
}

type submittedScore struct {
	regNo          string
	bankID         uint
	sessionID      uint
	totalScore     int
	elapsedSeconds int
}

func (f *fakeSubmitter) SubmitQuizScore(regNo string, bankID, sessionID uint, totalScore, elapsedSeconds int) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, submittedScore{regNo, bankID, sessionID, totalScore, elapsedSeconds})
	return nil
}

func threeQuestions() []QuizQuestion {
	return []QuizQuestion{
		{Text: "q1", Options: []string{"a", "b"}, CorrectIndex: 0},
		{Text: "q2", Options: []string{"a", "b"}, CorrectIndex: 1},
		{Text: "q3", Options: []string{"a", "b"}, CorrectIndex: 1},
	}
}

func TestQuizScoring(t *testing.T) {
	p := NewQuizProgress("21CS001", 42, &fakeSubmitter{})
	p.Start(7, threeQuestions())

	if !p.Answer(0, 0) {
		t.Error("correct answer reported as wrong")
	}
	if p.Answer(1, 0) {
		t.Error("wrong answer reported as correct")
	}
	if !p.Answer(2, 1) {
		t.Error("correct answer reported as wrong")
	}

	if p.CorrectCount() != 2 {
		t.Errorf("expected 2 correct, got %d", p.CorrectCount())
	}
	if !p.AllAnswered() {
		t.Error("all questions answered but AllAnswered is false")
	}
}

func TestQuizAnswerOncePerQuestion(t *testing.T) {
	p := NewQuizProgress("21CS001", 42, &fakeSubmitter{})
	p.Start(7, threeQuestions())

	p.Answer(0, 1) // wrong
	if p.Answer(0, 0) {
		t.Error("second answer to the same question must be ignored")
	}
	if p.CorrectCount() != 0 {
		t.Errorf("retried answer changed the score: %d", p.CorrectCount())
	}

	if p.Answer(-1, 0) || p.Answer(99, 0) {
		t.Error("out-of-range question index must be ignored")
	}
}

func TestQuizSubmitOnce(t *testing.T) {
	submitter := &fakeSubmitter{}
	p := NewQuizProgress("21CS001", 42, submitter)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	current := start
	p.now = func() time.Time { return current }

	p.Start(7, threeQuestions())
	p.Answer(0, 0)
	p.Answer(1, 1)
	p.Answer(2, 0)

	current = start.Add(95 * time.Second)
	if err := p.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	// Repeat submits stay local; nothing else goes over the wire.
	if err := p.Submit(); err != nil {
		t.Fatalf("repeat submit: %v", err)
	}

	if len(submitter.calls) != 1 {
		t.Fatalf("expected exactly one submission, got %d", len(submitter.calls))
	}
	got := submitter.calls[0]
	if got.regNo != "21CS001" || got.bankID != 7 || got.sessionID != 42 {
		t.Errorf("wrong submission key: %+v", got)
	}
	if got.totalScore != 2 {
		t.Errorf("expected score 2, got %d", got.totalScore)
	}
	if got.elapsedSeconds != 95 {
		t.Errorf("expected 95 elapsed seconds, got %d", got.elapsedSeconds)
	}
}

func TestQuizSubmitFailureAllowsRetry(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("network down")}
	p := NewQuizProgress("21CS001", 42, submitter)
	p.Start(7, threeQuestions())
	p.Answer(0, 0)

	if err := p.Submit(); err == nil {
		t.Fatal("failed submission must surface the error")
	}

	// The flag stays unset, so the retry actually sends.
	submitter.err = nil
	if err := p.Submit(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(submitter.calls) != 1 {
		t.Fatalf("expected one successful submission, got %d", len(submitter.calls))
	}
}

func TestQuizSubmitWithoutBank(t *testing.T) {
	p := NewQuizProgress("21CS001", 42, &fakeSubmitter{})
	if err := p.Submit(); err == nil {
		t.Error("submit with no bank in progress must fail")
	}
}

func TestQuizSwitchBankSubmitsPrevious(t *testing.T) {
	submitter := &fakeSubmitter{}
	p := NewQuizProgress("21CS001", 42, submitter)

	p.Start(1, threeQuestions())
	p.Answer(0, 0)

	if err := p.SwitchBank(2, threeQuestions()); err != nil {
		t.Fatalf("switch: %v", err)
	}

	if len(submitter.calls) != 1 || submitter.calls[0].bankID != 1 {
		t.Fatalf("switching banks must submit the previous one: %+v", submitter.calls)
	}
	if p.CorrectCount() != 0 {
		t.Errorf("new bank must start fresh, got %d correct", p.CorrectCount())
	}
	if p.AllAnswered() {
		t.Error("new bank reported as fully answered")
	}
}
