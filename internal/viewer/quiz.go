package viewer

import (
	"errors"
	"sync"
	"time"
)

type ScoreSubmitter interface {
	SubmitQuizScore(regNo string, bankID, sessionID uint, totalScore, elapsedSeconds int) error
}

type QuizQuestion struct {
	Text         string
	Options      []string
	CorrectIndex int
}

// QuizProgress evaluates answers locally and accumulates a running correct
// count for the currently shared bank. Submission happens at most once per
// bank from this side; the real duplicate guard is server-side.
type QuizProgress struct {
	mu        sync.Mutex
	regNo     string
	sessionID uint
	submitter ScoreSubmitter
	now       func() time.Time

	bankID    uint
	questions []QuizQuestion
	answered  map[int]bool
	correct   int
	startedAt time.Time
	submitted bool
}

func NewQuizProgress(regNo string, sessionID uint, submitter ScoreSubmitter) *QuizProgress {
	return &QuizProgress{
		regNo:     regNo,
		sessionID: sessionID,
		submitter: submitter,
		now:       time.Now,
	}
}

// Start resets progress for a freshly shared bank.
func (p *QuizProgress) Start(bankID uint, questions []QuizQuestion) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bankID = bankID
	p.questions = questions
	p.answered = make(map[int]bool)
	p.correct = 0
	p.startedAt = p.now()
	p.submitted = false
}

// Answer records one answer for one question. A question can only be answered
// once; repeats are ignored. Returns whether the answer was correct.
func (p *QuizProgress) Answer(questionIndex, optionIndex int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if questionIndex < 0 || questionIndex >= len(p.questions) {
		return false
	}
	if p.answered[questionIndex] {
		return false
	}
	p.answered[questionIndex] = true

	q := p.questions[questionIndex]
	if optionIndex == q.CorrectIndex {
		p.correct++
		return true
	}
	return false
}

func (p *QuizProgress) AllAnswered() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.questions) > 0 && len(p.answered) == len(p.questions)
}

func (p *QuizProgress) CorrectCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.correct
}

// Submit pushes the aggregate score once. The submitted flag only avoids the
// redundant network call; a failed submit leaves it unset so the caller can
// retry, and the server drops any duplicate that slips through.
func (p *QuizProgress) Submit() error {
	p.mu.Lock()
	if p.submitted {
		p.mu.Unlock()
		return nil
	}
	if p.bankID == 0 {
		p.mu.Unlock()
		return errors.New("no bank in progress")
	}
	regNo := p.regNo
	bankID := p.bankID
	sessionID := p.sessionID
	score := p.correct
	elapsed := int(p.now().Sub(p.startedAt) / time.Second)
	p.mu.Unlock()

	if err := p.submitter.SubmitQuizScore(regNo, bankID, sessionID, score, elapsed); err != nil {
		return err
	}

	p.mu.Lock()
	p.submitted = true
	p.mu.Unlock()
	return nil
}

// SwitchBank submits the in-progress bank, then starts the new one. Called on
// a bank-switch broadcast.
func (p *QuizProgress) SwitchBank(bankID uint, questions []QuizQuestion) error {
	var submitErr error
	p.mu.Lock()
	hasBank := p.bankID != 0
	p.mu.Unlock()
	if hasBank {
		submitErr = p.Submit()
	}
	p.Start(bankID, questions)
	return submitErr
}
