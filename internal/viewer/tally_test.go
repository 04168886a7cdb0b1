package viewer

import (
	"context"
	"errors"
	"testing"
)

type fakeTallySource struct {
	counts []int
	err    error
}

func (f *fakeTallySource) Tally(pollID, sessionID uint) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

func TestTallyRefreshKeepsStaleOnFailure(t *testing.T) {
	source := &fakeTallySource{counts: []int{3, 1, 0}}
	view := NewTallyView(source, 7, 42)

	if err := view.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	got := view.Counts()
	if len(got) != 3 || got[0] != 3 {
		t.Fatalf("unexpected counts: %v", got)
	}

	// Recount fails; the stale counts stay on display.
	source.err = errors.New("db unavailable")
	if err := view.Refresh(context.Background()); err == nil {
		t.Fatal("failed refresh must return the error")
	}
	got = view.Counts()
	if len(got) != 3 || got[0] != 3 || got[1] != 1 {
		t.Errorf("failed refresh replaced the previous counts: %v", got)
	}

	// Next successful recount replaces them.
	source.err = nil
	source.counts = []int{4, 1, 1}
	if err := view.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh after recovery: %v", err)
	}
	got = view.Counts()
	if got[0] != 4 || got[2] != 1 {
		t.Errorf("recovered refresh not applied: %v", got)
	}
}

func TestTallyCountsCopy(t *testing.T) {
	source := &fakeTallySource{counts: []int{1, 2}}
	view := NewTallyView(source, 7, 42)
	view.Refresh(context.Background())

	got := view.Counts()
	got[0] = 99
	if view.Counts()[0] != 1 {
		t.Error("Counts must return a copy")
	}
}
