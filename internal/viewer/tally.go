package viewer

import (
	"context"
	"log"
	"sync"
)

type TallySource interface {
	Tally(pollID, sessionID uint) ([]int, error)
}

// TallyView keeps the last successfully computed vote counts for one poll.
// A failed refresh leaves the previous counts displayed; stale beats blank.
type TallyView struct {
	mu        sync.Mutex
	source    TallySource
	pollID    uint
	sessionID uint
	counts    []int
}

func NewTallyView(source TallySource, pollID, sessionID uint) *TallyView {
	return &TallyView{source: source, pollID: pollID, sessionID: sessionID}
}

// Refresh recomputes the tally. Called on every relevant change notification.
func (t *TallyView) Refresh(ctx context.Context) error {
	counts, err := t.source.Tally(t.pollID, t.sessionID)
	if err != nil {
		log.Printf("viewer: tally refresh failed, keeping previous: %v", err)
		return err
	}

	t.mu.Lock()
	t.counts = counts
	t.mu.Unlock()
	return nil
}

func (t *TallyView) Counts() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]int(nil), t.counts...)
}
