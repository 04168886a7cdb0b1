// Package viewer holds the participant-side sync state machine: it seeds from
// the durable session row, then folds room events into local display state.
// Every transition is idempotent, so replayed or reordered events converge on
// the last received one.
package viewer

import (
	"context"
	"log"
	"sync"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/ws"
)

type Phase int

const (
	Disconnected Phase = iota
	Connecting
	Synced
)

// SessionSnapshot is the durable session state a late joiner seeds from when
// it never saw the share broadcast.
type SessionSnapshot struct {
	PresentationID     *uint
	PollID             *uint
	BankID             *uint
	SlideIndex         int
	TimeoutMinutes     int
	LeaderboardVisible bool
}

type Fetcher interface {
	SessionSnapshot(ctx context.Context, sessionID uint) (*SessionSnapshot, error)
	SlideURLs(ctx context.Context, presentationID uint) ([]string, error)
}

// State is what the display renders. ContentID nil means "nothing shared yet".
type State struct {
	Phase              Phase
	ContentType        string
	ContentID          *uint
	SlideIndex         int
	Slides             []string
	TimeoutMinutes     int
	LeaderboardVisible bool
}

type Viewer struct {
	mu        sync.Mutex
	sessionID uint
	fetcher   Fetcher
	state     State

	// gen invalidates in-flight fetches: a newer accepted event or Close
	// bumps it, and a fetch started under an older value must not apply.
	gen    uint64
	closed bool
}

func New(sessionID uint, fetcher Fetcher) *Viewer {
	return &Viewer{
		sessionID: sessionID,
		fetcher:   fetcher,
		state:     State{Phase: Disconnected, TimeoutMinutes: 3},
	}
}

// Connect performs the initial pull of the session record so a viewer that
// subscribed after a share still ends up displaying the current content.
func (v *Viewer) Connect(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.state.Phase = Connecting
	v.gen++
	g := v.gen
	v.mu.Unlock()

	snap, err := v.fetcher.SessionSnapshot(ctx, v.sessionID)
	if err != nil {
		v.mu.Lock()
		if !v.closed && v.gen == g {
			// Subscribed but unseeded: empty display until the next event.
			v.state.Phase = Synced
		}
		v.mu.Unlock()
		return err
	}

	var slides []string
	if snap.PresentationID != nil {
		slides, err = v.fetcher.SlideURLs(ctx, *snap.PresentationID)
		if err != nil {
			log.Printf("viewer: slide fetch failed: %v", err)
			slides = nil
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || v.gen != g {
		return nil
	}

	v.state.Phase = Synced
	v.state.TimeoutMinutes = snap.TimeoutMinutes
	v.state.LeaderboardVisible = snap.LeaderboardVisible

	switch {
	case snap.PresentationID != nil:
		v.state.ContentType = models.ContentTypePresentation
		v.state.ContentID = snap.PresentationID
		v.state.SlideIndex = snap.SlideIndex
		v.state.Slides = slides
	case snap.PollID != nil:
		v.state.ContentType = models.ContentTypePoll
		v.state.ContentID = snap.PollID
	case snap.BankID != nil:
		v.state.ContentType = models.ContentTypeBank
		v.state.ContentID = snap.BankID
	}
	return nil
}

// HandleEvent folds one room event into state. The last received event is
// authoritative; there is no sequencing.
func (v *Viewer) HandleEvent(ctx context.Context, event ws.Event) {
	switch e := event.(type) {
	case ws.ContentShared:
		v.applyContentShared(ctx, e)
	case ws.SlideChanged:
		v.applySlideChanged(ctx, e)
	case ws.TimerUpdated:
		v.mu.Lock()
		if !v.closed {
			v.state.TimeoutMinutes = e.Minutes
		}
		v.mu.Unlock()
	case ws.LeaderboardToggled:
		v.mu.Lock()
		if !v.closed {
			v.state.LeaderboardVisible = e.Visible
		}
		v.mu.Unlock()
	case ws.SessionStopped:
		v.mu.Lock()
		if !v.closed {
			v.clearContentLocked()
		}
		v.mu.Unlock()
	case ws.ParticipantJoined:
		// Presence only; no display state to change.
	}
}

func (v *Viewer) applyContentShared(ctx context.Context, e ws.ContentShared) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}

	if e.ContentID == nil {
		v.clearContentLocked()
		v.mu.Unlock()
		return
	}

	if v.state.ContentID != nil && *v.state.ContentID == *e.ContentID &&
		v.state.ContentType == e.ContentType {
		v.mu.Unlock()
		return
	}

	v.gen++
	g := v.gen
	v.mu.Unlock()

	// The previously displayed content stays visible while the fetch is in
	// flight; there is no flash-to-empty.
	var slides []string
	if e.ContentType == models.ContentTypePresentation {
		var err error
		slides, err = v.fetcher.SlideURLs(ctx, *e.ContentID)
		if err != nil {
			log.Printf("viewer: content fetch failed, keeping previous: %v", err)
			return
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || v.gen != g {
		return
	}
	v.state.ContentType = e.ContentType
	v.state.ContentID = e.ContentID
	v.state.SlideIndex = 0
	v.state.Slides = slides
}

func (v *Viewer) applySlideChanged(ctx context.Context, e ws.SlideChanged) {
	v.mu.Lock()
	samePresentation := v.state.ContentType == models.ContentTypePresentation &&
		v.state.ContentID != nil && *v.state.ContentID == e.PresentationID
	if v.closed {
		v.mu.Unlock()
		return
	}
	if samePresentation {
		// Index-only update within the same deck, no re-fetch.
		v.state.SlideIndex = e.Index
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()

	id := e.PresentationID
	v.applyContentShared(ctx, ws.ContentShared{
		ContentType: models.ContentTypePresentation,
		ContentID:   &id,
	})

	v.mu.Lock()
	if !v.closed && v.state.ContentID != nil && *v.state.ContentID == e.PresentationID {
		v.state.SlideIndex = e.Index
	}
	v.mu.Unlock()
}

func (v *Viewer) clearContentLocked() {
	v.gen++
	v.state.ContentType = ""
	v.state.ContentID = nil
	v.state.SlideIndex = 0
	v.state.Slides = nil
}

// Close tears the viewer down. No event or late-resolving fetch mutates state
// afterwards.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.gen++
	v.state.Phase = Disconnected
}

func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	st := v.state
	st.Slides = append([]string(nil), v.state.Slides...)
	return st
}
