package ws

import (
	"encoding/json"
	"fmt"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"
)

// Room events form a closed set. Everything that goes over a room channel is
// one of the payload types below, wrapped in an Envelope; Decode rejects
// anything else at the boundary.

const (
	TypeContentShared      = "content_shared"
	TypeSlideChanged       = "slide_changed"
	TypeTimerUpdated       = "timer_updated"
	TypeLeaderboardToggled = "leaderboard_toggled"
	TypeSessionStopped     = "session_stopped"
	TypeParticipantJoined  = "participant_joined"
)

type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type Event interface {
	EventType() string
}

// ContentShared announces the currently shared content item. A nil ContentID
// clears the display ("nothing shared yet").
type ContentShared struct {
	ContentType string `json:"content_type"`
	ContentID   *uint  `json:"content_id"`
}

func (ContentShared) EventType() string { return TypeContentShared }

// SlideChanged advances the slide index within a presentation.
type SlideChanged struct {
	PresentationID uint `json:"presentation_id"`
	Index          int  `json:"index"`
}

func (SlideChanged) EventType() string { return TypeSlideChanged }

type TimerUpdated struct {
	Minutes int `json:"minutes"`
}

func (TimerUpdated) EventType() string { return TypeTimerUpdated }

type LeaderboardToggled struct {
	Visible bool `json:"visible"`
}

func (LeaderboardToggled) EventType() string { return TypeLeaderboardToggled }

type SessionStopped struct {
	SessionID uint `json:"session_id"`
}

func (SessionStopped) EventType() string { return TypeSessionStopped }

type ParticipantJoined struct {
	RegNo string `json:"regno"`
	Name  string `json:"name"`
}

func (ParticipantJoined) EventType() string { return TypeParticipantJoined }

func Marshal(e Event) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: e.EventType(), Payload: payload})
}

// Decode parses a wire message into a concrete event. Unknown event types and
// malformed payloads are errors, not pass-throughs.
func Decode(data []byte) (Event, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("event: invalid envelope: %w", err)
	}

	switch env.Type {
	case TypeContentShared:
		var e ContentShared
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("event: bad %s payload: %w", env.Type, err)
		}
		if e.ContentID != nil && !validContentType(e.ContentType) {
			return nil, fmt.Errorf("event: unknown content type %q", e.ContentType)
		}
		return e, nil
	case TypeSlideChanged:
		var e SlideChanged
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("event: bad %s payload: %w", env.Type, err)
		}
		if e.Index < 0 {
			return nil, fmt.Errorf("event: negative slide index %d", e.Index)
		}
		return e, nil
	case TypeTimerUpdated:
		var e TimerUpdated
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("event: bad %s payload: %w", env.Type, err)
		}
		return e, nil
	case TypeLeaderboardToggled:
		var e LeaderboardToggled
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("event: bad %s payload: %w", env.Type, err)
		}
		return e, nil
	case TypeSessionStopped:
		var e SessionStopped
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("event: bad %s payload: %w", env.Type, err)
		}
		return e, nil
	case TypeParticipantJoined:
		var e ParticipantJoined
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("event: bad %s payload: %w", env.Type, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("event: unknown type %q", env.Type)
	}
}

func validContentType(t string) bool {
	switch t {
	case models.ContentTypePresentation, models.ContentTypePoll, models.ContentTypeBank:
		return true
	}
	return false
}
