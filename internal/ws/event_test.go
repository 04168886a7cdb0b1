package ws

import (
	"testing"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"
)

func TestDecodeRoundTrip(t *testing.T) {
	pollID := uint(7)
	events := []Event{
		ContentShared{ContentType: models.ContentTypePoll, ContentID: &pollID},
		ContentShared{ContentType: models.ContentTypePoll, ContentID: nil},
		SlideChanged{PresentationID: 3, Index: 5},
		TimerUpdated{Minutes: 2},
		LeaderboardToggled{Visible: true},
		SessionStopped{SessionID: 42},
		ParticipantJoined{RegNo: "21CS001", Name: "Hari"},
	}

	for _, e := range events {
		data, err := Marshal(e)
		if err != nil {
			t.Fatalf("marshal %T: %v", e, err)
		}
		decoded, err := Decode(data)
		if err != nil {
			t.Fatalf("decode %T: %v", e, err)
		}
		if decoded.EventType() != e.EventType() {
			t.Errorf("round trip changed type: %s -> %s", e.EventType(), decoded.EventType())
		}
	}
}

func TestDecodeContentSharedPayload(t *testing.T) {
	id := uint(9)
	data, err := Marshal(ContentShared{ContentType: models.ContentTypePresentation, ContentID: &id})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	e, ok := decoded.(ContentShared)
	if !ok {
		t.Fatalf("expected ContentShared, got %T", decoded)
	}
	if e.ContentID == nil || *e.ContentID != 9 {
		t.Errorf("content id lost in transit: %v", e.ContentID)
	}
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	if _, err := Decode([]byte(`{"type":"mystery_event","payload":{}}`)); err == nil {
		t.Error("unknown event type must be rejected")
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []string{
		`not json`,
		`{"type":"slide_changed","payload":{"presentation_id":1,"index":-2}}`,
		`{"type":"content_shared","payload":{"content_type":"video","content_id":1}}`,
		`{"type":"timer_updated","payload":"nope"}`,
	}
	for _, c := range cases {
		if _, err := Decode([]byte(c)); err == nil {
			t.Errorf("expected error for %s", c)
		}
	}
}

func TestDecodeAllowsClearWithoutContentType(t *testing.T) {
	// A clear carries a nil id; the content type is not checked then.
	e, err := Decode([]byte(`{"type":"content_shared","payload":{"content_type":"","content_id":null}}`))
	if err != nil {
		t.Fatalf("decode clear: %v", err)
	}
	cs, ok := e.(ContentShared)
	if !ok || cs.ContentID != nil {
		t.Errorf("expected clear event, got %+v", e)
	}
}
