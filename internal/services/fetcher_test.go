package services

import (
	"context"
	"testing"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/viewer"
)

// Runs the viewer sync against the real stores: a late joiner connecting
// after a share must come up displaying the current deck at the current
// slide.
func TestViewerFetcherLateJoin(t *testing.T) {
	db := testDB(t)
	teacher := seedTeacher(t, db, "t@test.edu", 1234)
	session := seedSession(t, db, teacher.ID, true)

	sessions := NewSessionService(db)
	content := NewContentService(db)

	pres, err := content.CreatePresentation(teacher.ID, "Deck", []string{"s0.png", "s1.png", "s2.png"})
	if err != nil {
		t.Fatalf("create presentation: %v", err)
	}
	if _, err := sessions.ShareContent(session.ID, teacher.ID, models.ContentTypePresentation, &pres.ID); err != nil {
		t.Fatalf("share: %v", err)
	}
	if _, err := sessions.SetSlide(session.ID, teacher.ID, 1); err != nil {
		t.Fatalf("set slide: %v", err)
	}

	v := viewer.New(session.ID, NewViewerFetcher(sessions, content))
	if err := v.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}

	st := v.State()
	if st.ContentType != models.ContentTypePresentation || st.ContentID == nil || *st.ContentID != pres.ID {
		t.Fatalf("late joiner missed the shared deck: %+v", st)
	}
	if st.SlideIndex != 1 {
		t.Errorf("expected slide index 1, got %d", st.SlideIndex)
	}
	if len(st.Slides) != 3 || st.Slides[1] != "s1.png" {
		t.Errorf("slide urls wrong or unordered: %v", st.Slides)
	}
}

func TestViewerFetcherUnknownSession(t *testing.T) {
	db := testDB(t)
	sessions := NewSessionService(db)
	content := NewContentService(db)

	v := viewer.New(999, NewViewerFetcher(sessions, content))
	if err := v.Connect(context.Background()); err == nil {
		t.Error("connecting to an unknown session must error")
	}
}
