package services

import (
	"strconv"
	"testing"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"
)

func TestShareContentPersists(t *testing.T) {
	db := testDB(t)
	teacher := seedTeacher(t, db, "t@test.edu", 1234)
	session := seedSession(t, db, teacher.ID, true)
	poll := seedPoll(t, db, teacher.ID, "a", "b")

	svc := NewSessionService(db)

	updated, err := svc.ShareContent(session.ID, teacher.ID, models.ContentTypePoll, &poll.ID)
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if updated.PollID == nil || *updated.PollID != poll.ID {
		t.Error("poll id not persisted on session")
	}

	// Reload from the database; the shared reference must be durable.
	var stored models.Session
	db.First(&stored, session.ID)
	if stored.PollID == nil || *stored.PollID != poll.ID {
		t.Error("poll id not durable")
	}
}

func TestShareContentClears(t *testing.T) {
	db := testDB(t)
	teacher := seedTeacher(t, db, "t@test.edu", 1234)
	session := seedSession(t, db, teacher.ID, true)
	poll := seedPoll(t, db, teacher.ID, "a", "b")

	svc := NewSessionService(db)
	if _, err := svc.ShareContent(session.ID, teacher.ID, models.ContentTypePoll, &poll.ID); err != nil {
		t.Fatalf("share: %v", err)
	}
	updated, err := svc.ShareContent(session.ID, teacher.ID, models.ContentTypePoll, nil)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if updated.PollID != nil {
		t.Error("nil content id must clear the shared reference")
	}
}

func TestShareContentRejectsForeignContent(t *testing.T) {
	db := testDB(t)
	owner := seedTeacher(t, db, "owner@test.edu", 1234)
	other := seedTeacher(t, db, "other@test.edu", 5678)
	session := seedSession(t, db, owner.ID, true)
	foreignPoll := seedPoll(t, db, other.ID, "a", "b")

	svc := NewSessionService(db)
	if _, err := svc.ShareContent(session.ID, owner.ID, models.ContentTypePoll, &foreignPoll.ID); err == nil {
		t.Error("sharing another teacher's content must fail")
	}
}

func TestShareContentResetsSlideIndex(t *testing.T) {
	db := testDB(t)
	teacher := seedTeacher(t, db, "t@test.edu", 1234)
	session := seedSession(t, db, teacher.ID, true)

	pres := models.Presentation{TeacherID: teacher.ID, Title: "Deck"}
	if err := db.Create(&pres).Error; err != nil {
		t.Fatalf("seed presentation: %v", err)
	}

	svc := NewSessionService(db)
	if _, err := svc.ShareContent(session.ID, teacher.ID, models.ContentTypePresentation, &pres.ID); err != nil {
		t.Fatalf("share: %v", err)
	}
	if _, err := svc.SetSlide(session.ID, teacher.ID, 4); err != nil {
		t.Fatalf("set slide: %v", err)
	}

	pres2 := models.Presentation{TeacherID: teacher.ID, Title: "Deck 2"}
	if err := db.Create(&pres2).Error; err != nil {
		t.Fatalf("seed presentation 2: %v", err)
	}
	updated, err := svc.ShareContent(session.ID, teacher.ID, models.ContentTypePresentation, &pres2.ID)
	if err != nil {
		t.Fatalf("share 2: %v", err)
	}
	if updated.SlideIndex != 0 {
		t.Errorf("sharing a new deck must reset slide index, got %d", updated.SlideIndex)
	}
}

func TestSingleWriterAuthorization(t *testing.T) {
	db := testDB(t)
	owner := seedTeacher(t, db, "owner@test.edu", 1234)
	intruder := seedTeacher(t, db, "intruder@test.edu", 5678)
	session := seedSession(t, db, owner.ID, true)
	poll := seedPoll(t, db, intruder.ID, "a", "b")

	svc := NewSessionService(db)

	if _, err := svc.ShareContent(session.ID, intruder.ID, models.ContentTypePoll, &poll.ID); err != ErrNotOwner {
		t.Errorf("share by non-owner: expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.StopSession(session.ID, intruder.ID); err != ErrNotOwner {
		t.Errorf("stop by non-owner: expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.SetTimeout(session.ID, intruder.ID, 5); err != ErrNotOwner {
		t.Errorf("timer by non-owner: expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.SetLeaderboardVisible(session.ID, intruder.ID, true); err != ErrNotOwner {
		t.Errorf("toggle by non-owner: expected ErrNotOwner, got %v", err)
	}

	var stored models.Session
	db.First(&stored, session.ID)
	if !stored.Active || stored.PollID != nil {
		t.Error("rejected writes must leave the session untouched")
	}
}

func TestStopSessionSoft(t *testing.T) {
	db := testDB(t)
	teacher := seedTeacher(t, db, "t@test.edu", 1234)
	session := seedSession(t, db, teacher.ID, true)

	svc := NewSessionService(db)
	stopped, err := svc.StopSession(session.ID, teacher.ID)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if stopped.Active {
		t.Error("stopped session still active")
	}

	// The row survives for reports.
	var stored models.Session
	if err := db.First(&stored, session.ID).Error; err != nil {
		t.Fatalf("stopped session row deleted: %v", err)
	}
}

func TestShareOnStoppedSession(t *testing.T) {
	db := testDB(t)
	teacher := seedTeacher(t, db, "t@test.edu", 1234)
	session := seedSession(t, db, teacher.ID, false)
	poll := seedPoll(t, db, teacher.ID, "a", "b")

	svc := NewSessionService(db)
	if _, err := svc.ShareContent(session.ID, teacher.ID, models.ContentTypePoll, &poll.ID); err != ErrSessionInactive {
		t.Errorf("expected ErrSessionInactive, got %v", err)
	}
}

func TestSetSlideRequiresPresentation(t *testing.T) {
	db := testDB(t)
	teacher := seedTeacher(t, db, "t@test.edu", 1234)
	session := seedSession(t, db, teacher.ID, true)

	svc := NewSessionService(db)
	if _, err := svc.SetSlide(session.ID, teacher.ID, 1); err == nil {
		t.Error("slide change without a shared presentation must fail")
	}
}

func TestJoinSession(t *testing.T) {
	db := testDB(t)
	teacher := seedTeacher(t, db, "t@test.edu", 4321)
	session := seedSession(t, db, teacher.ID, true)

	svc := NewSessionService(db)
	code := strconv.FormatUint(uint64(session.ID), 10)

	result, err := svc.JoinSession(code, "Hari", "45", "21CS001")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if result.RoomID != 4321 {
		t.Errorf("expected room id 4321, got %d", result.RoomID)
	}
	if result.IsRejoin {
		t.Error("first join flagged as rejoin")
	}

	// Rejoining with the same regno reuses the attendance row.
	again, err := svc.JoinSession(code, "Hari", "45", "21CS001")
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if !again.IsRejoin {
		t.Error("second join not flagged as rejoin")
	}
	if again.Attendance.ID != result.Attendance.ID {
		t.Error("rejoin created a second attendance row")
	}

	count, err := svc.ParticipantCount(session.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 participant, got %d", count)
	}
}

func TestJoinInactiveSession(t *testing.T) {
	db := testDB(t)
	teacher := seedTeacher(t, db, "t@test.edu", 1234)
	session := seedSession(t, db, teacher.ID, false)

	svc := NewSessionService(db)
	code := strconv.FormatUint(uint64(session.ID), 10)
	if _, err := svc.JoinSession(code, "Hari", "45", "21CS001"); err == nil {
		t.Error("joining a stopped session must fail")
	}
	if _, err := svc.JoinSession("not-a-code", "Hari", "45", "21CS001"); err == nil {
		t.Error("malformed code must fail")
	}
}

func TestAttendanceOwnerOnly(t *testing.T) {
	db := testDB(t)
	owner := seedTeacher(t, db, "owner@test.edu", 1234)
	intruder := seedTeacher(t, db, "intruder@test.edu", 5678)
	session := seedSession(t, db, owner.ID, true)

	svc := NewSessionService(db)
	if _, err := svc.Attendance(session.ID, intruder.ID); err != ErrNotOwner {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.Attendance(session.ID, owner.ID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
}
