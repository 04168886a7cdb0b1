package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"

	"gorm.io/gorm"
)

// ErrNotOwner is returned when a caller tries to mutate a session owned by a
// different teacher. Sessions have exactly one writer.
var ErrNotOwner = errors.New("not the session owner")

var ErrSessionInactive = errors.New("session is not active")

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

func (s *SessionService) CreateSession(teacherID uint) (*models.Session, error) {
	session := models.Session{
		TeacherID: teacherID,
		Active:    true,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) GetSession(sessionID uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, errors.New("session not found")
	}
	return &session, nil
}

// ownedSession loads a session and enforces the single-writer rule. The
// ownership check is deliberate here in the service, not assumed from
// infrastructure.
func (s *SessionService) ownedSession(sessionID, teacherID uint) (*models.Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.TeacherID != teacherID {
		return nil, ErrNotOwner
	}
	return session, nil
}

// StopSession soft-stops: active goes false, the row is never deleted.
func (s *SessionService) StopSession(sessionID, teacherID uint) (*models.Session, error) {
	session, err := s.ownedSession(sessionID, teacherID)
	if err != nil {
		return nil, err
	}

	session.Active = false
	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// ShareContent persists the shared content reference for the session. The
// caller broadcasts only after this succeeds; a failed persist must suppress
// the broadcast. A nil contentID clears the field.
func (s *SessionService) ShareContent(sessionID, teacherID uint, contentType string, contentID *uint) (*models.Session, error) {
	session, err := s.ownedSession(sessionID, teacherID)
	if err != nil {
		return nil, err
	}
	if !session.Active {
		return nil, ErrSessionInactive
	}

	switch contentType {
	case models.ContentTypePresentation:
		if contentID != nil {
			var count int64
			s.db.Model(&models.Presentation{}).
				Where("id = ? AND teacher_id = ?", *contentID, teacherID).Count(&count)
			if count == 0 {
				return nil, errors.New("presentation not found")
			}
		}
		session.PresentationID = contentID
		session.SlideIndex = 0
	case models.ContentTypePoll:
		if contentID != nil {
			var count int64
			s.db.Model(&models.Poll{}).
				Where("id = ? AND teacher_id = ?", *contentID, teacherID).Count(&count)
			if count == 0 {
				return nil, errors.New("poll not found")
			}
		}
		session.PollID = contentID
	case models.ContentTypeBank:
		if contentID != nil {
			var count int64
			s.db.Model(&models.QuestionBank{}).
				Where("id = ? AND teacher_id = ?", *contentID, teacherID).Count(&count)
			if count == 0 {
				return nil, errors.New("question bank not found")
			}
		}
		session.BankID = contentID
	default:
		return nil, errors.New("invalid content type")
	}

	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// SetSlide persists the slide index for the currently shared presentation.
func (s *SessionService) SetSlide(sessionID, teacherID uint, index int) (*models.Session, error) {
	session, err := s.ownedSession(sessionID, teacherID)
	if err != nil {
		return nil, err
	}
	if session.PresentationID == nil {
		return nil, errors.New("no presentation shared")
	}
	if index < 0 {
		return nil, errors.New("invalid slide index")
	}

	session.SlideIndex = index
	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) SetTimeout(sessionID, teacherID uint, minutes int) (*models.Session, error) {
	session, err := s.ownedSession(sessionID, teacherID)
	if err != nil {
		return nil, err
	}
	if minutes < 1 {
		return nil, errors.New("timeout must be at least one minute")
	}

	session.TimeoutMinutes = minutes
	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) SetLeaderboardVisible(sessionID, teacherID uint, visible bool) (*models.Session, error) {
	session, err := s.ownedSession(sessionID, teacherID)
	if err != nil {
		return nil, err
	}

	session.LeaderboardVisible = visible
	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

type JoinResult struct {
	Session    models.Session    `json:"session"`
	Attendance models.Attendance `json:"attendance"`
	RoomID     int               `json:"room_id"`
	IsRejoin   bool              `json:"is_rejoin"`
}

// JoinSession validates a session code, records attendance and hands back the
// room id the viewer should subscribe to. Rejoining with the same regno
// returns the original attendance row.
func (s *SessionService) JoinSession(code, name, rollNo, regNo string) (*JoinResult, error) {
	sessionID, err := strconv.ParseUint(code, 10, 64)
	if err != nil {
		return nil, errors.New("invalid session code")
	}

	var session models.Session
	if err := s.db.Where("id = ? AND active = ?", uint(sessionID), true).
		First(&session).Error; err != nil {
		return nil, errors.New("invalid or inactive session code")
	}

	var teacher models.Teacher
	if err := s.db.First(&teacher, session.TeacherID).Error; err != nil {
		return nil, errors.New("session owner not found")
	}

	var existing models.Attendance
	if err := s.db.Where("session_id = ? AND reg_no = ?", session.ID, regNo).
		First(&existing).Error; err == nil {
		return &JoinResult{Session: session, Attendance: existing, RoomID: teacher.RoomID, IsRejoin: true}, nil
	}

	attendance := models.Attendance{
		SessionID: session.ID,
		RegNo:     regNo,
		RollNo:    rollNo,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&attendance).Error; err != nil {
		return nil, errors.New("failed to join session")
	}

	return &JoinResult{Session: session, Attendance: attendance, RoomID: teacher.RoomID}, nil
}

func (s *SessionService) Attendance(sessionID, teacherID uint) ([]models.Attendance, error) {
	if _, err := s.ownedSession(sessionID, teacherID); err != nil {
		return nil, err
	}

	var records []models.Attendance
	if err := s.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *SessionService) ParticipantCount(sessionID uint) (int, error) {
	var count int64
	if err := s.db.Model(&models.Attendance{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *SessionService) ListSessions(teacherID uint) ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// RoomID resolves the broadcast scope for a session.
func (s *SessionService) RoomID(sessionID uint) (int, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return 0, err
	}
	var teacher models.Teacher
	if err := s.db.First(&teacher, session.TeacherID).Error; err != nil {
		return 0, errors.New("session owner not found")
	}
	return teacher.RoomID, nil
}
