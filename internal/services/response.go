package services

import (
	"errors"
	"time"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseService struct {
	db *gorm.DB
}

func NewResponseService(db *gorm.DB) *ResponseService {
	return &ResponseService{db: db}
}

// SubmitPollAnswer upserts on (session, poll, regno): last write wins, no
// history kept. The upsert is a single ON CONFLICT statement so concurrent
// first answers from the same student cannot trip the unique index.
func (s *ResponseService) SubmitPollAnswer(regNo string, pollID, sessionID uint, optionIndex int) error {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return errors.New("session not found")
	}
	if !session.Active {
		return ErrSessionInactive
	}

	var poll models.Poll
	if err := s.db.Preload("Options").First(&poll, pollID).Error; err != nil {
		return errors.New("poll not found")
	}
	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return errors.New("option index out of range")
	}

	response := models.PollResponse{
		SessionID:   sessionID,
		PollID:      pollID,
		RegNo:       regNo,
		OptionIndex: optionIndex,
		AnsweredAt:  time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "poll_id"}, {Name: "reg_no"}},
		DoUpdates: clause.AssignmentColumns([]string{"option_index", "answered_at"}),
	}).Create(&response).Error
}

// Tally recounts every response row for the poll within the session. Full
// recount on every call; classroom volumes make incremental maintenance not
// worth having.
func (s *ResponseService) Tally(pollID, sessionID uint) ([]int, error) {
	var poll models.Poll
	if err := s.db.Preload("Options").First(&poll, pollID).Error; err != nil {
		return nil, errors.New("poll not found")
	}

	var responses []models.PollResponse
	if err := s.db.Where("session_id = ? AND poll_id = ?", sessionID, pollID).
		Find(&responses).Error; err != nil {
		return nil, err
	}

	counts := make([]int, len(poll.Options))
	for _, r := range responses {
		if r.OptionIndex >= 0 && r.OptionIndex < len(counts) {
			counts[r.OptionIndex]++
		}
	}
	return counts, nil
}

// SubmitQuizScore inserts the aggregate score once per (session, bank, regno).
// An existing row wins: later submissions for the same key are silently
// dropped. This is the server-side half of the duplicate guard; the viewer's
// submitted flag only saves the network call.
func (s *ResponseService) SubmitQuizScore(regNo string, bankID, sessionID uint, totalScore, elapsedSeconds int) error {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return errors.New("session not found")
	}

	var count int64
	if err := s.db.Model(&models.LeaderboardRow{}).
		Where("session_id = ? AND bank_id = ? AND reg_no = ?", sessionID, bankID, regNo).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	row := models.LeaderboardRow{
		SessionID:      sessionID,
		BankID:         bankID,
		RegNo:          regNo,
		TotalScore:     totalScore,
		ElapsedSeconds: elapsedSeconds,
		CreatedAt:      time.Now(),
	}
	return s.db.Create(&row).Error
}
