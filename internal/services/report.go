package services

import (
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"

	"gorm.io/gorm"
)

type ReportService struct {
	db          *gorm.DB
	sessions    *SessionService
	responses   *ResponseService
	leaderboard *LeaderboardService
}

func NewReportService(db *gorm.DB, sessions *SessionService, responses *ResponseService, leaderboard *LeaderboardService) *ReportService {
	return &ReportService{db: db, sessions: sessions, responses: responses, leaderboard: leaderboard}
}

type PollReport struct {
	PollID uint   `json:"poll_id"`
	Title  string `json:"title"`
	Tally  []int  `json:"tally"`
}

type SessionReport struct {
	Session     models.Session      `json:"session"`
	Attendance  []models.Attendance `json:"attendance"`
	Polls       []PollReport        `json:"polls"`
	Leaderboard []LeaderboardEntry  `json:"leaderboard"`
}

// BuildSessionReport assembles the after-class view: who attended, how every
// answered poll tallied out, and the final ranking.
func (s *ReportService) BuildSessionReport(sessionID, teacherID uint) (*SessionReport, error) {
	attendance, err := s.sessions.Attendance(sessionID, teacherID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	var pollIDs []uint
	if err := s.db.Model(&models.PollResponse{}).
		Where("session_id = ?", sessionID).
		Distinct("poll_id").
		Pluck("poll_id", &pollIDs).Error; err != nil {
		return nil, err
	}

	polls := make([]PollReport, 0, len(pollIDs))
	for _, pollID := range pollIDs {
		var poll models.Poll
		if err := s.db.First(&poll, pollID).Error; err != nil {
			continue
		}
		tally, err := s.responses.Tally(pollID, sessionID)
		if err != nil {
			continue
		}
		polls = append(polls, PollReport{PollID: pollID, Title: poll.Title, Tally: tally})
	}

	leaderboard, err := s.leaderboard.GetLeaderboard(sessionID)
	if err != nil {
		return nil, err
	}

	return &SessionReport{
		Session:     *session,
		Attendance:  attendance,
		Polls:       polls,
		Leaderboard: leaderboard,
	}, nil
}
