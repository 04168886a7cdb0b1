package models

import "time"

// Session is one live class meeting. The shared content references are
// independent nullable fields; the UI surfaces one at a time but the data
// model does not enforce mutual exclusion.
type Session struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	TeacherID          uint      `gorm:"not null;index" json:"teacher_id"`
	Teacher            Teacher   `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"-"`
	Active             bool      `gorm:"not null;default:true" json:"active"`
	PresentationID     *uint     `json:"presentation_id,omitempty"`
	PollID             *uint     `json:"poll_id,omitempty"`
	BankID             *uint     `json:"bank_id,omitempty"`
	SlideIndex         int       `gorm:"not null;default:0" json:"slide_index"`
	TimeoutMinutes     int       `gorm:"not null;default:3" json:"timeout_minutes"`
	LeaderboardVisible bool      `gorm:"not null;default:false" json:"leaderboard_visible"`
	CreatedAt          time.Time `json:"created_at"`
}

// Content type values accepted by the share flow and carried in room events.
const (
	ContentTypePresentation = "presentation"
	ContentTypePoll         = "poll"
	ContentTypeBank         = "bank"
)
