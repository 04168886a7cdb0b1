package models

import "time"

// PollResponse holds at most one row per (session, poll, regno). A repeat
// submission overwrites the option index in place.
type PollResponse struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SessionID   uint      `gorm:"not null;uniqueIndex:idx_poll_response_unique" json:"session_id"`
	PollID      uint      `gorm:"not null;uniqueIndex:idx_poll_response_unique" json:"poll_id"`
	RegNo       string    `gorm:"size:20;not null;uniqueIndex:idx_poll_response_unique" json:"regno"`
	OptionIndex int       `gorm:"not null" json:"option_index"`
	AnsweredAt  time.Time `json:"answered_at"`
}
