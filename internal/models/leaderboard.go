package models

import "time"

// LeaderboardRow is the aggregate quiz result, one per (session, bank, regno).
// Inserted once and never overwritten; later submissions for the same key are
// dropped by the service.
type LeaderboardRow struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SessionID      uint      `gorm:"not null;uniqueIndex:idx_leaderboard_unique" json:"session_id"`
	BankID         uint      `gorm:"not null;uniqueIndex:idx_leaderboard_unique" json:"bank_id"`
	RegNo          string    `gorm:"size:20;not null;uniqueIndex:idx_leaderboard_unique" json:"regno"`
	TotalScore     int       `gorm:"not null;default:0" json:"total_score"`
	ElapsedSeconds int       `gorm:"not null;default:0" json:"elapsed_seconds"`
	CreatedAt      time.Time `json:"created_at"`
}
