package services

import (
	"sort"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"

	"gorm.io/gorm"
)

type LeaderboardEntry struct {
	Position       int    `json:"position"`
	RegNo          string `json:"regno"`
	BankID         uint   `json:"bank_id"`
	TotalScore     int    `json:"total_score"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
}

// Rank orders score rows by bank id descending, then total score descending,
// then elapsed time ascending. The most recently introduced bank leads, ties
// go to the higher score, remaining ties to the faster finisher. Distinct
// (regno, bank) pairs stay distinct rows even when scores tie.
func Rank(rows []models.LeaderboardRow) []LeaderboardEntry {
	sorted := make([]models.LeaderboardRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].BankID != sorted[b].BankID {
			return sorted[a].BankID > sorted[b].BankID
		}
		if sorted[a].TotalScore != sorted[b].TotalScore {
			return sorted[a].TotalScore > sorted[b].TotalScore
		}
		return sorted[a].ElapsedSeconds < sorted[b].ElapsedSeconds
	})

	entries := make([]LeaderboardEntry, len(sorted))
	for i, row := range sorted {
		entries[i] = LeaderboardEntry{
			Position:       i + 1,
			RegNo:          row.RegNo,
			BankID:         row.BankID,
			TotalScore:     row.TotalScore,
			ElapsedSeconds: row.ElapsedSeconds,
		}
	}
	return entries
}

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// GetLeaderboard re-derives the ranking from the stored aggregate rows;
// nothing ranked is persisted.
func (s *LeaderboardService) GetLeaderboard(sessionID uint) ([]LeaderboardEntry, error) {
	var rows []models.LeaderboardRow
	if err := s.db.Where("session_id = ?", sessionID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return Rank(rows), nil
}
