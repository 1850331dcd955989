package services

import (
	"sports-community-system/models"

	"gorm.io/gorm"
)

const (
	defaultLeaderboardLimit = 50
	maxLeaderboardLimit     = 100
)

type LeaderboardService struct {
	DB *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{DB: db}
}

// Compute derives the ranking from current user state. The order is a
// total one — points desc, participation_count desc, then id asc as
// the stable tie-break — so ranks are deterministic, sequential and
// gap-free even when points tie. Nothing is cached or stored.
func (s *LeaderboardService) Compute(limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	var users []models.User
	err := s.DB.Order("points DESC, participation_count DESC, id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = models.LeaderboardEntry{
			Rank:               i + 1,
			UserID:             u.ID,
			FullName:           u.FullName,
			AvatarURL:          u.AvatarURL,
			Points:             u.Points,
			ParticipationCount: u.ParticipationCount,
			Wins:               u.Wins,
		}
	}
	return entries, nil
}
