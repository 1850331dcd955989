package services

import (
	"sports-community-system/models"

	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// Platform aggregates the admin dashboard totals. Read-only; events of
// every status count. total_donations is the number of donation
// records, with the monetary sum reported alongside it.
func (s *StatsService) Platform(identity models.Identity) (*models.PlatformStats, error) {
	if !identity.IsAdmin() {
		return nil, models.ErrNotAuthorized
	}

	var stats models.PlatformStats
	if err := s.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Event{}).Count(&stats.TotalEvents).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Registration{}).Count(&stats.TotalRegistrations).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Donation{}).Count(&stats.TotalDonations).Error; err != nil {
		return nil, err
	}
	err := s.DB.Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.DonationAmountTotal).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
