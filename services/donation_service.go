package services

import (
	"strings"

	"sports-community-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationService struct {
	DB *gorm.DB
}

func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{DB: db}
}

// Create records a donation against an event. Donors do not need an
// account and the event's status is deliberately not checked —
// donations keep flowing after approval or after the event itself.
func (s *DonationService) Create(input models.DonationCreate) (*models.Donation, error) {
	if input.EventID == "" {
		return nil, models.NewValidationError("event_id", "is required")
	}
	if strings.TrimSpace(input.DonorName) == "" {
		return nil, models.NewValidationError("donor_name", "is required")
	}
	if input.Amount <= 0 {
		return nil, models.NewValidationError("amount", "must be greater than zero")
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, models.NewValidationError("payment_method", "must be one of esewa, khalti, stripe")
	}

	var exists int64
	if err := s.DB.Model(&models.Event{}).Where("id = ?", input.EventID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, models.ErrEventNotFound
	}

	donation := &models.Donation{
		ID:            uuid.NewString(),
		EventID:       input.EventID,
		DonorName:     strings.TrimSpace(input.DonorName),
		DonorEmail:    input.DonorEmail,
		Amount:        input.Amount,
		Message:       input.Message,
		PaymentMethod: input.PaymentMethod,
	}
	if err := s.DB.Create(donation).Error; err != nil {
		return nil, err
	}
	return donation, nil
}

// ListEventDonations returns an event's donations, newest first.
func (s *DonationService) ListEventDonations(eventID string) ([]models.Donation, error) {
	var exists int64
	if err := s.DB.Model(&models.Event{}).Where("id = ?", eventID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, models.ErrEventNotFound
	}

	var donations []models.Donation
	err := s.DB.Where("event_id = ?", eventID).
		Order("created_at DESC, id DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

// EventDonationTotals returns the stable count and monetary sum for an
// event, independent of the listing order the caller picks.
func (s *DonationService) EventDonationTotals(eventID string) (int64, float64, error) {
	var count int64
	if err := s.DB.Model(&models.Donation{}).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	var sum float64
	err := s.DB.Model(&models.Donation{}).
		Where("event_id = ?", eventID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, 0, err
	}
	return count, sum, nil
}
