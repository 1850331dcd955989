package services

import (
	"errors"
	"time"

	"sports-community-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Points a player earns just for signing up. Results-based points come
// through the admin results endpoint instead.
const registrationPoints = 10

type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

// Register claims a slot on an approved event for the caller. The
// checks run in a fixed order, each with its own error: event exists,
// event approved, deadline not passed, not already registered,
// capacity left. Registration row, event counter and user counters
// commit together or not at all.
//
// Capacity is enforced by a conditional increment: of N concurrent
// requests racing for the last slot, exactly one sees RowsAffected == 1
// and the rest observe ErrEventFull. The unique (event_id, user_id)
// index backstops duplicate races the pre-check cannot see.
func (s *RegistrationService) Register(identity models.Identity, eventID string) (*models.Registration, error) {
	if eventID == "" {
		return nil, models.NewValidationError("event_id", "is required")
	}

	var reg *models.Registration
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrEventNotFound
			}
			return err
		}
		if event.Status != models.EventStatusApproved {
			return models.ErrEventNotOpen
		}
		if time.Now().After(event.RegistrationDeadline) {
			return models.ErrDeadlineExpired
		}

		var userCount int64
		if err := tx.Model(&models.User{}).Where("id = ?", identity.UserID).Count(&userCount).Error; err != nil {
			return err
		}
		if userCount == 0 {
			return models.ErrUserNotFound
		}

		var existing int64
		if err := tx.Model(&models.Registration{}).
			Where("event_id = ? AND user_id = ?", eventID, identity.UserID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return models.ErrAlreadyRegistered
		}

		res := tx.Model(&models.Event{}).
			Where("id = ? AND (max_participants IS NULL OR current_participants < max_participants)", eventID).
			UpdateColumn("current_participants", gorm.Expr("current_participants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrEventFull
		}

		paymentStatus := models.PaymentStatusPending
		if event.EntryFee == 0 {
			paymentStatus = models.PaymentStatusCompleted
		}
		r := models.Registration{
			ID:            uuid.NewString(),
			EventID:       eventID,
			UserID:        identity.UserID,
			PaymentStatus: paymentStatus,
		}
		if err := tx.Create(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrAlreadyRegistered
			}
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", identity.UserID).
			UpdateColumns(map[string]interface{}{
				"participation_count": gorm.Expr("participation_count + 1"),
				"points":              gorm.Expr("points + ?", registrationPoints),
			}).Error; err != nil {
			return err
		}

		reg = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// ListUserRegistrations returns the caller's registrations, newest
// first.
func (s *RegistrationService) ListUserRegistrations(identity models.Identity) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.DB.Where("user_id = ?", identity.UserID).
		Order("created_at DESC, id DESC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// ListEventRegistrations returns an event's registrations in signup
// order, each joined with the registrant's current display name.
func (s *RegistrationService) ListEventRegistrations(eventID string) ([]models.EventRegistration, error) {
	var exists int64
	if err := s.DB.Model(&models.Event{}).Where("id = ?", eventID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, models.ErrEventNotFound
	}

	var regs []models.EventRegistration
	err := s.DB.Model(&models.Registration{}).
		Select("registrations.id, registrations.event_id, registrations.user_id, registrations.payment_status, registrations.created_at, users.full_name AS user_name").
		Joins("JOIN users ON users.id = registrations.user_id").
		Where("registrations.event_id = ?", eventID).
		Order("registrations.created_at ASC, registrations.id ASC").
		Scan(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}
