package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"sports-community-system/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	player := seedUser(t, db, "player-1", models.RolePlayer)

	t.Run("free event completes payment and awards points", func(t *testing.T) {
		event := seedEvent(t, db)

		reg, err := svc.Register(player, event.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusCompleted, reg.PaymentStatus)
		assert.Equal(t, event.ID, reg.EventID)
		assert.Equal(t, "player-1", reg.UserID)

		var refreshed models.Event
		require.NoError(t, db.First(&refreshed, "id = ?", event.ID).Error)
		assert.Equal(t, 1, refreshed.CurrentParticipants)

		var user models.User
		require.NoError(t, db.First(&user, "id = ?", "player-1").Error)
		assert.Equal(t, int64(10), user.Points)
		assert.Equal(t, int64(1), user.ParticipationCount)
	})

	t.Run("paid event leaves payment pending", func(t *testing.T) {
		event := seedEvent(t, db, func(e *models.Event) { e.EntryFee = 500 })

		reg, err := svc.Register(player, event.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPending, reg.PaymentStatus)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		event := seedEvent(t, db)

		_, err := svc.Register(player, event.ID)
		require.NoError(t, err)
		_, err = svc.Register(player, event.ID)
		assert.ErrorIs(t, err, models.ErrAlreadyRegistered)

		var count int64
		require.NoError(t, db.Model(&models.Registration{}).
			Where("event_id = ?", event.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unapproved event", func(t *testing.T) {
		for _, status := range []string{models.EventStatusPending, models.EventStatusRejected} {
			event := seedEvent(t, db, func(e *models.Event) { e.Status = status })
			_, err := svc.Register(player, event.ID)
			assert.ErrorIs(t, err, models.ErrEventNotOpen)
		}
	})

	t.Run("expired deadline", func(t *testing.T) {
		event := seedEvent(t, db, func(e *models.Event) {
			e.RegistrationDeadline = time.Now().Add(-time.Hour)
		})
		_, err := svc.Register(player, event.ID)
		assert.ErrorIs(t, err, models.ErrDeadlineExpired)
	})

	t.Run("full event", func(t *testing.T) {
		capacity := 1
		event := seedEvent(t, db, func(e *models.Event) {
			e.MaxParticipants = &capacity
			e.CurrentParticipants = 1
		})
		_, err := svc.Register(player, event.ID)
		assert.ErrorIs(t, err, models.ErrEventFull)
	})

	t.Run("failed registration leaves no trace", func(t *testing.T) {
		capacity := 1
		event := seedEvent(t, db, func(e *models.Event) {
			e.MaxParticipants = &capacity
			e.CurrentParticipants = 1
		})

		var before models.User
		require.NoError(t, db.First(&before, "id = ?", "player-1").Error)

		_, err := svc.Register(player, event.ID)
		require.ErrorIs(t, err, models.ErrEventFull)

		var after models.User
		require.NoError(t, db.First(&after, "id = ?", "player-1").Error)
		assert.Equal(t, before.Points, after.Points)
		assert.Equal(t, before.ParticipationCount, after.ParticipationCount)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.Register(player, "missing")
		assert.ErrorIs(t, err, models.ErrEventNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		event := seedEvent(t, db)
		ghost := models.Identity{UserID: "nobody", Role: models.RolePlayer}
		_, err := svc.Register(ghost, event.ID)
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("missing event id", func(t *testing.T) {
		_, err := svc.Register(player, "")
		assert.True(t, models.IsValidation(err))
	})
}

// Two callers race for the last remaining slot. Exactly one wins and
// the counter never exceeds capacity.
func TestRegisterConcurrentLastSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	capacity := 1
	event := seedEvent(t, db, func(e *models.Event) { e.MaxParticipants = &capacity })
	a := seedUser(t, db, "racer-a", models.RolePlayer)
	b := seedUser(t, db, "racer-b", models.RolePlayer)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, identity := range []models.Identity{a, b} {
		wg.Add(1)
		go func(id models.Identity) {
			defer wg.Done()
			_, err := svc.Register(id, event.ID)
			errs <- err
		}(identity)
	}
	wg.Wait()
	close(errs)

	var wins, full int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, models.ErrEventFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, full)

	var refreshed models.Event
	require.NoError(t, db.First(&refreshed, "id = ?", event.ID).Error)
	assert.Equal(t, 1, refreshed.CurrentParticipants)
}

func TestListUserRegistrations(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	player := seedUser(t, db, "player-1", models.RolePlayer)
	first := seedEvent(t, db)
	second := seedEvent(t, db)

	seedRegistration(t, db, first.ID, "player-1", time.Now().Add(-time.Hour))
	seedRegistration(t, db, second.ID, "player-1", time.Now())

	regs, err := svc.ListUserRegistrations(player)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, second.ID, regs[0].EventID) // newest first
	assert.Equal(t, first.ID, regs[1].EventID)
}

func TestListEventRegistrations(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	seedUser(t, db, "player-1", models.RolePlayer)
	seedUser(t, db, "player-2", models.RolePlayer)
	event := seedEvent(t, db)

	seedRegistration(t, db, event.ID, "player-2", time.Now().Add(-time.Hour))
	seedRegistration(t, db, event.ID, "player-1", time.Now())

	regs, err := svc.ListEventRegistrations(event.ID)
	require.NoError(t, err)
	require.Len(t, regs, 2)

	// Signup order, with the registrant's current name joined in.
	assert.Equal(t, "player-2", regs[0].UserID)
	assert.Equal(t, "User player-2", regs[0].UserName)
	assert.Equal(t, "player-1", regs[1].UserID)
	assert.Equal(t, "User player-1", regs[1].UserName)

	_, err = svc.ListEventRegistrations("missing")
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func seedRegistration(t *testing.T, db *gorm.DB, eventID, userID string, createdAt time.Time) {
	t.Helper()
	reg := models.Registration{
		ID:            uuid.NewString(),
		EventID:       eventID,
		UserID:        userID,
		PaymentStatus: models.PaymentStatusCompleted,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(&reg).Error)
}
