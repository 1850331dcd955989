package services

import (
	"testing"
	"time"

	"sports-community-system/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory database for one test. The pool is
// pinned to a single connection so every session sees the same
// in-memory store and concurrent transactions serialize the way the
// production database serializes them.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Registration{},
		&models.Donation{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, role string) models.Identity {
	t.Helper()
	user := models.User{
		ID:       id,
		Email:    id + "@example.com",
		FullName: "User " + id,
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return models.Identity{UserID: id, Role: role}
}

func seedEvent(t *testing.T, db *gorm.DB, mutate ...func(*models.Event)) *models.Event {
	t.Helper()
	id := uuid.NewString()
	event := models.Event{
		ID:                   id,
		Slug:                 "city-run-" + id[:8],
		Title:                "City Run",
		SportType:            models.SportMarathon,
		Location:             "Kathmandu",
		EventDate:            time.Now().Add(48 * time.Hour),
		RegistrationDeadline: time.Now().Add(24 * time.Hour),
		OrganizerID:          "org-1",
		OrganizerName:        "Organizer One",
		Status:               models.EventStatusApproved,
	}
	for _, m := range mutate {
		m(&event)
	}
	require.NoError(t, db.Create(&event).Error)
	return &event
}
