package services

import (
	"testing"

	"sports-community-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	t.Run("stores email lowercase", func(t *testing.T) {
		user, err := svc.CreateAccount(AccountCreate{
			Email:    "  Alice@Example.COM ",
			FullName: "Alice Rai",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, models.RolePlayer, user.Role)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("duplicate email is case-insensitive", func(t *testing.T) {
		_, err := svc.CreateAccount(AccountCreate{
			Email:    "ALICE@example.com",
			FullName: "Alice Again",
		})
		assert.ErrorIs(t, err, models.ErrEmailTaken)
	})

	t.Run("keeps the provided id", func(t *testing.T) {
		user, err := svc.CreateAccount(AccountCreate{
			ID:       "auth-123",
			Email:    "bob@example.com",
			FullName: "Bob Lama",
			Role:     models.RoleOrganizer,
		})
		require.NoError(t, err)
		assert.Equal(t, "auth-123", user.ID)
		assert.Equal(t, models.RoleOrganizer, user.Role)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			input AccountCreate
		}{
			{"missing email", AccountCreate{FullName: "No Email"}},
			{"malformed email", AccountCreate{Email: "not-an-email", FullName: "Bad Email"}},
			{"missing name", AccountCreate{Email: "x@example.com"}},
			{"unknown role", AccountCreate{Email: "y@example.com", FullName: "Y", Role: "superuser"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.CreateAccount(tc.input)
				assert.True(t, models.IsValidation(err), "expected validation error, got %v", err)
			})
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	identity := seedUser(t, db, "player-1", models.RolePlayer)

	t.Run("updates only provided fields", func(t *testing.T) {
		name := "Renamed Player"
		bio := "Weekend marathoner"
		user, err := svc.UpdateProfile(identity, ProfileUpdate{FullName: &name, Bio: &bio})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Player", user.FullName)
		require.NotNil(t, user.Bio)
		assert.Equal(t, "Weekend marathoner", *user.Bio)
		assert.Nil(t, user.Phone)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		user, err := svc.UpdateProfile(identity, ProfileUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Player", user.FullName)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		blank := "   "
		_, err := svc.UpdateProfile(identity, ProfileUpdate{FullName: &blank})
		assert.True(t, models.IsValidation(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		ghost := models.Identity{UserID: "nobody", Role: models.RolePlayer}
		_, err := svc.UpdateProfile(ghost, ProfileUpdate{})
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})
}

func TestRecordResult(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin := seedUser(t, db, "admin-1", models.RoleAdmin)
	player := seedUser(t, db, "player-1", models.RolePlayer)

	t.Run("win adds points and a win", func(t *testing.T) {
		user, err := svc.RecordResult(admin, "player-1", ResultReport{PointsDelta: 25, Won: true})
		require.NoError(t, err)
		assert.Equal(t, int64(25), user.Points)
		assert.Equal(t, int64(1), user.Wins)
	})

	t.Run("loss adds points only", func(t *testing.T) {
		user, err := svc.RecordResult(admin, "player-1", ResultReport{PointsDelta: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(30), user.Points)
		assert.Equal(t, int64(1), user.Wins)
	})

	t.Run("non-admin", func(t *testing.T) {
		_, err := svc.RecordResult(player, "admin-1", ResultReport{PointsDelta: 10})
		assert.ErrorIs(t, err, models.ErrNotAuthorized)
	})

	t.Run("negative delta", func(t *testing.T) {
		_, err := svc.RecordResult(admin, "player-1", ResultReport{PointsDelta: -1})
		assert.True(t, models.IsValidation(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.RecordResult(admin, "nobody", ResultReport{PointsDelta: 10})
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})
}
