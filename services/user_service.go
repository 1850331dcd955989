package services

import (
	"errors"
	"strings"

	"sports-community-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// AccountCreate is the provisioning payload the credential service
// sends after a successful signup. No password here — credentials stay
// with the auth service.
type AccountCreate struct {
	ID        string  `json:"id,omitempty"` // auth service's id; generated when absent
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role,omitempty"`
	Location  *string `json:"location,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ProfileUpdate carries the stored profile fields a user may change.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// ResultReport is the results-reporting write path for points and
// wins. Only admins (acting for the external results process) may
// submit one.
type ResultReport struct {
	PointsDelta int64 `json:"points_delta"`
	Won         bool  `json:"won"`
}

// CreateAccount provisions a local account record. Emails are unique
// case-insensitively; they are stored lowercase so the unique index
// does the enforcement.
func (s *UserService) CreateAccount(input AccountCreate) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, models.NewValidationError("email", "must be a valid email address")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, models.NewValidationError("full_name", "is required")
	}
	role := input.Role
	if role == "" {
		role = models.RolePlayer
	}
	if !models.ValidRole(role) {
		return nil, models.NewValidationError("role", "must be one of player, organizer, admin")
	}

	var taken int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&taken).Error; err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, models.ErrEmailTaken
	}

	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}
	user := &models.User{
		ID:        id,
		Email:     email,
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     input.Phone,
		Role:      role,
		Location:  input.Location,
		AvatarURL: input.AvatarURL,
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Profile(identity models.Identity) (*models.User, error) {
	return s.Get(identity.UserID)
}

// UpdateProfile changes the caller's stored profile fields. Counters
// and role are not reachable from here.
func (s *UserService) UpdateProfile(identity models.Identity, input ProfileUpdate) (*models.User, error) {
	user, err := s.Get(identity.UserID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.FullName != nil {
		if strings.TrimSpace(*input.FullName) == "" {
			return nil, models.NewValidationError("full_name", "must not be empty")
		}
		updates["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(identity.UserID)
}

// RecordResult applies a reported result to a user's reputation
// counters in one atomic statement. points_delta must be non-negative:
// reputation never moves backwards through this path.
func (s *UserService) RecordResult(identity models.Identity, userID string, report ResultReport) (*models.User, error) {
	if !identity.IsAdmin() {
		return nil, models.ErrNotAuthorized
	}
	if report.PointsDelta < 0 {
		return nil, models.NewValidationError("points_delta", "must be non-negative")
	}

	updates := map[string]interface{}{
		"points": gorm.Expr("points + ?", report.PointsDelta),
	}
	if report.Won {
		updates["wins"] = gorm.Expr("wins + 1")
	}

	res := s.DB.Model(&models.User{}).Where("id = ?", userID).UpdateColumns(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrUserNotFound
	}
	return s.Get(userID)
}
