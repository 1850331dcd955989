package services

import (
	"errors"
	"mime/multipart"
	"strings"

	"sports-community-system/models"
	"sports-community-system/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

// Create proposes a new event. Organizer-created events start pending
// and wait for admin review; admin-created events go straight to
// approved.
func (s *EventService) Create(identity models.Identity, input models.EventCreate) (*models.Event, error) {
	if !identity.CanOrganize() {
		return nil, models.ErrNotAuthorized
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, models.NewValidationError("title", "is required")
	}
	if !models.ValidSportType(input.SportType) {
		return nil, models.NewValidationError("sport_type", "must be one of "+strings.Join(models.SportTypes, ", "))
	}
	if input.EventDate.IsZero() || input.RegistrationDeadline.IsZero() {
		return nil, models.NewValidationError("event_date", "event_date and registration_deadline are required")
	}
	if input.RegistrationDeadline.After(input.EventDate) {
		return nil, models.NewValidationError("registration_deadline", "must not be after event_date")
	}
	if input.MaxParticipants != nil && *input.MaxParticipants <= 0 {
		return nil, models.NewValidationError("max_participants", "must be a positive integer")
	}
	if input.EntryFee < 0 {
		return nil, models.NewValidationError("entry_fee", "must be a non-negative amount")
	}

	var organizer models.User
	if err := s.DB.First(&organizer, "id = ?", identity.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}

	status := models.EventStatusPending
	if identity.IsAdmin() {
		status = models.EventStatusApproved
	}

	id := uuid.NewString()
	event := &models.Event{
		ID:                   id,
		Slug:                 slug.Make(input.Title) + "-" + id[:8],
		Title:                strings.TrimSpace(input.Title),
		Description:          input.Description,
		SportType:            input.SportType,
		Location:             input.Location,
		EventDate:            input.EventDate,
		RegistrationDeadline: input.RegistrationDeadline,
		OrganizerID:          organizer.ID,
		OrganizerName:        organizer.FullName,
		Status:               status,
		MaxParticipants:      input.MaxParticipants,
		CurrentParticipants:  0,
		EntryFee:             input.EntryFee,
		PrizePool:            input.PrizePool,
	}
	if err := s.DB.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// List returns events visible to the caller, soonest first. Players
// and anonymous callers see approved events only; organizers also see
// their own pending/rejected ones; admins see everything and may
// filter by status. A zero identity means anonymous.
func (s *EventService) List(identity models.Identity, filter models.EventFilter) ([]models.Event, error) {
	q := s.DB.Model(&models.Event{})

	switch {
	case identity.IsAdmin():
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
	case identity.Role == models.RoleOrganizer:
		q = q.Where("status = ? OR organizer_id = ?", models.EventStatusApproved, identity.UserID)
	default:
		q = q.Where("status = ?", models.EventStatusApproved)
	}

	if filter.SportType != "" {
		q = q.Where("sport_type = ?", filter.SportType)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	var events []models.Event
	// id is the deterministic tie-break for events sharing a date.
	if err := q.Order("event_date ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) Get(id string) (*models.Event, error) {
	var event models.Event
	if err := s.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventService) GetBySlug(slugStr string) (*models.Event, error) {
	var event models.Event
	if err := s.DB.First(&event, "slug = ?", slugStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Update edits an event's descriptive fields. Allowed for the event's
// organizer and for admins. The approval state machine is untouched
// and the slug stays stable so shared links keep resolving.
func (s *EventService) Update(identity models.Identity, id string, input models.EventUpdate) (*models.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != identity.UserID && !identity.IsAdmin() {
		return nil, models.ErrNotAuthorized
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, models.NewValidationError("title", "must not be empty")
		}
		updates["title"] = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}

	eventDate := event.EventDate
	if input.EventDate != nil {
		if input.EventDate.IsZero() {
			return nil, models.NewValidationError("event_date", "must be a valid timestamp")
		}
		eventDate = *input.EventDate
		updates["event_date"] = eventDate
	}
	deadline := event.RegistrationDeadline
	if input.RegistrationDeadline != nil {
		if input.RegistrationDeadline.IsZero() {
			return nil, models.NewValidationError("registration_deadline", "must be a valid timestamp")
		}
		deadline = *input.RegistrationDeadline
		updates["registration_deadline"] = deadline
	}
	// The invariant holds against the merged values, so moving only
	// one of the two dates cannot break it.
	if deadline.After(eventDate) {
		return nil, models.NewValidationError("registration_deadline", "must not be after event_date")
	}

	if len(updates) == 0 {
		return event, nil
	}
	if err := s.DB.Model(&models.Event{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Approve transitions a pending event to approved. Terminal: an event
// can be approved at most once, and never after rejection.
func (s *EventService) Approve(identity models.Identity, id string) (*models.Event, error) {
	return s.transition(identity, id, models.EventStatusApproved)
}

// Reject transitions a pending event to rejected, equally terminal.
func (s *EventService) Reject(identity models.Identity, id string) (*models.Event, error) {
	return s.transition(identity, id, models.EventStatusRejected)
}

func (s *EventService) transition(identity models.Identity, id, target string) (*models.Event, error) {
	if !identity.IsAdmin() {
		return nil, models.ErrNotAuthorized
	}
	// Guard the transition in the statement itself so racing admins
	// cannot both move the event out of pending.
	res := s.DB.Model(&models.Event{}).
		Where("id = ? AND status = ?", id, models.EventStatusPending).
		Update("status", target)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.Get(id); err != nil {
			return nil, err
		}
		return nil, models.ErrEventNotPending
	}
	return s.Get(id)
}

// ListPending is the admin review queue, oldest proposal first.
func (s *EventService) ListPending(identity models.Identity) ([]models.Event, error) {
	if !identity.IsAdmin() {
		return nil, models.ErrNotAuthorized
	}
	var events []models.Event
	err := s.DB.Where("status = ?", models.EventStatusPending).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// AttachImage uploads an event banner to object storage and records
// its URL. Allowed for the event's organizer and for admins.
func (s *EventService) AttachImage(identity models.Identity, id string, file *multipart.FileHeader) (*models.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != identity.UserID && !identity.IsAdmin() {
		return nil, models.ErrNotAuthorized
	}

	key := "events/banners/" + uuid.NewString() + utils.FileExt(file.Filename)
	url, err := utils.UploadFile(file, key)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(event).Update("image_url", url).Error; err != nil {
		return nil, err
	}
	event.ImageURL = &url
	return event, nil
}
