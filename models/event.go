package models

import (
	"time"
)

// Sport types accepted on event creation.
const (
	SportFootball   = "Football"
	SportVolleyball = "Volleyball"
	SportBadminton  = "Badminton"
	SportBasketball = "Basketball"
	SportMarathon   = "Marathon"
	SportCricket    = "Cricket"
	SportESports    = "E-Sports"
	SportOther      = "Other"
)

var SportTypes = []string{
	SportFootball, SportVolleyball, SportBadminton, SportBasketball,
	SportMarathon, SportCricket, SportESports, SportOther,
}

func ValidSportType(s string) bool {
	for _, st := range SportTypes {
		if st == s {
			return true
		}
	}
	return false
}

// Event statuses. pending → approved and pending → rejected are the
// only transitions; both target states are terminal.
const (
	EventStatusPending  = "pending"
	EventStatusApproved = "approved"
	EventStatusRejected = "rejected"
)

// Event is a proposed sporting occasion. current_participants is a
// cached counter owned by the registration service; it never exceeds
// max_participants when that is set, and nothing in this service ever
// decrements it.
type Event struct {
	ID                   string    `json:"id" gorm:"primaryKey"`
	Slug                 string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title                string    `json:"title" gorm:"not null"`
	Description          string    `json:"description"`
	SportType            string    `json:"sport_type" gorm:"type:varchar(32);not null;index"`
	Location             string    `json:"location" gorm:"index"`
	EventDate            time.Time `json:"event_date" gorm:"not null;index"`
	RegistrationDeadline time.Time `json:"registration_deadline" gorm:"not null"`
	OrganizerID          string    `json:"organizer_id" gorm:"not null;index"`
	OrganizerName        string    `json:"organizer_name"`
	Status               string    `json:"status" gorm:"type:varchar(16);default:'pending';index"`
	MaxParticipants      *int      `json:"max_participants,omitempty"` // nil = unbounded
	CurrentParticipants  int       `json:"current_participants" gorm:"default:0"`
	EntryFee             float64   `json:"entry_fee" gorm:"default:0"`
	PrizePool            *string   `json:"prize_pool,omitempty"`
	ImageURL             *string   `json:"image_url,omitempty"`
	CreatedAt            time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// EventCreate is the request payload for proposing an event.
type EventCreate struct {
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	SportType            string    `json:"sport_type"`
	Location             string    `json:"location"`
	EventDate            time.Time `json:"event_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	MaxParticipants      *int      `json:"max_participants,omitempty"`
	EntryFee             float64   `json:"entry_fee"`
	PrizePool            *string   `json:"prize_pool,omitempty"`
}

// EventUpdate carries the editable descriptive fields. Status, the
// participant counters and the slug are not reachable from here.
type EventUpdate struct {
	Title                *string    `json:"title,omitempty"`
	Description          *string    `json:"description,omitempty"`
	Location             *string    `json:"location,omitempty"`
	EventDate            *time.Time `json:"event_date,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
}

// EventFilter narrows event listings. Status is honored for admins
// only; everyone else gets the visibility rules applied server-side.
type EventFilter struct {
	SportType string
	Location  string
	Status    string
}
