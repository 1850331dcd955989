package models

import (
	"time"
)

// Registration payment states. The fee is recorded, never processed.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Registration is a user's claim on one of an event's slots. The
// composite unique index is the backstop against concurrent duplicate
// registrations; rows are immutable once created.
type Registration struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	EventID       string    `json:"event_id" gorm:"not null;index;uniqueIndex:idx_event_user"`
	UserID        string    `json:"user_id" gorm:"not null;index;uniqueIndex:idx_event_user"`
	PaymentStatus string    `json:"payment_status" gorm:"type:varchar(16);default:'pending'"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// EventRegistration annotates a registration with the registrant's
// current display name. Joined at read time; the name is never stored
// on the registration row.
type EventRegistration struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}
