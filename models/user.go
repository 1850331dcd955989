package models

import (
	"time"
)

// User roles. Role decides what a caller may do, not how they log in —
// credentials live in the external auth service.
const (
	RolePlayer    = "player"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RolePlayer, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// User is the local account record. Reputation counters (points,
// participation_count, wins) are owned here and mutated only through
// service write paths; profile fields may be overwritten by the
// account sync worker.
type User struct {
	ID        string  `json:"id" gorm:"primaryKey"`
	Email     string  `json:"email" gorm:"uniqueIndex;not null"` // stored lowercase
	FullName  string  `json:"full_name" gorm:"not null"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role" gorm:"type:varchar(16);default:'player';index"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Location  *string `json:"location,omitempty"`
	Bio       *string `json:"bio,omitempty"`

	Points             int64 `json:"points" gorm:"default:0"`
	ParticipationCount int64 `json:"participation_count" gorm:"default:0"`
	Wins               int64 `json:"wins" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
