package models

import (
	"time"
)

// Supported donation payment methods. Recorded for reconciliation;
// the money itself moves outside this service.
const (
	PaymentMethodEsewa  = "esewa"
	PaymentMethodKhalti = "khalti"
	PaymentMethodStripe = "stripe"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodEsewa, PaymentMethodKhalti, PaymentMethodStripe:
		return true
	}
	return false
}

// Donation is an unrestricted pledge tied to an event. Donors do not
// need an account; rows are immutable once created.
type Donation struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	EventID       string    `json:"event_id" gorm:"not null;index"`
	DonorName     string    `json:"donor_name" gorm:"not null"`
	DonorEmail    *string   `json:"donor_email,omitempty"`
	Amount        float64   `json:"amount" gorm:"not null"`
	Message       *string   `json:"message,omitempty"`
	PaymentMethod string    `json:"payment_method" gorm:"type:varchar(16);not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// DonationCreate is the request payload for recording a donation.
type DonationCreate struct {
	EventID       string  `json:"event_id"`
	DonorName     string  `json:"donor_name"`
	DonorEmail    *string `json:"donor_email,omitempty"`
	Amount        float64 `json:"amount"`
	Message       *string `json:"message,omitempty"`
	PaymentMethod string  `json:"payment_method"`
}
