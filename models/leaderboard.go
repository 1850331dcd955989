package models

// LeaderboardEntry is a derived view over users, recomputed on every
// read. Rank is the 1-based position in the total order (points desc,
// participation_count desc, id asc); ties still get distinct
// sequential ranks. Never persisted, never migrated.
type LeaderboardEntry struct {
	Rank               int     `json:"rank"`
	UserID             string  `json:"user_id"`
	FullName           string  `json:"full_name"`
	AvatarURL          *string `json:"avatar_url,omitempty"`
	Points             int64   `json:"points"`
	ParticipationCount int64   `json:"participation_count"`
	Wins               int64   `json:"wins"`
}

// PlatformStats are the admin dashboard totals. TotalDonations counts
// donation records; DonationAmountTotal is the monetary sum.
type PlatformStats struct {
	TotalUsers          int64   `json:"total_users"`
	TotalEvents         int64   `json:"total_events"`
	TotalRegistrations  int64   `json:"total_registrations"`
	TotalDonations      int64   `json:"total_donations"`
	DonationAmountTotal float64 `json:"donation_amount_total"`
}
