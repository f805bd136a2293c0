package domain

import "time"

// OtpRecord is a pending one-time code bound to an email identity.
// At most one live record exists per identity; a later issuance replaces it wholesale.
type OtpRecord struct {
	Identity  string    `json:"identity"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the record's deadline has passed at the given instant.
func (r OtpRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
