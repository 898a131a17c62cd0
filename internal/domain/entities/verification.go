package entities

import "time"

// EmailVerification is an outstanding OTP challenge for an unverified
// account. Several rows may exist for one user between a resend and a stale
// retry; only the newest one counts.
type EmailVerification struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the challenge is past its expiry at the given time
func (v *EmailVerification) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
