package entities

import "time"

// EmailOTP is a pending one-time code keyed by email. One row per address;
// re-requesting replaces the previous code. Rows are deleted on successful
// verification and ignored past ExpiresAt. Codes never touch the users table.
type EmailOTP struct {
	Email     string    `gorm:"primaryKey" json:"email"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (EmailOTP) TableName() string { return "email_otps" }

// Expired reports whether the code is past its time-to-live.
func (o *EmailOTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
