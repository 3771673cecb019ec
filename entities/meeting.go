package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meeting associates a user with a property viewing on a client-supplied date.
// The date is stored as given; no calendar validation or conflict detection.
type Meeting struct {
	ID         string `gorm:"type:text;primaryKey" json:"id"`
	UserID     string `gorm:"index" json:"user_id"`
	PropertyID string `json:"property_id"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
	CreatedAt  string `json:"created_at"`
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now().Format(time.RFC3339)
	return
}

// MeetingDetail is a meeting joined with the title of its property.
type MeetingDetail struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	PropertyID    string `json:"property_id"`
	Date          string `json:"date"`
	Notes         string `json:"notes"`
	PropertyTitle string `json:"property_title"`
}
