package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a directed message between two users. Rows are immutable; the
// timestamp is assigned server-side at insert so conversation order follows
// insertion order.
type Message struct {
	ID         string    `gorm:"type:text;primaryKey" json:"id"`
	FromUserID string    `gorm:"index" json:"from_user_id"`
	ToUserID   string    `gorm:"index" json:"to_user_id"`
	Content    string    `gorm:"not null" json:"content"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	return
}
