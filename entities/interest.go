package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interest records a user's intent on a property. The composite unique index
// makes repeated expressions idempotent.
type Interest struct {
	ID         string `gorm:"type:text;primaryKey" json:"id"`
	UserID     string `gorm:"uniqueIndex:idx_interest_user_property" json:"user_id"`
	PropertyID string `gorm:"uniqueIndex:idx_interest_user_property" json:"property_id"`
	CreatedAt  string `json:"created_at"`
}

func (i *Interest) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	i.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
