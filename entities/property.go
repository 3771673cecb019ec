package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PropertyTypeSale = "sale"
	PropertyTypeRent = "rent"
)

// Property is a listing owned by a user. New listings start unapproved and
// only show up in public results once a moderator approves them.
type Property struct {
	ID             string  `gorm:"type:text;primaryKey" json:"id"`
	Title          string  `gorm:"not null" json:"title"`
	BuildingNumber string  `json:"building_number"`
	City           string  `gorm:"index" json:"city"`
	Country        string  `json:"country"`
	Type           string  `json:"type"`
	Price          float64 `json:"price"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Image          string  `json:"image"`
	OwnerID        string  `gorm:"index" json:"owner_id"`
	Approved       bool    `gorm:"default:false" json:"approved"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}

// PropertyFilter holds the optional search criteria. Nil price bounds impose
// no constraint; city matches as a case-insensitive substring.
type PropertyFilter struct {
	City     string
	Type     string
	MinPrice *float64
	MaxPrice *float64
}
