package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
)

// User represents an account in the marketplace. PasswordHash is empty until
// the owner has verified their email and set a password.
type User struct {
	ID           string `gorm:"type:text;primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash" json:"-"`
	Verified     bool   `gorm:"default:false" json:"verified"`
	Role         string `gorm:"default:'user'" json:"role"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	u.CreatedAt = time.Now().Format(time.RFC3339)
	u.UpdatedAt = u.CreatedAt
	return
}

// PublicUser is the directory view of a user: id and email only.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
