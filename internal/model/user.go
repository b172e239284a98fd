package model

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User stores account metadata. Enriched records embed it with only the
// selected columns populated, so optional fields are omitted when empty.
type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email,omitempty"`
	Name      string    `gorm:"not null" json:"name"`
	AvatarURL *string   `json:"avatarUrl"`
	Role      Role      `gorm:"size:16;not null;default:member" json:"role,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
