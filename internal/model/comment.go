package model

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a note on a task. Replies point at a top-level comment via ParentID.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	TaskID    string    `gorm:"size:64;not null;index" json:"taskId"`
	AuthorID  string    `gorm:"size:64;not null" json:"authorId"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content   string    `gorm:"not null" json:"content"`
	ParentID  *string   `gorm:"size:64;index" json:"parentId"`
	Replies   []Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"replies"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}
