package model

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectArchived  ProjectStatus = "archived"
	ProjectCompleted ProjectStatus = "completed"
)

// Project groups tasks under an owner.
type Project struct {
	ID          string          `gorm:"primaryKey;size:64" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description *string         `json:"description"`
	Status      ProjectStatus   `gorm:"size:16;not null;default:active;index" json:"status"`
	DueDate     *time.Time      `json:"dueDate"`
	OwnerID     string          `gorm:"size:64;not null;index" json:"ownerId"`
	Owner       *User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members     []ProjectMember `gorm:"constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Count       *ProjectCount   `gorm:"-" json:"_count,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"index" json:"updatedAt"`
}

// ProjectCount carries aggregate counts attached to listed projects.
type ProjectCount struct {
	Tasks   int64  `json:"tasks"`
	Members *int64 `json:"members,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

type MemberRole string

const (
	MemberOwner  MemberRole = "owner"
	MemberAdmin  MemberRole = "admin"
	MemberMember MemberRole = "member"
)

// ProjectMember joins a user to a project.
type ProjectMember struct {
	ID        string     `gorm:"primaryKey;size:64" json:"id"`
	ProjectID string     `gorm:"size:64;not null;uniqueIndex:idx_project_member" json:"projectId"`
	UserID    string     `gorm:"size:64;not null;uniqueIndex:idx_project_member" json:"userId"`
	Role      MemberRole `gorm:"size:16;not null;default:member" json:"role"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}
