package model

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// TaskStatuses lists the statuses in board order.
var TaskStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusReview, StatusDone}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Task is a single unit of work inside a project. ProjectID is fixed at creation.
type Task struct {
	ID          string       `gorm:"primaryKey;size:64" json:"id"`
	ProjectID   string       `gorm:"size:64;not null;index" json:"projectId"`
	Project     *Project     `gorm:"constraint:OnDelete:CASCADE" json:"project,omitempty"`
	Title       string       `gorm:"not null" json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `gorm:"size:16;not null;default:todo;index" json:"status"`
	Priority    TaskPriority `gorm:"size:16;not null;default:medium" json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	AssigneeID  *string      `gorm:"size:64;index" json:"assigneeId"`
	Assignee    *User        `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL" json:"assignee"`
	CreatorID   string       `gorm:"size:64;not null" json:"creatorId"`
	Creator     *User        `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Position    int          `gorm:"not null;default:0" json:"position"`
	Labels      []Label      `gorm:"many2many:task_labels;constraint:OnDelete:CASCADE" json:"labels,omitempty"`
	Comments    []Comment    `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Count       *TaskCount   `gorm:"-" json:"_count,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TaskCount carries aggregate counts attached to listed tasks.
type TaskCount struct {
	Comments int64 `json:"comments"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = NewID()
	}
	return nil
}
