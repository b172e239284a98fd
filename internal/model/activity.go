package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityProjectCreated ActivityType = "project_created"
	ActivityProjectUpdated ActivityType = "project_updated"
	ActivityTaskCreated    ActivityType = "task_created"
	ActivityTaskUpdated    ActivityType = "task_updated"
	ActivityTaskAssigned   ActivityType = "task_assigned"
	ActivityTaskCompleted  ActivityType = "task_completed"
	ActivityCommentAdded   ActivityType = "comment_added"
	ActivityMemberAdded    ActivityType = "member_added"
	ActivityMemberRemoved  ActivityType = "member_removed"
)

// Activity is an append-only feed entry. Project and task references are
// cleared when their targets are deleted; Metadata keeps the names.
type Activity struct {
	ID        string         `gorm:"primaryKey;size:64" json:"id"`
	Type      ActivityType   `gorm:"size:32;not null;index" json:"type"`
	ProjectID *string        `gorm:"size:64;index" json:"projectId"`
	Project   *Project       `gorm:"constraint:OnDelete:SET NULL" json:"project"`
	TaskID    *string        `gorm:"size:64;index" json:"taskId"`
	Task      *Task          `gorm:"constraint:OnDelete:SET NULL" json:"task"`
	UserID    string         `gorm:"size:64;not null;index" json:"userId"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Metadata  datatypes.JSON `json:"metadata"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// ActivityDetails is the typed metadata of an activity. Every variant belongs
// to exactly one ActivityType.
type ActivityDetails interface {
	ActivityType() ActivityType
}

type ProjectCreated struct {
	ProjectName string `json:"projectName"`
}

type ProjectUpdated struct {
	ProjectName string `json:"projectName"`
}

type TaskCreated struct {
	TaskTitle string `json:"taskTitle"`
}

type TaskUpdated struct {
	TaskTitle string `json:"taskTitle"`
}

type TaskAssigned struct {
	TaskTitle  string `json:"taskTitle"`
	AssignedBy string `json:"assignedBy"`
}

type TaskCompleted struct {
	TaskTitle string `json:"taskTitle"`
}

type CommentAdded struct {
	TaskTitle string `json:"taskTitle"`
}

type MemberAdded struct {
	ProjectName string `json:"projectName"`
	MemberID    string `json:"memberId"`
}

type MemberRemoved struct {
	ProjectName string `json:"projectName"`
	MemberID    string `json:"memberId"`
}

func (ProjectCreated) ActivityType() ActivityType { return ActivityProjectCreated }
func (ProjectUpdated) ActivityType() ActivityType { return ActivityProjectUpdated }
func (TaskCreated) ActivityType() ActivityType    { return ActivityTaskCreated }
func (TaskUpdated) ActivityType() ActivityType    { return ActivityTaskUpdated }
func (TaskAssigned) ActivityType() ActivityType   { return ActivityTaskAssigned }
func (TaskCompleted) ActivityType() ActivityType  { return ActivityTaskCompleted }
func (CommentAdded) ActivityType() ActivityType   { return ActivityCommentAdded }
func (MemberAdded) ActivityType() ActivityType    { return ActivityMemberAdded }
func (MemberRemoved) ActivityType() ActivityType  { return ActivityMemberRemoved }

// NewActivity builds an activity whose type is taken from details.
func NewActivity(userID string, projectID, taskID *string, details ActivityDetails) (*Activity, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode activity metadata: %w", err)
	}
	return &Activity{
		Type:      details.ActivityType(),
		ProjectID: projectID,
		TaskID:    taskID,
		UserID:    userID,
		Metadata:  datatypes.JSON(raw),
	}, nil
}

// Details decodes Metadata into the variant matching Type.
func (a *Activity) Details() (ActivityDetails, error) {
	switch a.Type {
	case ActivityProjectCreated:
		return decodeDetails[ProjectCreated](a.Metadata)
	case ActivityProjectUpdated:
		return decodeDetails[ProjectUpdated](a.Metadata)
	case ActivityTaskCreated:
		return decodeDetails[TaskCreated](a.Metadata)
	case ActivityTaskUpdated:
		return decodeDetails[TaskUpdated](a.Metadata)
	case ActivityTaskAssigned:
		return decodeDetails[TaskAssigned](a.Metadata)
	case ActivityTaskCompleted:
		return decodeDetails[TaskCompleted](a.Metadata)
	case ActivityCommentAdded:
		return decodeDetails[CommentAdded](a.Metadata)
	case ActivityMemberAdded:
		return decodeDetails[MemberAdded](a.Metadata)
	case ActivityMemberRemoved:
		return decodeDetails[MemberRemoved](a.Metadata)
	default:
		return nil, fmt.Errorf("unknown activity type %q", a.Type)
	}
}

func decodeDetails[T ActivityDetails](raw datatypes.JSON) (ActivityDetails, error) {
	var details T
	if len(raw) == 0 || string(raw) == "null" {
		return details, nil
	}
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", details.ActivityType(), err)
	}
	return details, nil
}
