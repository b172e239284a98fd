package validation

import (
	"time"

	"flowboard/internal/model"
)

type CreateProject struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func ParseCreateProject(raw []byte) (CreateProject, error) {
	var in CreateProject
	err := decode(raw, &in)
	return in, err
}

func (in CreateProject) Due() *time.Time { return parseTime(in.DueDate) }

// UpdateProject is a partial project payload.
type UpdateProject struct {
	Name        *string              `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string              `json:"description" validate:"omitempty,max=1000"`
	DueDate     *string              `json:"dueDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status      *model.ProjectStatus `json:"status" validate:"omitempty,oneof=active archived completed"`
}

func ParseUpdateProject(raw []byte) (UpdateProject, error) {
	var in UpdateProject
	err := decode(raw, &in)
	return in, err
}

// Changes returns the column updates carried by the payload.
func (in UpdateProject) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.DueDate != nil {
		changes["due_date"] = parseTime(in.DueDate)
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	return changes
}

type CreateTask struct {
	ProjectID   string             `json:"projectId" validate:"required,id"`
	Title       string             `json:"title" validate:"required,max=200"`
	Description *string            `json:"description" validate:"omitempty,max=5000"`
	Status      model.TaskStatus   `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority    model.TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *string            `json:"dueDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	AssigneeID  NullString         `json:"assigneeId" validate:"omitempty,id"`
}

// ParseCreateTask validates a task payload and fills status and priority defaults.
func ParseCreateTask(raw []byte) (CreateTask, error) {
	var in CreateTask
	if err := decode(raw, &in); err != nil {
		return in, err
	}
	if in.Status == "" {
		in.Status = model.StatusTodo
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	return in, nil
}

func (in CreateTask) Due() *time.Time { return parseTime(in.DueDate) }

// UpdateTask is a partial task payload. A task's project cannot change, so
// projectId is not part of it and is dropped when present.
type UpdateTask struct {
	Title       *string             `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string             `json:"description" validate:"omitempty,max=5000"`
	Status      *model.TaskStatus   `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority    *model.TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *string             `json:"dueDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	AssigneeID  NullString          `json:"assigneeId" validate:"omitempty,id"`
}

func ParseUpdateTask(raw []byte) (UpdateTask, error) {
	var in UpdateTask
	err := decode(raw, &in)
	return in, err
}

// Changes returns the column updates carried by the payload.
func (in UpdateTask) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.Priority != nil {
		changes["priority"] = *in.Priority
	}
	if in.DueDate != nil {
		changes["due_date"] = parseTime(in.DueDate)
	}
	if in.AssigneeID.Set {
		changes["assignee_id"] = in.AssigneeID.Ptr()
	}
	return changes
}

// CompletesTask reports whether the payload moves the task to done.
func (in UpdateTask) CompletesTask() bool {
	return in.Status != nil && *in.Status == model.StatusDone
}

type CreateComment struct {
	TaskID   string     `json:"taskId" validate:"required,id"`
	Content  string     `json:"content" validate:"required,max=5000"`
	ParentID NullString `json:"parentId" validate:"omitempty,id"`
}

func ParseCreateComment(raw []byte) (CreateComment, error) {
	var in CreateComment
	err := decode(raw, &in)
	return in, err
}

type UpdateUser struct {
	Name      *string    `json:"name" validate:"omitempty,min=1,max=100"`
	AvatarURL NullString `json:"avatarUrl" validate:"omitempty,url"`
}

func ParseUpdateUser(raw []byte) (UpdateUser, error) {
	var in UpdateUser
	err := decode(raw, &in)
	return in, err
}

func (in UpdateUser) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.AvatarURL.Set {
		changes["avatar_url"] = in.AvatarURL.Ptr()
	}
	return changes
}

type AddMember struct {
	UserID string           `json:"userId" validate:"required,id"`
	Role   model.MemberRole `json:"role" validate:"omitempty,oneof=owner admin member"`
}

// ParseAddMember validates a membership payload; role defaults to member.
func ParseAddMember(raw []byte) (AddMember, error) {
	var in AddMember
	if err := decode(raw, &in); err != nil {
		return in, err
	}
	if in.Role == "" {
		in.Role = model.MemberMember
	}
	return in, nil
}
