package api

import (
	"time"

	"flowboard/internal/display"
	"flowboard/internal/model"
)

type projectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type taskRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// activityView is an activity as the feed renders it.
type activityView struct {
	model.Activity
	Project      *projectRef `json:"project"`
	Task         *taskRef    `json:"task"`
	Description  string      `json:"description"`
	UserInitials string      `json:"userInitials"`
	RelativeTime string      `json:"relativeTime"`
}

func newActivityView(a model.Activity, now time.Time) activityView {
	view := activityView{
		Activity:     a,
		Description:  display.ActivityDescription(a),
		RelativeTime: display.RelativeDate(a.CreatedAt, now),
	}
	if a.Project != nil {
		view.Project = &projectRef{ID: a.Project.ID, Name: a.Project.Name}
	}
	if a.Task != nil {
		view.Task = &taskRef{ID: a.Task.ID, Title: a.Task.Title}
	}
	if a.User != nil {
		view.UserInitials = display.Initials(a.User.Name)
	}
	return view
}

// taskDetail is a single task with its project reference, labels and the
// full comment list.
type taskDetail struct {
	*model.Task
	Project  *projectRef     `json:"project"`
	Labels   []model.Label   `json:"labels"`
	Comments []model.Comment `json:"comments"`
}

func newTaskDetail(t *model.Task) taskDetail {
	view := taskDetail{
		Task:     t,
		Labels:   t.Labels,
		Comments: t.Comments,
	}
	if t.Project != nil {
		view.Project = &projectRef{ID: t.Project.ID, Name: t.Project.Name}
	}
	if view.Labels == nil {
		view.Labels = []model.Label{}
	}
	if view.Comments == nil {
		view.Comments = []model.Comment{}
	}
	for i := range view.Comments {
		if view.Comments[i].Replies == nil {
			view.Comments[i].Replies = []model.Comment{}
		}
	}
	return view
}

type deleted struct {
	Success bool `json:"success"`
}
