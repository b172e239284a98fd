package display

import (
	"fmt"

	"flowboard/internal/model"
)

// ActivityDescription renders what the activity's user did, e.g.
// `created task "Write docs"`. Names come from the preloaded project and task
// when they still exist and from the stored metadata otherwise.
func ActivityDescription(a model.Activity) string {
	details, _ := a.Details()
	project, task := projectName(a, details), taskTitle(a, details)

	switch a.Type {
	case model.ActivityProjectCreated:
		return fmt.Sprintf(`created project "%s"`, project)
	case model.ActivityProjectUpdated:
		return fmt.Sprintf(`updated project "%s"`, project)
	case model.ActivityTaskCreated:
		return fmt.Sprintf(`created task "%s"`, task)
	case model.ActivityTaskAssigned:
		return fmt.Sprintf(`was assigned to "%s"`, task)
	case model.ActivityTaskCompleted:
		return fmt.Sprintf(`completed "%s"`, task)
	case model.ActivityTaskUpdated:
		return fmt.Sprintf(`updated "%s"`, task)
	case model.ActivityCommentAdded:
		return fmt.Sprintf(`commented on "%s"`, task)
	case model.ActivityMemberAdded:
		return fmt.Sprintf(`added a member to "%s"`, project)
	case model.ActivityMemberRemoved:
		return fmt.Sprintf(`removed a member from "%s"`, project)
	default:
		return "performed an action"
	}
}

func projectName(a model.Activity, details model.ActivityDetails) string {
	if a.Project != nil && a.Project.Name != "" {
		return a.Project.Name
	}
	switch d := details.(type) {
	case model.ProjectCreated:
		return d.ProjectName
	case model.ProjectUpdated:
		return d.ProjectName
	case model.MemberAdded:
		return d.ProjectName
	case model.MemberRemoved:
		return d.ProjectName
	}
	return ""
}

func taskTitle(a model.Activity, details model.ActivityDetails) string {
	if a.Task != nil && a.Task.Title != "" {
		return a.Task.Title
	}
	switch d := details.(type) {
	case model.TaskCreated:
		return d.TaskTitle
	case model.TaskUpdated:
		return d.TaskTitle
	case model.TaskAssigned:
		return d.TaskTitle
	case model.TaskCompleted:
		return d.TaskTitle
	case model.CommentAdded:
		return d.TaskTitle
	}
	return ""
}
