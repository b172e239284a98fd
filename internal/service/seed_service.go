package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"flowboard/internal/model"
	"flowboard/internal/repository"
)

// SeedService loads sample data for development. Every row is keyed by a
// natural id, so running it twice changes nothing.
type SeedService struct {
	store *repository.Store
	log   *logrus.Logger
}

func NewSeedService(store *repository.Store, log *logrus.Logger) *SeedService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SeedService{store: store, log: log}
}

const SeedProjectID = "flowboard-main"

type seedTask struct {
	id, title, description string
	status                 model.TaskStatus
	priority               model.TaskPriority
	assignee               string
	labels                 []string
}

var (
	seedUsers = []model.User{
		{ID: "user-alice", Email: "alice@techflow.io", Name: "Alice Chen", Role: model.RoleAdmin},
		{ID: "user-bob", Email: "bob@techflow.io", Name: "Bob Martinez", Role: model.RoleMember},
		{ID: "user-carol", Email: "carol@techflow.io", Name: "Carol Williams", Role: model.RoleMember},
	}

	seedLabels = []model.Label{
		{ID: "bug", Name: "Bug", Color: "#ef4444"},
		{ID: "feature", Name: "Feature", Color: "#22c55e"},
		{ID: "enhancement", Name: "Enhancement", Color: "#3b82f6"},
		{ID: "docs", Name: "Documentation", Color: "#a855f7"},
	}

	seedTasks = []seedTask{
		{"task-1", "Set up project structure", "Initialize the project with TypeScript and Tailwind CSS", model.StatusDone, model.PriorityHigh, "alice", nil},
		{"task-2", "Implement user authentication", "Add login and registration functionality", model.StatusDone, model.PriorityHigh, "bob", []string{"feature"}},
		{"task-3", "Create project CRUD API", "Build API endpoints for creating, reading, updating, and deleting projects", model.StatusDone, model.PriorityMedium, "carol", []string{"feature"}},
		{"task-4", "Create task CRUD API", "Build API endpoints for task management within projects", model.StatusDone, model.PriorityMedium, "alice", []string{"feature"}},
		{"task-5", "Build project dashboard UI", "Create the main dashboard showing project overview and recent activity", model.StatusInProgress, model.PriorityHigh, "bob", []string{"enhancement"}},
		{"task-6", "Implement task board (Kanban)", "Create drag-and-drop Kanban board for task management", model.StatusInProgress, model.PriorityMedium, "carol", []string{"feature"}},
		{"task-7", "Add comment system", "Allow users to comment on tasks with threaded replies", model.StatusTodo, model.PriorityMedium, "", []string{"feature", "docs"}},
		{"task-8", "Implement real-time notifications", "Add notification system for task assignments and updates", model.StatusTodo, model.PriorityHigh, "", nil},
	}
)

// Run seeds users, labels, one project with members and tasks, and the
// project's creation activity.
func (s *SeedService) Run(ctx context.Context) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		// Keyed by seed id; an existing row with the same email keeps its own id.
		users := make(map[string]*model.User, len(seedUsers))
		for i := range seedUsers {
			seed := seedUsers[i]
			user, err := tx.Users.GetOrCreateByEmail(ctx, &seed)
			if err != nil {
				return err
			}
			users[seedUsers[i].ID] = user
		}
		s.log.WithField("count", len(users)).Info("seeded users")

		labels := make(map[string]model.Label, len(seedLabels))
		for i := range seedLabels {
			label := seedLabels[i]
			if err := tx.Labels.GetOrCreate(ctx, &label); err != nil {
				return err
			}
			labels[label.ID] = label
		}
		s.log.WithField("count", len(labels)).Info("seeded labels")

		owner := users["user-alice"]
		description := "The main FlowBoard project management application"
		project := model.Project{
			ID:          SeedProjectID,
			Name:        "FlowBoard Main",
			Description: &description,
			Status:      model.ProjectActive,
			OwnerID:     owner.ID,
		}
		if err := tx.Projects.GetOrCreate(ctx, &project); err != nil {
			return err
		}
		for _, key := range []string{"user-bob", "user-carol"} {
			member := model.ProjectMember{ProjectID: project.ID, UserID: users[key].ID, Role: model.MemberMember}
			if err := tx.Projects.GetOrCreateMember(ctx, &member); err != nil {
				return err
			}
		}
		s.log.WithField("project", project.Name).Info("seeded project")

		for _, seed := range seedTasks {
			if err := s.seedTask(ctx, tx, project.ID, owner.ID, seed, users, labels); err != nil {
				return err
			}
		}
		s.log.WithField("count", len(seedTasks)).Info("seeded tasks")

		logged, err := tx.Activities.Count(ctx, repository.ActivityFilter{ProjectID: project.ID})
		if err != nil {
			return err
		}
		if logged == 0 {
			if _, err := tx.Activities.Record(ctx, owner.ID, &project.ID, nil, model.ProjectCreated{ProjectName: project.Name}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SeedService) seedTask(ctx context.Context, tx *repository.Store, projectID, creatorID string, seed seedTask,
	users map[string]*model.User, labels map[string]model.Label) error {
	position, err := tx.Tasks.NextPosition(ctx, projectID, seed.status)
	if err != nil {
		return err
	}
	description := seed.description
	task := model.Task{
		ID:          seed.id,
		ProjectID:   projectID,
		Title:       seed.title,
		Description: &description,
		Status:      seed.status,
		Priority:    seed.priority,
		CreatorID:   creatorID,
		Position:    position,
	}
	if seed.assignee != "" {
		assignee := users["user-"+seed.assignee].ID
		task.AssigneeID = &assignee
	}
	if err := tx.Tasks.GetOrCreate(ctx, &task); err != nil {
		return err
	}

	attach := make([]model.Label, 0, len(seed.labels))
	for _, id := range seed.labels {
		attach = append(attach, labels[id])
	}
	return tx.Labels.Attach(ctx, task.ID, attach...)
}
