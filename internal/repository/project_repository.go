package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flowboard/internal/model"
)

// ProjectRepository handles CRUD for projects and their members.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if err := r.db.WithContext(ctx).Omit("Owner", "Members").Create(project).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// GetOrCreate inserts project unless a row with its id already exists.
func (r *ProjectRepository) GetOrCreate(ctx context.Context, project *model.Project) error {
	if err := r.db.WithContext(ctx).Omit("Owner", "Members").
		Where("id = ?", project.ID).FirstOrCreate(project).Error; err != nil {
		return fmt.Errorf("get or create project: %w", err)
	}
	return nil
}

// List returns one page of projects with owner summaries and task/member counts.
func (r *ProjectRepository) List(ctx context.Context, filter ProjectFilter, offset, limit int) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Scopes(filter.scope).
		Preload("Owner", userSummary).
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if err := r.attachCounts(ctx, projects, true); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Count(ctx context.Context, filter ProjectFilter) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return total, nil
}

// FindByID returns a project with owner, members and task count.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("Owner", userContact).
		Preload("Members.User", userContact).
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	projects := []model.Project{project}
	if err := r.attachCounts(ctx, projects, false); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

// FindSummary returns a project with only its owner summary attached.
func (r *ProjectRepository) FindSummary(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Preload("Owner", userSummary).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(&model.Project{ID: id}).Updates(changes).Error; err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project; its tasks go with it through the foreign key.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if result.Error != nil {
		return fmt.Errorf("delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete project: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *ProjectRepository) AddMember(ctx context.Context, member *model.ProjectMember) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(member).Error; err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

// GetOrCreateMember adds the membership unless the pair already exists.
func (r *ProjectRepository) GetOrCreateMember(ctx context.Context, member *model.ProjectMember) error {
	err := r.db.WithContext(ctx).Omit("User").
		Where("project_id = ? AND user_id = ?", member.ProjectID, member.UserID).
		FirstOrCreate(member).Error
	if err != nil {
		return fmt.Errorf("get or create member: %w", err)
	}
	return nil
}

func (r *ProjectRepository) RemoveMember(ctx context.Context, projectID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{})
	if result.Error != nil {
		return fmt.Errorf("remove member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("remove member: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *ProjectRepository) FindMember(ctx context.Context, projectID, userID string) (*model.ProjectMember, error) {
	var member model.ProjectMember
	err := r.db.WithContext(ctx).
		Preload("User", userSummary).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	return &member, nil
}

func (r *ProjectRepository) attachCounts(ctx context.Context, projects []model.Project, withMembers bool) error {
	ids := make([]string, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}
	db := r.db.WithContext(ctx)
	tasks, err := countBy(db, &model.Task{}, "project_id", ids)
	if err != nil {
		return fmt.Errorf("count project tasks: %w", err)
	}
	var members map[string]int64
	if withMembers {
		members, err = countBy(db, &model.ProjectMember{}, "project_id", ids)
		if err != nil {
			return fmt.Errorf("count project members: %w", err)
		}
	}
	for i := range projects {
		count := &model.ProjectCount{Tasks: tasks[projects[i].ID]}
		if withMembers {
			n := members[projects[i].ID]
			count.Members = &n
		}
		projects[i].Count = count
	}
	return nil
}
