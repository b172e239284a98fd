package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories that share one database handle.
type Store struct {
	db         *gorm.DB
	Users      *UserRepository
	Projects   *ProjectRepository
	Tasks      *TaskRepository
	Comments   *CommentRepository
	Activities *ActivityRepository
	Labels     *LabelRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Users:      NewUserRepository(db),
		Projects:   NewProjectRepository(db),
		Tasks:      NewTaskRepository(db),
		Comments:   NewCommentRepository(db),
		Activities: NewActivityRepository(db),
		Labels:     NewLabelRepository(db),
	}
}

// Transaction runs fn with a Store bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// DB exposes the underlying handle for lifecycle management.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// userSummary limits a preloaded user to the fields shown next to a record.
func userSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar_url")
}

// userContact extends userSummary with the email address.
func userContact(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "avatar_url")
}
