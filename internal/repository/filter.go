package repository

import "gorm.io/gorm"

// Filters add one equality condition per non-empty field and nothing else, so
// an empty filter leaves the query unconstrained.

type ProjectFilter struct {
	Status string
}

func (f ProjectFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	return db
}

type TaskFilter struct {
	ProjectID  string
	Status     string
	AssigneeID string
}

func (f TaskFilter) scope(db *gorm.DB) *gorm.DB {
	if f.ProjectID != "" {
		db = db.Where("project_id = ?", f.ProjectID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.AssigneeID != "" {
		db = db.Where("assignee_id = ?", f.AssigneeID)
	}
	return db
}

type ActivityFilter struct {
	ProjectID string
	TaskID    string
	UserID    string
}

func (f ActivityFilter) scope(db *gorm.DB) *gorm.DB {
	if f.ProjectID != "" {
		db = db.Where("project_id = ?", f.ProjectID)
	}
	if f.TaskID != "" {
		db = db.Where("task_id = ?", f.TaskID)
	}
	if f.UserID != "" {
		db = db.Where("user_id = ?", f.UserID)
	}
	return db
}

// countRow is one row of a grouped COUNT(*) keyed by a foreign key.
type countRow struct {
	Ref   string
	Total int64
}

func countBy(db *gorm.DB, model interface{}, column string, ids []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	var rows []countRow
	err := db.Model(model).
		Select(column+" AS ref, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.Ref] = row.Total
	}
	return counts, nil
}
