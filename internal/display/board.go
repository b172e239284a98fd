package display

import "flowboard/internal/model"

// Column is one status lane of a project board.
type Column struct {
	Status     model.TaskStatus `json:"status"`
	ColorClass string           `json:"colorClass"`
	Tasks      []model.Task     `json:"tasks"`
}

// Board partitions tasks into one column per status, in board order. Tasks
// keep their relative order; unknown statuses are dropped.
func Board(tasks []model.Task) []Column {
	columns := make([]Column, len(model.TaskStatuses))
	index := make(map[model.TaskStatus]int, len(model.TaskStatuses))
	for i, status := range model.TaskStatuses {
		columns[i] = Column{Status: status, ColorClass: StatusColor(status), Tasks: []model.Task{}}
		index[status] = i
	}
	for _, task := range tasks {
		if i, ok := index[task.Status]; ok {
			columns[i].Tasks = append(columns[i].Tasks, task)
		}
	}
	return columns
}
