package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowboard/internal/pagination"
	"flowboard/internal/repository"
	"flowboard/internal/validation"
)

func (h *Handler) ListTasks(c *gin.Context) {
	params := pagination.FromQuery(c.Query("page"), c.Query("limit"), pagination.LargeLimit)
	filter := repository.TaskFilter{
		ProjectID:  c.Query("projectId"),
		Status:     c.Query("status"),
		AssigneeID: c.Query("assigneeId"),
	}

	page, err := h.svc.Tasks.List(c.Request.Context(), filter, params)
	if err != nil {
		h.failWith(c, err, "", "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) CreateTask(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.failWith(c, err, "", "Failed to create task")
		return
	}
	input, err := validation.ParseCreateTask(raw)
	if err != nil {
		h.failWith(c, err, "", "Failed to create task")
		return
	}

	task, err := h.svc.Tasks.Create(c.Request.Context(), caller(c), input)
	if err != nil {
		h.failWith(c, err, "Project not found", "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c *gin.Context) {
	task, err := h.svc.Tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failWith(c, err, "Task not found", "Failed to fetch task")
		return
	}
	c.JSON(http.StatusOK, newTaskDetail(task))
}

func (h *Handler) UpdateTask(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.failWith(c, err, "", "Failed to update task")
		return
	}
	input, err := validation.ParseUpdateTask(raw)
	if err != nil {
		h.failWith(c, err, "", "Failed to update task")
		return
	}

	task, err := h.svc.Tasks.Update(c.Request.Context(), caller(c), c.Param("id"), input)
	if err != nil {
		h.failWith(c, err, "Task not found", "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	if err := h.svc.Tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.failWith(c, err, "Task not found", "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, deleted{Success: true})
}
