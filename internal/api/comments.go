package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowboard/internal/validation"
)

func (h *Handler) ListComments(c *gin.Context) {
	taskID := c.Query("taskId")
	if taskID == "" {
		fail(c, http.StatusBadRequest, "taskId is required")
		return
	}

	comments, err := h.svc.Comments.ListThreaded(c.Request.Context(), taskID)
	if err != nil {
		h.failWith(c, err, "", "Failed to fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *Handler) CreateComment(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.failWith(c, err, "", "Failed to create comment")
		return
	}
	input, err := validation.ParseCreateComment(raw)
	if err != nil {
		h.failWith(c, err, "", "Failed to create comment")
		return
	}

	comment, err := h.svc.Comments.Create(c.Request.Context(), caller(c), input)
	if err != nil {
		h.failWith(c, err, "Task not found", "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}
