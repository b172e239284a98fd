package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowboard/internal/model"
	"flowboard/internal/pagination"
	"flowboard/internal/repository"
)

func (h *Handler) ListActivity(c *gin.Context) {
	params := pagination.FromQuery(c.Query("page"), c.Query("limit"), pagination.DefaultLimit)
	filter := repository.ActivityFilter{
		ProjectID: c.Query("projectId"),
		TaskID:    c.Query("taskId"),
		UserID:    c.Query("userId"),
	}

	page, err := h.svc.Activity.List(c.Request.Context(), filter, params)
	if err != nil {
		h.failWith(c, err, "", "Failed to fetch activity")
		return
	}

	now := h.now()
	c.JSON(http.StatusOK, pagination.Map(page, func(a model.Activity) activityView {
		return newActivityView(a, now)
	}))
}
