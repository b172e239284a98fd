package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListLabels(c *gin.Context) {
	labels, err := h.svc.Labels.List(c.Request.Context())
	if err != nil {
		h.failWith(c, err, "", "Failed to fetch labels")
		return
	}
	c.JSON(http.StatusOK, labels)
}
