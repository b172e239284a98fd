package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flowboard/internal/pagination"
	"flowboard/internal/validation"
)

func (h *Handler) ListUsers(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = pagination.LargeLimit
	}

	users, err := h.svc.Users.Search(c.Request.Context(), c.Query("search"), limit)
	if err != nil {
		h.failWith(c, err, "", "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.svc.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failWith(c, err, "User not found", "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.failWith(c, err, "", "Failed to update user")
		return
	}
	input, err := validation.ParseUpdateUser(raw)
	if err != nil {
		h.failWith(c, err, "", "Failed to update user")
		return
	}

	user, err := h.svc.Users.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.failWith(c, err, "User not found", "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, user)
}
