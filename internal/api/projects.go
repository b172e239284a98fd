package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowboard/internal/pagination"
	"flowboard/internal/repository"
	"flowboard/internal/validation"
)

func (h *Handler) ListProjects(c *gin.Context) {
	params := pagination.FromQuery(c.Query("page"), c.Query("limit"), pagination.DefaultLimit)
	filter := repository.ProjectFilter{Status: c.Query("status")}

	page, err := h.svc.Projects.List(c.Request.Context(), filter, params)
	if err != nil {
		h.failWith(c, err, "", "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) CreateProject(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.failWith(c, err, "", "Failed to create project")
		return
	}
	input, err := validation.ParseCreateProject(raw)
	if err != nil {
		h.failWith(c, err, "", "Failed to create project")
		return
	}

	project, err := h.svc.Projects.Create(c.Request.Context(), caller(c), input)
	if err != nil {
		h.failWith(c, err, "", "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.svc.Projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failWith(c, err, "Project not found", "Failed to fetch project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.failWith(c, err, "", "Failed to update project")
		return
	}
	input, err := validation.ParseUpdateProject(raw)
	if err != nil {
		h.failWith(c, err, "", "Failed to update project")
		return
	}

	project, err := h.svc.Projects.Update(c.Request.Context(), caller(c), c.Param("id"), input)
	if err != nil {
		h.failWith(c, err, "Project not found", "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.svc.Projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.failWith(c, err, "Project not found", "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, deleted{Success: true})
}

func (h *Handler) GetBoard(c *gin.Context) {
	board, err := h.svc.Projects.Board(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failWith(c, err, "Project not found", "Failed to fetch board")
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *Handler) AddMember(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.failWith(c, err, "", "Failed to add member")
		return
	}
	input, err := validation.ParseAddMember(raw)
	if err != nil {
		h.failWith(c, err, "", "Failed to add member")
		return
	}

	member, err := h.svc.Projects.AddMember(c.Request.Context(), caller(c), c.Param("id"), input)
	if err != nil {
		h.failWith(c, err, "Project or user not found", "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *Handler) RemoveMember(c *gin.Context) {
	err := h.svc.Projects.RemoveMember(c.Request.Context(), caller(c), c.Param("id"), c.Param("userId"))
	if err != nil {
		h.failWith(c, err, "Member not found", "Failed to remove member")
		return
	}
	c.JSON(http.StatusOK, deleted{Success: true})
}
