package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"flowboard/internal/service"
)

// Handler serves the JSON API on top of the service layer.
type Handler struct {
	svc *service.Services
	log *logrus.Logger
	now func() time.Time
}

func NewHandler(svc *service.Services, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log, now: time.Now}
}

// RegisterRoutes mounts every route. Mutations require a resolved caller.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	write := requireIdentity()
	{
		projects := api.Group("/projects")
		{
			projects.GET("", h.ListProjects)
			projects.POST("", write, h.CreateProject)
			projects.GET("/:id", h.GetProject)
			projects.PATCH("/:id", write, h.UpdateProject)
			projects.DELETE("/:id", write, h.DeleteProject)
			projects.GET("/:id/board", h.GetBoard)
			projects.POST("/:id/members", write, h.AddMember)
			projects.DELETE("/:id/members/:userId", write, h.RemoveMember)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.ListTasks)
			tasks.POST("", write, h.CreateTask)
			tasks.GET("/:id", h.GetTask)
			tasks.PATCH("/:id", write, h.UpdateTask)
			tasks.DELETE("/:id", write, h.DeleteTask)
		}

		api.GET("/comments", h.ListComments)
		api.POST("/comments", write, h.CreateComment)

		api.GET("/activity", h.ListActivity)

		users := api.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.GET("/:id", h.GetUser)
			users.PATCH("/:id", write, h.UpdateUser)
		}

		api.GET("/labels", h.ListLabels)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
