// Package api exposes FlowBoard over HTTP with gin.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"flowboard/internal/auth"
	"flowboard/internal/service"
)

// NewRouter builds the engine with recovery, request ids, request logging and
// caller resolution in front of every route.
func NewRouter(svc *service.Services, resolver auth.Resolver, log *logrus.Logger) *gin.Engine {
	return newRouter(NewHandler(svc, log), resolver, log)
}

func newRouter(h *Handler, resolver auth.Resolver, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(log))
	router.Use(identify(resolver))

	h.RegisterRoutes(router)
	return router
}
