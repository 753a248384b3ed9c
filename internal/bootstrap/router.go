package bootstrap

import (
	httpapi "github.com/biased-framework/go-service/internal/api/http"
	"github.com/biased-framework/go-service/internal/api/http/middleware"
	"github.com/biased-framework/go-service/internal/project"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Project        project.Metadata
	AllowedOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORS(dep.AllowedOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.Project.Name)
	healthHandler.RegisterRoutes(r)

	projectHandler := httpapi.NewProjectHandler(dep.Project)
	projectHandler.RegisterRoutes(r)

	return r
}
