package http

import (
	"net/http"

	"github.com/biased-framework/go-service/internal/project"
	"github.com/gin-gonic/gin"
)

type WelcomeResponse struct {
	Message  string `json:"message"`
	Problem  string `json:"problem"`
	Personas string `json:"personas"`
}

// ProjectHandler serves the project landing payload on "/".
type ProjectHandler struct {
	meta project.Metadata
}

func NewProjectHandler(meta project.Metadata) *ProjectHandler {
	return &ProjectHandler{meta: meta}
}

func (h *ProjectHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{
		Message:  h.meta.Welcome(),
		Problem:  h.meta.Problem,
		Personas: h.meta.Personas,
	})
}

func (h *ProjectHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Welcome)
	r.HEAD("/", h.Welcome)
}
