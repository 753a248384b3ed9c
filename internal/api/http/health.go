package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type HealthHandler struct {
	serviceName string
}

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	for _, path := range []string{"/health", "/healthz"} {
		r.GET(path, h.HealthCheck)
		r.HEAD(path, h.HealthCheck)
	}
}
