package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	health "smat.com/campusapi/internal/modules/health/service"
)

type HealthHandler struct {
	service health.HealthService
}

func NewHealthHandler(service health.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.String(http.StatusOK, health.ActiveText)
}

func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Info(c.Request.Context()))
}
