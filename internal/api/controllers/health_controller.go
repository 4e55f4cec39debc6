package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"smartcity/internal/services"
	"smartcity/pkg/utils"
)

type HealthController struct {
	healthService services.HealthServiceInterface
}

func NewHealthController(healthService services.HealthServiceInterface) *HealthController {
	return &HealthController{healthService: healthService}
}

// Health serves GET /health. 503 when the backend does not answer.
func (hc *HealthController) Health(c *gin.Context) {
	status := hc.healthService.CheckBackend(c.Request.Context())
	if !status.Reachable {
		utils.RespondJSON(c, http.StatusServiceUnavailable, status, "unhealthy")
		return
	}
	utils.RespondJSON(c, http.StatusOK, status, "healthy")
}
