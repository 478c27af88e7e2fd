package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NewHealthHandler registers GET /health
func NewHealthHandler(r gin.IRoutes, healthUC usecase.HealthUsecase) {
	r.GET("/health", func(c *gin.Context) {
		status, healthy := healthUC.Check(c.Request.Context())
		if !healthy {
			c.JSON(http.StatusServiceUnavailable, response.Response{Success: false, Message: "Service degraded", Data: status})
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})
}
