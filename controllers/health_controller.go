package controllers

import (
	"net/http"
	"time"

	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Check (GET /api/health) runs a trivial liveness query. Unlike the other
// endpoints the failure body is still a structured data object, since
// health-check consumers expect one either way.
func (ctrl *HealthController) Check(c *gin.Context) {
	if err := ctrl.DB.WithContext(c.Request.Context()).Exec("SELECT 1").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"data": gin.H{
				"message":  "API health check failed",
				"database": "disconnected",
				"error":    err.Error(),
			},
		})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":   "API is healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
