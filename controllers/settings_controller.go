package controllers

import (
	"log"
	"net/http"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsSvc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{SettingsSvc: svc}
}

// GetSettings (GET /api/settings) returns the settings as an object keyed
// by setting_key, not a list.
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	settings, err := ctrl.SettingsSvc.GetSettings(c.Request.Context())
	if err != nil {
		log.Printf("❌ Error fetching settings: %v", err)
		utils.JSONInternalError(c, "Failed to fetch settings", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}
