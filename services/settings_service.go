package services

import (
	"context"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// SettingsService wraps *gorm.DB for system settings reads.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// GetSettings reshapes the settings table into a map keyed by setting_key.
// Duplicate keys collapse last-write-wins in query order.
func (s *SettingsService) GetSettings(ctx context.Context) (map[string]models.SystemSetting, error) {
	var rows []models.SystemSetting
	err := s.DB.WithContext(ctx).Raw(`
		SELECT
			setting_key,
			setting_value,
			setting_value_th,
			description,
			description_th,
			data_type,
			category
		FROM system_settings
		ORDER BY category, setting_key`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	settings := make(map[string]models.SystemSetting, len(rows))
	for _, row := range rows {
		settings[row.SettingKey] = row
	}
	return settings, nil
}
