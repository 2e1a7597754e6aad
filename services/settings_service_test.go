package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsTestColumns = []string{
	"setting_key", "setting_value", "setting_value_th",
	"description", "description_th", "data_type", "category",
}

func TestGetSettingsKeyedBySettingKey(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSettingsService(db)

	rows := sqlmock.NewRows(settingsTestColumns).
		AddRow("checkin_time", "14:00", "", "Earliest check-in", "", "time", "booking").
		AddRow("site_name", "Riverside Hostel", "", "", "", "string", "general")
	mock.ExpectQuery("FROM system_settings").WillReturnRows(rows)

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "14:00", settings["checkin_time"].SettingValue)
	assert.Equal(t, "time", settings["checkin_time"].DataType)
	assert.Equal(t, uint(0), settings["site_name"].ID)
}

func TestGetSettingsDuplicateKeysCollapseLastWriteWins(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSettingsService(db)

	rows := sqlmock.NewRows(settingsTestColumns).
		AddRow("site_name", "Old Name", "", "", "", "string", "general").
		AddRow("site_name", "New Name", "", "", "", "string", "general")
	mock.ExpectQuery("FROM system_settings").WillReturnRows(rows)

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "New Name", settings["site_name"].SettingValue)
}
