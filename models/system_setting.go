package models

// SystemSetting is one configuration row. ID is not part of the settings
// projection and stays zero-filled in responses. DataType is advisory
// (string|number|boolean|json|time|date); the API never parses the value.
type SystemSetting struct {
	ID             uint   `gorm:"-" json:"id"`
	SettingKey     string `gorm:"column:setting_key" json:"setting_key"`
	SettingValue   string `gorm:"column:setting_value" json:"setting_value"`
	SettingValueTH string `gorm:"column:setting_value_th" json:"setting_value_th"`
	Description    string `gorm:"column:description" json:"description"`
	DescriptionTH  string `gorm:"column:description_th" json:"description_th"`
	DataType       string `gorm:"column:data_type" json:"data_type"`
	Category       string `gorm:"column:category" json:"category"`
}
