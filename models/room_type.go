package models

// RoomType is a room category. BasePrice stays the driver-native decimal
// string; this endpoint applies no coercion.
type RoomType struct {
	ID            uint   `gorm:"column:id" json:"id"`
	Name          string `gorm:"column:name" json:"name"`
	NameTH        string `gorm:"column:name_th" json:"name_th"`
	Description   string `gorm:"column:description" json:"description"`
	DescriptionTH string `gorm:"column:description_th" json:"description_th"`
	BaseCapacity  int    `gorm:"column:base_capacity" json:"base_capacity"`
	MaxCapacity   int    `gorm:"column:max_capacity" json:"max_capacity"`
	BasePrice     string `gorm:"column:base_price" json:"base_price"`
}
