package models

import (
	"encoding/json"
	"strings"
)

// Room is the API shape of a room joined with its room type. List columns
// are decoded and numeric/boolean columns coerced so the JSON output does
// not depend on the driver's wire representation.
type Room struct {
	ID                    uint     `json:"id"`
	Name                  string   `json:"name"`
	NameTH                string   `json:"name_th"`
	RoomNumber            string   `json:"room_number"`
	FloorNumber           int      `json:"floor_number"`
	RoomType              string   `json:"room_type"`
	RoomTypeTH            string   `json:"room_type_th"`
	BasePrice             float64  `json:"base_price"`
	Capacity              int      `json:"capacity"`
	MaxCapacity           int      `json:"max_capacity"`
	SizeSqm               float64  `json:"size_sqm"`
	Description           string   `json:"description"`
	DescriptionTH         string   `json:"description_th"`
	DetailedDescription   string   `json:"detailed_description"`
	DetailedDescriptionTH string   `json:"detailed_description_th"`
	MainImageURL          string   `json:"main_image_url"`
	Images                []string `json:"images"`
	Amenities             []string `json:"amenities"`
	AmenitiesTH           []string `json:"amenities_th"`
	IsAvailable           bool     `json:"is_available"`
	Status                string   `json:"status"`
	HasAirConditioning    bool     `json:"has_air_conditioning"`
	HasWifi               bool     `json:"has_wifi"`
	HasPrivateBathroom    bool     `json:"has_private_bathroom"`
	HasSharedBathroom     bool     `json:"has_shared_bathroom"`
	HasDesk               bool     `json:"has_desk"`
	BedType               string   `json:"bed_type"`
	BedCount              int      `json:"bed_count"`
	WeekendPrice          float64  `json:"weekend_price"`
	HolidayPrice          float64  `json:"holiday_price"`
	RequiresStairs        bool     `json:"requires_stairs"`
}

// RoomRow is the raw scan target for the rooms/room_types join. The
// images/amenities columns are serialized JSON text in the store and stay
// strings here until ToRoom decodes them.
type RoomRow struct {
	ID                    uint    `gorm:"column:id"`
	Name                  string  `gorm:"column:name"`
	NameTH                string  `gorm:"column:name_th"`
	RoomNumber            string  `gorm:"column:room_number"`
	FloorNumber           int     `gorm:"column:floor_number"`
	RoomType              string  `gorm:"column:room_type"`
	RoomTypeTH            string  `gorm:"column:room_type_th"`
	BasePrice             float64 `gorm:"column:base_price"`
	Capacity              int     `gorm:"column:capacity"`
	MaxCapacity           int     `gorm:"column:max_capacity"`
	SizeSqm               float64 `gorm:"column:size_sqm"`
	Description           string  `gorm:"column:description"`
	DescriptionTH         string  `gorm:"column:description_th"`
	DetailedDescription   string  `gorm:"column:detailed_description"`
	DetailedDescriptionTH string  `gorm:"column:detailed_description_th"`
	MainImageURL          string  `gorm:"column:main_image_url"`
	Images                string  `gorm:"column:images"`
	Amenities             string  `gorm:"column:amenities"`
	AmenitiesTH           string  `gorm:"column:amenities_th"`
	IsAvailable           bool    `gorm:"column:is_available"`
	Status                string  `gorm:"column:status"`
	HasAirConditioning    bool    `gorm:"column:has_air_conditioning"`
	HasWifi               bool    `gorm:"column:has_wifi"`
	HasPrivateBathroom    bool    `gorm:"column:has_private_bathroom"`
	HasSharedBathroom     bool    `gorm:"column:has_shared_bathroom"`
	HasDesk               bool    `gorm:"column:has_desk"`
	BedType               string  `gorm:"column:bed_type"`
	BedCount              int     `gorm:"column:bed_count"`
	WeekendPrice          float64 `gorm:"column:weekend_price"`
	HolidayPrice          float64 `gorm:"column:holiday_price"`
	RequiresStairs        bool    `gorm:"column:requires_stairs"`
}

// ToRoom converts a scanned row into the API entity, decoding the
// serialized list columns. An empty column decodes to an empty list.
func (r RoomRow) ToRoom() (Room, error) {
	images, err := decodeStringList(r.Images)
	if err != nil {
		return Room{}, err
	}
	amenities, err := decodeStringList(r.Amenities)
	if err != nil {
		return Room{}, err
	}
	amenitiesTH, err := decodeStringList(r.AmenitiesTH)
	if err != nil {
		return Room{}, err
	}

	return Room{
		ID:                    r.ID,
		Name:                  r.Name,
		NameTH:                r.NameTH,
		RoomNumber:            r.RoomNumber,
		FloorNumber:           r.FloorNumber,
		RoomType:              r.RoomType,
		RoomTypeTH:            r.RoomTypeTH,
		BasePrice:             r.BasePrice,
		Capacity:              r.Capacity,
		MaxCapacity:           r.MaxCapacity,
		SizeSqm:               r.SizeSqm,
		Description:           r.Description,
		DescriptionTH:         r.DescriptionTH,
		DetailedDescription:   r.DetailedDescription,
		DetailedDescriptionTH: r.DetailedDescriptionTH,
		MainImageURL:          r.MainImageURL,
		Images:                images,
		Amenities:             amenities,
		AmenitiesTH:           amenitiesTH,
		IsAvailable:           r.IsAvailable,
		Status:                r.Status,
		HasAirConditioning:    r.HasAirConditioning,
		HasWifi:               r.HasWifi,
		HasPrivateBathroom:    r.HasPrivateBathroom,
		HasSharedBathroom:     r.HasSharedBathroom,
		HasDesk:               r.HasDesk,
		BedType:               r.BedType,
		BedCount:              r.BedCount,
		WeekendPrice:          r.WeekendPrice,
		HolidayPrice:          r.HolidayPrice,
		RequiresStairs:        r.RequiresStairs,
	}, nil
}

func decodeStringList(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	if out == nil {
		// column literally holds "null"
		return []string{}, nil
	}
	return out, nil
}
