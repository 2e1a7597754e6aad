package models

import "time"

// Testimonial is a guest review. Only approved rows ever reach the API.
// Ratings arrive from the store as decimals and flags as tinyints; the
// scan layer coerces both to the types promised here.
type Testimonial struct {
	ID                  uint       `gorm:"column:id" json:"id"`
	CustomerName        string     `gorm:"column:customer_name" json:"customer_name"`
	CustomerNameTH      string     `gorm:"column:customer_name_th" json:"customer_name_th"`
	CustomerNationality string     `gorm:"column:customer_nationality" json:"customer_nationality"`
	CustomerAvatarURL   string     `gorm:"column:customer_avatar_url" json:"customer_avatar_url"`
	RoomID              *uint      `gorm:"column:room_id" json:"room_id"`
	BookingID           *uint      `gorm:"column:booking_id" json:"booking_id"`
	OverallRating       float64    `gorm:"column:overall_rating" json:"overall_rating"`
	CleanlinessRating   float64    `gorm:"column:cleanliness_rating" json:"cleanliness_rating"`
	LocationRating      float64    `gorm:"column:location_rating" json:"location_rating"`
	ValueRating         float64    `gorm:"column:value_rating" json:"value_rating"`
	ServiceRating       float64    `gorm:"column:service_rating" json:"service_rating"`
	Title               string     `gorm:"column:title" json:"title"`
	TitleTH             string     `gorm:"column:title_th" json:"title_th"`
	Comment             string     `gorm:"column:comment" json:"comment"`
	CommentTH           string     `gorm:"column:comment_th" json:"comment_th"`
	StayDate            *time.Time `gorm:"column:stay_date" json:"stay_date"`
	IsVerified          bool       `gorm:"column:is_verified" json:"is_verified"`
	IsApproved          bool       `gorm:"column:is_approved" json:"is_approved"`
	IsFeatured          bool       `gorm:"column:is_featured" json:"is_featured"`
	CreatedAt           time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at" json:"updated_at"`
}
