package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking status names that keep a room occupied for availability checks.
const (
	StatusConfirmed = "Confirmed"
	StatusCheckedIn = "Checked In"
)

// PendingStatusID is the booking_statuses id every new booking starts in.
const PendingStatusID uint = 1

// Booking is a reservation row. Guest contact fields are duplicated on the
// booking because guests may book without an account (UserID nil).
type Booking struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	BookingReference string         `gorm:"column:booking_reference;size:20" json:"booking_reference"`
	UserID           *uint          `gorm:"column:user_id" json:"user_id,omitempty"`
	GuestFirstName   string         `gorm:"column:guest_first_name" json:"guest_first_name"`
	GuestLastName    string         `gorm:"column:guest_last_name" json:"guest_last_name"`
	GuestEmail       string         `gorm:"column:guest_email" json:"guest_email"`
	GuestPhone       string         `gorm:"column:guest_phone" json:"guest_phone"`
	GuestNationality string         `gorm:"column:guest_nationality" json:"guest_nationality"`
	RoomID           uint           `gorm:"column:room_id" json:"room_id"`
	CheckInDate      datatypes.Date `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate     datatypes.Date `gorm:"column:check_out_date" json:"check_out_date"`
	Nights           int            `gorm:"column:nights" json:"nights"`
	GuestsCount      int            `gorm:"column:guests_count" json:"guests_count"`
	RoomPrice        float64        `gorm:"column:room_price" json:"room_price"`
	TotalAmount      float64        `gorm:"column:total_amount" json:"total_amount"`
	FinalAmount      float64        `gorm:"column:final_amount" json:"final_amount"`
	StatusID         uint           `gorm:"column:status_id" json:"status_id"`
	SpecialRequests  string         `gorm:"column:special_requests" json:"special_requests,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }
