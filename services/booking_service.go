package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// BookingService wraps *gorm.DB for booking writes.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput is the request body for POST /bookings. The binding
// tags reject missing or empty required fields before any query runs.
type CreateBookingInput struct {
	GuestFirstName   string `json:"guest_first_name" binding:"required"`
	GuestLastName    string `json:"guest_last_name" binding:"required"`
	GuestEmail       string `json:"guest_email" binding:"required"`
	GuestPhone       string `json:"guest_phone"`
	GuestNationality string `json:"guest_nationality"`
	RoomID           uint   `json:"room_id" binding:"required"`
	CheckInDate      string `json:"check_in_date" binding:"required"`
	CheckOutDate     string `json:"check_out_date" binding:"required"`
	GuestsCount      int    `json:"guests_count"`
	SpecialRequests  string `json:"special_requests"`
}

// BookingConfirmation is the payload returned after a successful insert.
type BookingConfirmation struct {
	BookingID        uint    `json:"booking_id"`
	BookingReference string  `json:"booking_reference"`
	TotalAmount      float64 `json:"total_amount"`
	Nights           int     `json:"nights"`
}

// CreateBooking looks up the room's current base price, prices the stay and
// inserts the booking in the initial pending status. The stored amounts are
// authoritative once written; nothing recomputes them later. No
// availability re-check happens here — callers are expected to hit
// POST /rooms/availability first.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (BookingConfirmation, error) {
	var room struct {
		BasePrice float64 `gorm:"column:base_price"`
	}
	tx := s.DB.WithContext(ctx).Raw(`SELECT base_price FROM rooms WHERE id = ?`, in.RoomID).Scan(&room)
	if tx.Error != nil {
		return BookingConfirmation{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return BookingConfirmation{}, ErrRoomNotFound
	}

	checkIn, err := time.Parse(dateLayout, in.CheckInDate)
	if err != nil {
		return BookingConfirmation{}, fmt.Errorf("invalid check_in_date: %w", err)
	}
	checkOut, err := time.Parse(dateLayout, in.CheckOutDate)
	if err != nil {
		return BookingConfirmation{}, fmt.Errorf("invalid check_out_date: %w", err)
	}

	// Not floored at zero: a check-out before check-in yields non-positive
	// nights and flows into the insert unvalidated.
	nights := NightsBetween(checkIn, checkOut)
	total := room.BasePrice * float64(nights)

	guests := in.GuestsCount
	if guests == 0 {
		guests = 1
	}

	booking := models.Booking{
		BookingReference: utils.GenerateBookingReference(),
		GuestFirstName:   in.GuestFirstName,
		GuestLastName:    in.GuestLastName,
		GuestEmail:       in.GuestEmail,
		GuestPhone:       in.GuestPhone,
		GuestNationality: in.GuestNationality,
		RoomID:           in.RoomID,
		CheckInDate:      datatypes.Date(checkIn),
		CheckOutDate:     datatypes.Date(checkOut),
		Nights:           nights,
		GuestsCount:      guests,
		RoomPrice:        room.BasePrice,
		TotalAmount:      total,
		FinalAmount:      total,
		StatusID:         models.PendingStatusID,
		SpecialRequests:  in.SpecialRequests,
	}
	if err := s.DB.WithContext(ctx).Create(&booking).Error; err != nil {
		return BookingConfirmation{}, err
	}

	return BookingConfirmation{
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		TotalAmount:      total,
		Nights:           nights,
	}, nil
}

// NightsBetween counts billable nights, rounding partial days up.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
