package services

import (
	"context"
	"errors"
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

var ErrRoomNotFound = errors.New("room not found")

// Column list shared by every room read; rt.name is aliased so the scan
// struct can pick up both the room and room-type name fields.
const roomColumns = `
	r.id,
	r.name,
	r.name_th,
	r.room_number,
	r.floor_number,
	rt.name AS room_type,
	rt.name_th AS room_type_th,
	r.base_price,
	r.capacity,
	r.max_capacity,
	r.size_sqm,
	r.description,
	r.description_th,
	r.detailed_description,
	r.detailed_description_th,
	r.main_image_url,
	r.images,
	r.amenities,
	r.amenities_th,
	r.is_available,
	r.status,
	r.has_air_conditioning,
	r.has_wifi,
	r.has_private_bathroom,
	r.has_shared_bathroom,
	r.has_desk,
	r.bed_type,
	r.bed_count,
	r.weekend_price,
	r.holiday_price,
	r.requires_stairs`

// Only these booking statuses block a room.
var occupyingStatuses = []string{models.StatusConfirmed, models.StatusCheckedIn}

// RoomService wraps *gorm.DB for room and room-type reads.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// GetAvailableRooms returns every room with is_available = true, joined
// with its room type, ordered by floor then room number.
func (s *RoomService) GetAvailableRooms(ctx context.Context) ([]models.Room, error) {
	var rows []models.RoomRow
	err := s.DB.WithContext(ctx).Raw(`
		SELECT `+roomColumns+`
		FROM rooms r
		JOIN room_types rt ON r.room_type_id = rt.id
		WHERE r.is_available = true
		ORDER BY r.floor_number, r.room_number`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	rooms := make([]models.Room, 0, len(rows))
	for _, row := range rows {
		room, err := row.ToRoom()
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", row.ID, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// GetRoomByID returns a single available room. An unavailable room is
// indistinguishable from a missing one: both yield ErrRoomNotFound.
func (s *RoomService) GetRoomByID(ctx context.Context, id int) (models.Room, error) {
	var rows []models.RoomRow
	err := s.DB.WithContext(ctx).Raw(`
		SELECT `+roomColumns+`
		FROM rooms r
		JOIN room_types rt ON r.room_type_id = rt.id
		WHERE r.id = ? AND r.is_available = true`, id).Scan(&rows).Error
	if err != nil {
		return models.Room{}, err
	}
	if len(rows) == 0 {
		return models.Room{}, ErrRoomNotFound
	}
	room, err := rows[0].ToRoom()
	if err != nil {
		return models.Room{}, fmt.Errorf("room %d: %w", rows[0].ID, err)
	}
	return room, nil
}

// GetRoomTypes returns all room types in display order.
func (s *RoomService) GetRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			name_th,
			description,
			description_th,
			base_capacity,
			max_capacity,
			base_price
		FROM room_types
		ORDER BY sort_order, name`).Scan(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// CheckAvailability reports whether the requested half-open range
// [checkIn, checkOut) is free of occupying bookings for the room. The
// checkout day itself is not occupied, so back-to-back turnover counts as
// available. Dates are passed through to the store as received; a malformed
// date surfaces as a query error.
func (s *RoomService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut string) (bool, error) {
	var result struct {
		ConflictCount int64 `gorm:"column:conflict_count"`
	}
	err := s.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS conflict_count
		FROM bookings b
		JOIN booking_statuses bs ON b.status_id = bs.id
		WHERE b.room_id = ?
		  AND bs.name IN ?
		  AND b.check_in_date < ?
		  AND b.check_out_date > ?`,
		roomID, occupyingStatuses, checkOut, checkIn).Scan(&result).Error
	if err != nil {
		return false, err
	}
	return result.ConflictCount == 0, nil
}
