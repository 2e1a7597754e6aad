package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roomTestColumns = []string{
	"id", "name", "name_th", "room_number", "floor_number",
	"room_type", "room_type_th",
	"base_price", "capacity", "max_capacity", "size_sqm",
	"description", "description_th", "detailed_description", "detailed_description_th",
	"main_image_url", "images", "amenities", "amenities_th",
	"is_available", "status",
	"has_air_conditioning", "has_wifi", "has_private_bathroom", "has_shared_bathroom", "has_desk",
	"bed_type", "bed_count", "weekend_price", "holiday_price", "requires_stairs",
}

func TestGetAvailableRoomsCoercesDriverValues(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	// Decimals arrive as strings and flags as tinyints, the way the MySQL
	// driver hands them over.
	rows := sqlmock.NewRows(roomTestColumns).AddRow(
		1, "Dorm A", "ดอร์มเอ", "101", 1,
		"Dormitory", "ห้องนอนรวม",
		"350.00", 4, 6, "18.5",
		"Four-bed dorm", "", "Bright four-bed dorm on the first floor", "",
		"https://img.example.com/101.jpg", `["101-a.jpg","101-b.jpg"]`, `["WiFi","Locker"]`, "",
		1, "active",
		1, 1, 0, 1, 1,
		"bunk", 2, "400.00", "450.00", 0,
	)
	mock.ExpectQuery("FROM rooms r").WillReturnRows(rows)

	rooms, err := svc.GetAvailableRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	got := rooms[0]
	assert.Equal(t, uint(1), got.ID)
	assert.Equal(t, "Dormitory", got.RoomType)
	assert.Equal(t, 350.0, got.BasePrice)
	assert.Equal(t, 18.5, got.SizeSqm)
	assert.Equal(t, 400.0, got.WeekendPrice)
	assert.True(t, got.IsAvailable)
	assert.True(t, got.HasWifi)
	assert.False(t, got.HasPrivateBathroom)
	assert.False(t, got.RequiresStairs)
	assert.Equal(t, []string{"101-a.jpg", "101-b.jpg"}, got.Images)
	assert.Equal(t, []string{"WiFi", "Locker"}, got.Amenities)
	assert.Equal(t, []string{}, got.AmenitiesTH)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailableRoomsEmptyStoreReturnsEmptyList(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("FROM rooms r").WillReturnRows(sqlmock.NewRows(roomTestColumns))

	rooms, err := svc.GetAvailableRooms(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Len(t, rooms, 0)
}

func TestGetAvailableRoomsRejectsMalformedImageColumn(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	rows := sqlmock.NewRows(roomTestColumns).AddRow(
		2, "Dorm B", "", "102", 1,
		"Dormitory", "",
		"350.00", 4, 6, "18.5",
		"", "", "", "",
		"", "{broken", "[]", "[]",
		1, "active",
		1, 1, 0, 1, 1,
		"bunk", 2, "400.00", "450.00", 0,
	)
	mock.ExpectQuery("FROM rooms r").WillReturnRows(rows)

	_, err := svc.GetAvailableRooms(context.Background())
	assert.Error(t, err)
}

func TestGetRoomByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("FROM rooms r").
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows(roomTestColumns))

	_, err := svc.GetRoomByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetRoomTypesKeepsNativeDecimalString(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "name_th", "description", "description_th",
		"base_capacity", "max_capacity", "base_price",
	}).
		AddRow(1, "Dormitory", "ห้องนอนรวม", "Shared room", "", 4, 8, "350.00").
		AddRow(2, "Private", "ห้องส่วนตัว", "Private room", "", 2, 3, "900.00")
	mock.ExpectQuery("FROM room_types").WillReturnRows(rows)

	types, err := svc.GetRoomTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "350.00", types[0].BasePrice)
	assert.Equal(t, "Private", types[1].Name)
}

func TestCheckAvailabilityUsesHalfOpenInterval(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	// Boundary semantics live in the predicate: the checkout day is free,
	// the check-in day is occupied. Bind order is (room, statuses,
	// requested check-out, requested check-in).
	mock.ExpectQuery(`(?s)b\.check_in_date < \?.*b\.check_out_date > \?`).
		WithArgs(int64(1), "Confirmed", "Checked In", "2025-03-14", "2025-03-12").
		WillReturnRows(sqlmock.NewRows([]string{"conflict_count"}).AddRow(1))

	available, err := svc.CheckAvailability(context.Background(), 1, "2025-03-12", "2025-03-14")
	require.NoError(t, err)
	assert.False(t, available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckAvailabilityNoOccupyingBookings(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("FROM bookings b").
		WithArgs(int64(1), "Confirmed", "Checked In", "2025-03-18", "2025-03-15").
		WillReturnRows(sqlmock.NewRows([]string{"conflict_count"}).AddRow(0))

	available, err := svc.CheckAvailability(context.Background(), 1, "2025-03-15", "2025-03-18")
	require.NoError(t, err)
	assert.True(t, available)
}
