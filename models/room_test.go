package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRowToRoomDecodesLists(t *testing.T) {
	row := RoomRow{
		ID:          3,
		Name:        "Twin Private",
		RoomNumber:  "204",
		Images:      `["204-a.jpg","204-b.jpg"]`,
		Amenities:   `["WiFi","Locker","Reading light"]`,
		AmenitiesTH: `["ไวไฟ"]`,
		BasePrice:   650,
		IsAvailable: true,
	}

	room, err := row.ToRoom()
	require.NoError(t, err)
	assert.Equal(t, []string{"204-a.jpg", "204-b.jpg"}, room.Images)
	assert.Equal(t, []string{"WiFi", "Locker", "Reading light"}, room.Amenities)
	assert.Equal(t, []string{"ไวไฟ"}, room.AmenitiesTH)
	assert.Equal(t, 650.0, room.BasePrice)
	assert.True(t, room.IsAvailable)
}

func TestRoomRowToRoomEmptyColumnsBecomeEmptyLists(t *testing.T) {
	for _, raw := range []string{"", "   ", "null", "[]"} {
		row := RoomRow{Images: raw, Amenities: raw, AmenitiesTH: raw}
		room, err := row.ToRoom()
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, []string{}, room.Images, "raw %q", raw)
		assert.Equal(t, []string{}, room.Amenities, "raw %q", raw)
		assert.Equal(t, []string{}, room.AmenitiesTH, "raw %q", raw)
	}
}

func TestRoomRowToRoomRejectsMalformedList(t *testing.T) {
	row := RoomRow{Images: "not-json", Amenities: "[]", AmenitiesTH: "[]"}
	_, err := row.ToRoom()
	assert.Error(t, err)
}
