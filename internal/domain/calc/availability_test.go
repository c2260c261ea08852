package calc

import (
	"testing"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableRooms(t *testing.T) {
	roomA := entity.Room{ID: uuid.New(), RoomNumber: "A101", RoomType: "Standard"}
	roomB := entity.Room{ID: uuid.New(), RoomNumber: "A205", RoomType: "Deluxe"}
	roomC := entity.Room{ID: uuid.New(), RoomNumber: "B101", RoomType: "Standard"}
	rooms := []entity.Room{roomA, roomB, roomC}

	occupied := entity.Booking{
		ID:       uuid.New(),
		RoomID:   roomA.ID,
		Status:   enum.BookingStatusCheckedIn,
		CheckIn:  date(2024, 7, 1),
		CheckOut: date(2024, 7, 5),
	}

	t.Run("overlapping booking excludes the room", func(t *testing.T) {
		got := AvailableRooms(rooms, []entity.Booking{occupied}, date(2024, 7, 3), date(2024, 7, 4), RoomFilters{})
		ids := roomIDs(got)
		assert.NotContains(t, ids, roomA.ID)
		assert.Contains(t, ids, roomB.ID)
		assert.Contains(t, ids, roomC.ID)
	})

	t.Run("adjacent range does not conflict", func(t *testing.T) {
		// Booking ends 7/5; a query starting 7/5 is free (half-open interval)
		got := AvailableRooms(rooms, []entity.Booking{occupied}, date(2024, 7, 5), date(2024, 7, 6), RoomFilters{})
		assert.Contains(t, roomIDs(got), roomA.ID)
	})

	t.Run("range ending at check-in does not conflict", func(t *testing.T) {
		got := AvailableRooms(rooms, []entity.Booking{occupied}, date(2024, 6, 28), date(2024, 7, 1), RoomFilters{})
		assert.Contains(t, roomIDs(got), roomA.ID)
	})

	t.Run("cancelled booking never blocks", func(t *testing.T) {
		cancelled := occupied
		cancelled.Status = enum.BookingStatusCancelled
		got := AvailableRooms(rooms, []entity.Booking{cancelled}, date(2024, 7, 3), date(2024, 7, 4), RoomFilters{})
		assert.Contains(t, roomIDs(got), roomA.ID)
	})

	t.Run("zone prefix filter", func(t *testing.T) {
		got := AvailableRooms(rooms, nil, date(2024, 7, 1), date(2024, 7, 2), RoomFilters{ZonePrefix: "A"})
		require.Len(t, got, 2)
		for _, r := range got {
			assert.Equal(t, byte('A'), r.RoomNumber[0])
		}
	})

	t.Run("floor filter", func(t *testing.T) {
		got := AvailableRooms(rooms, nil, date(2024, 7, 1), date(2024, 7, 2), RoomFilters{Floor: 2})
		require.Len(t, got, 1)
		assert.Equal(t, "A205", got[0].RoomNumber)
	})

	t.Run("room type filter", func(t *testing.T) {
		got := AvailableRooms(rooms, nil, date(2024, 7, 1), date(2024, 7, 2), RoomFilters{RoomType: "Standard"})
		require.Len(t, got, 2)
	})

	t.Run("combined filters", func(t *testing.T) {
		got := AvailableRooms(rooms, []entity.Booking{occupied}, date(2024, 7, 3), date(2024, 7, 4),
			RoomFilters{ZonePrefix: "A", RoomType: "Standard"})
		// Only A101 matches both filters and it is occupied
		assert.Empty(t, got)
	})
}

func roomIDs(rooms []entity.Room) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRoomFloor(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"A305", 3},
		{"101", 1},
		{"B12", 1},
		{"X", 0},
	}
	for _, tt := range tests {
		r := entity.Room{RoomNumber: tt.number}
		assert.Equal(t, tt.want, r.Floor(), "room %s", tt.number)
	}
}
