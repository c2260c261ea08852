package calc

import (
	"strings"
	"time"

	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
)

// RoomFilters narrows an availability search. Zero values mean no filter.
type RoomFilters struct {
	ZonePrefix string // Room number prefix, e.g. "A"
	Floor      int    // Floor digit parsed from the room number
	RoomType   string
}

// AvailableRooms returns the rooms with no booking overlapping [start, end).
// The overlap test is the standard half-open interval check, so a booking
// ending exactly on the query start does not conflict. Cancelled bookings
// never block a room.
func AvailableRooms(rooms []entity.Room, bookings []entity.Booking, start, end time.Time, filters RoomFilters) []entity.Room {
	conflicts := make(map[string]bool)
	for _, b := range bookings {
		if b.Status == enum.BookingStatusCancelled {
			continue
		}
		if b.CheckIn.Before(end) && b.CheckOut.After(start) {
			conflicts[b.RoomID.String()] = true
		}
	}

	available := make([]entity.Room, 0, len(rooms))
	for _, r := range rooms {
		if conflicts[r.ID.String()] {
			continue
		}
		if filters.ZonePrefix != "" && !strings.HasPrefix(r.RoomNumber, filters.ZonePrefix) {
			continue
		}
		if filters.Floor != 0 && r.Floor() != filters.Floor {
			continue
		}
		if filters.RoomType != "" && r.RoomType != filters.RoomType {
			continue
		}
		available = append(available, r)
	}
	return available
}
