package service

import (
	"context"
	"testing"
	"time"

	"github.com/prasert/baanpak-api/internal/domain/calc"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/infrastructure/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRoomService(db *gorm.DB) *RoomService {
	return NewRoomService(
		repository.NewRoomRepository(db),
		repository.NewBookingRepository(db),
	)
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	ctx := context.Background()

	_, err := svc.CreateRoom(ctx, &CreateRoomInput{
		RoomNumber: "A101", RoomType: "Standard", Price: 400,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(ctx, &CreateRoomInput{
		RoomNumber: "A101", RoomType: "Deluxe", Price: 500,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateRoomStoresPriceInSatang(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, &CreateRoomInput{
		RoomNumber: "A101", RoomType: "Standard", Price: 450.50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(45050), room.Price)
	assert.Equal(t, enum.RoomStatusVacant, room.Status)
}

func TestFindAvailableExcludesBookedRooms(t *testing.T) {
	db := setupTestDB(t)
	rooms := newRoomService(db)
	bookings := newBookingService(db)
	ctx := context.Background()

	booked := seedRoom(t, db, "A101", "Standard", 40000)
	seedRoom(t, db, "A102", "Standard", 40000)
	seedRoom(t, db, "B201", "Deluxe", 60000)
	guest := seedGuest(t, db, "Somchai")

	_, err := bookings.CreateBooking(ctx, &CreateBookingInput{
		GuestID: guest.ID, RoomID: booked.ID,
		CheckIn: date(2026, time.March, 10), CheckOut: date(2026, time.March, 13),
	})
	require.NoError(t, err)

	free, err := rooms.FindAvailable(ctx, date(2026, time.March, 11), date(2026, time.March, 12), calc.RoomFilters{})
	require.NoError(t, err)
	require.Len(t, free, 2)
	for _, r := range free {
		assert.NotEqual(t, "A101", r.RoomNumber)
	}

	// A stay starting on the existing check-out day does not conflict
	free, err = rooms.FindAvailable(ctx, date(2026, time.March, 13), date(2026, time.March, 15), calc.RoomFilters{})
	require.NoError(t, err)
	assert.Len(t, free, 3)
}

func TestFindAvailableAppliesFilters(t *testing.T) {
	db := setupTestDB(t)
	rooms := newRoomService(db)
	ctx := context.Background()

	seedRoom(t, db, "A101", "Standard", 40000)
	seedRoom(t, db, "A201", "Standard", 40000)
	seedRoom(t, db, "B101", "Deluxe", 60000)

	free, err := rooms.FindAvailable(ctx, date(2026, time.March, 10), date(2026, time.March, 11), calc.RoomFilters{ZonePrefix: "A"})
	require.NoError(t, err)
	assert.Len(t, free, 2)

	free, err = rooms.FindAvailable(ctx, date(2026, time.March, 10), date(2026, time.March, 11), calc.RoomFilters{Floor: 2})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "A201", free[0].RoomNumber)

	free, err = rooms.FindAvailable(ctx, date(2026, time.March, 10), date(2026, time.March, 11), calc.RoomFilters{RoomType: "Deluxe"})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "B101", free[0].RoomNumber)
}

func TestFindAvailableRejectsEmptyInterval(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	ctx := context.Background()

	day := date(2026, time.March, 10)
	_, err := svc.FindAvailable(ctx, day, day, calc.RoomFilters{})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}
