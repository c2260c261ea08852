package calc

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func booking(status enum.BookingStatus, method enum.PaymentMethod, checkIn, checkOut time.Time, finalSatang int64, nights int) entity.Booking {
	return entity.Booking{
		ID:            uuid.New(),
		RoomID:        uuid.New(),
		Status:        status,
		PaymentMethod: method,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Final:         finalSatang,
		Total:         finalSatang,
		Nights:        nights,
	}
}

func TestDailyReport(t *testing.T) {
	day := date(2024, 7, 1)
	bookings := []entity.Booking{
		booking(enum.BookingStatusCheckedIn, enum.PaymentMethodCash, day, date(2024, 7, 3), 121200, 2),
		booking(enum.BookingStatusReserved, enum.PaymentMethodTransfer, day, date(2024, 7, 2), 55000, 1),
		// Different day, excluded
		booking(enum.BookingStatusCheckedIn, enum.PaymentMethodCash, date(2024, 7, 2), date(2024, 7, 4), 99999, 2),
		// Cancelled, excluded
		booking(enum.BookingStatusCancelled, enum.PaymentMethodCash, day, date(2024, 7, 2), 40000, 1),
	}
	expenses := []entity.Expense{
		{Date: day, Amount: 30000, Category: enum.ExpenseCategorySupplies},
		{Date: date(2024, 7, 2), Amount: 70000, Category: enum.ExpenseCategoryOther},
	}

	got := DailyReport(bookings, expenses, day)
	assert.Equal(t, int64(121200), got.Cash)
	assert.Equal(t, int64(55000), got.Transfer)
	assert.Equal(t, int64(176200), got.Income)
	assert.Equal(t, int64(30000), got.Expense)
	assert.Equal(t, int64(146200), got.Net)
}

func TestRangeReport(t *testing.T) {
	start, end := date(2024, 7, 1), date(2024, 7, 31)
	bookings := []entity.Booking{
		booking(enum.BookingStatusCheckedOut, enum.PaymentMethodCash, date(2024, 6, 28), date(2024, 7, 2), 100000, 4),
		booking(enum.BookingStatusCheckedIn, enum.PaymentMethodTransfer, date(2024, 7, 10), date(2024, 7, 12), 80000, 2),
		// Check-out outside range, excluded
		booking(enum.BookingStatusCheckedOut, enum.PaymentMethodCash, date(2024, 7, 28), date(2024, 8, 2), 50000, 5),
		// Reserved only, not recognized
		booking(enum.BookingStatusReserved, enum.PaymentMethodCash, date(2024, 7, 5), date(2024, 7, 6), 40000, 1),
		// Cancelled overlaps the range but must never contribute
		booking(enum.BookingStatusCancelled, enum.PaymentMethodCash, date(2024, 7, 5), date(2024, 7, 6), 40000, 1),
	}
	expenses := []entity.Expense{
		{Date: date(2024, 7, 3), Amount: 20000, Category: enum.ExpenseCategoryUtilities},
		{Date: date(2024, 7, 20), Amount: 10000, Category: enum.ExpenseCategoryUtilities},
		{Date: date(2024, 8, 1), Amount: 99999, Category: enum.ExpenseCategoryOther},
	}

	got := RangeReport(bookings, expenses, start, end)
	assert.Equal(t, int64(180000), got.TotalIncome)
	assert.Equal(t, int64(100000), got.IncomeByMethod["Cash"])
	assert.Equal(t, int64(80000), got.IncomeByMethod["Transfer"])
	assert.Equal(t, int64(30000), got.TotalExpenses)
	assert.Equal(t, int64(30000), got.ExpenseByCategory["Utilities"])
	assert.Equal(t, int64(150000), got.NetProfit)
}

func TestOccupancyKPIs(t *testing.T) {
	start, end := date(2024, 7, 1), date(2024, 7, 11) // 10 days
	rooms := []entity.Room{
		{ID: uuid.New(), RoomNumber: "101"},
		{ID: uuid.New(), RoomNumber: "102"},
	}
	bookings := []entity.Booking{
		booking(enum.BookingStatusCheckedOut, enum.PaymentMethodCash, date(2024, 7, 1), date(2024, 7, 5), 160000, 4),
		booking(enum.BookingStatusCheckedOut, enum.PaymentMethodCash, date(2024, 7, 5), date(2024, 7, 11), 240000, 6),
	}

	got := OccupancyKPIs(bookings, rooms, nil, start, end)
	// 10 nights over 2 rooms x 10 days
	assert.InDelta(t, 50.0, got.OccupancyPct, 0.001)
	// 4000 baht over 2 bookings
	assert.InDelta(t, 2000.0, got.ADR, 0.001)
	// 4000 baht over 20 room-nights
	assert.InDelta(t, 200.0, got.RevPAR, 0.001)
	assert.Equal(t, int64(400000), got.NetProfit)
}

func TestOccupancyKPIsGuards(t *testing.T) {
	start, end := date(2024, 7, 1), date(2024, 7, 11)

	t.Run("no qualifying bookings", func(t *testing.T) {
		got := OccupancyKPIs(nil, []entity.Room{{ID: uuid.New()}}, nil, start, end)
		assert.Zero(t, got.ADR)
		assert.Zero(t, got.OccupancyPct)
	})

	t.Run("no rooms", func(t *testing.T) {
		got := OccupancyKPIs(nil, nil, nil, start, end)
		assert.Zero(t, got.RevPAR)
		assert.Zero(t, got.OccupancyPct)
	})
}

func TestMonthlyTrend(t *testing.T) {
	standard := entity.Room{RoomType: "Standard"}
	deluxe := entity.Room{RoomType: "Deluxe"}

	b1 := booking(enum.BookingStatusCheckedOut, enum.PaymentMethodCash, date(2024, 3, 1), date(2024, 3, 4), 0, 3)
	b1.Total = 107000 // 1070 baht -> 1000 net of VAT
	b1.Room = standard

	b2 := booking(enum.BookingStatusCheckedOut, enum.PaymentMethodCash, date(2024, 3, 10), date(2024, 3, 12), 0, 2)
	b2.Total = 214000
	b2.Room = deluxe

	b3 := booking(enum.BookingStatusCheckedOut, enum.PaymentMethodCash, date(2023, 12, 28), date(2023, 12, 30), 0, 2)
	b3.Total = 107000
	b3.Room = standard

	cancelled := booking(enum.BookingStatusCancelled, enum.PaymentMethodCash, date(2024, 3, 1), date(2024, 3, 2), 0, 1)
	cancelled.Total = 107000

	got := MonthlyTrend([]entity.Booking{b1, b2, b3, cancelled}, 2024)
	assert.Equal(t, int64(300000), got.Months[2].Revenue)
	assert.Equal(t, int64(100000), got.ByRoomType["Standard"])
	assert.Equal(t, int64(200000), got.ByRoomType["Deluxe"])
	// Other months stay zero
	assert.Equal(t, int64(0), got.Months[0].Revenue)
	assert.Equal(t, 12, len(got.Months))
}
