package calc

import (
	"math"
	"time"

	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
)

// vatDivisor backs a 7% VAT-inclusive amount out to its net value.
const vatDivisor = 1.07

// DailySummary aggregates one day's cash movement.
type DailySummary struct {
	Cash     int64 `json:"cash"`
	Transfer int64 `json:"transfer"`
	Income   int64 `json:"income"`
	Expense  int64 `json:"expense"`
	Net      int64 `json:"net"`
}

// RangeSummary aggregates recognized income and expenses over a date range.
type RangeSummary struct {
	TotalIncome       int64            `json:"total_income"`
	IncomeByMethod    map[string]int64 `json:"income_by_method"`
	TotalExpenses     int64            `json:"total_expenses"`
	ExpenseByCategory map[string]int64 `json:"expense_by_category"`
	NetProfit         int64            `json:"net_profit"`
}

// OccupancySummary holds the occupancy KPIs for a date range.
type OccupancySummary struct {
	OccupancyPct float64 `json:"occupancy_pct"`
	ADR          float64 `json:"adr"`    // Baht
	RevPAR       float64 `json:"revpar"` // Baht
	NetProfit    int64   `json:"net_profit"`
}

// MonthPoint is one month of a yearly revenue trend, net of VAT.
type MonthPoint struct {
	Month   int   `json:"month"`
	Revenue int64 `json:"revenue"`
}

// TrendSummary is the yearly revenue trend plus the distribution by room type.
type TrendSummary struct {
	Months     []MonthPoint     `json:"months"`
	ByRoomType map[string]int64 `json:"by_room_type"`
}

// recognized reports whether a booking's revenue counts toward a range report:
// the stay must have begun (checked in or out) and its check-out date must
// fall inside [start, end]. Cancelled bookings never count.
func recognized(b entity.Booking, start, end time.Time) bool {
	if b.Status != enum.BookingStatusCheckedIn && b.Status != enum.BookingStatusCheckedOut {
		return false
	}
	return !b.CheckOut.Before(start) && !b.CheckOut.After(end)
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DailyReport sums the day's income (bookings checking in on the date, split
// by payment method) and the day's expenses.
func DailyReport(bookings []entity.Booking, expenses []entity.Expense, date time.Time) DailySummary {
	var sum DailySummary
	for _, b := range bookings {
		if b.Status == enum.BookingStatusCancelled || !sameDay(b.CheckIn, date) {
			continue
		}
		switch b.PaymentMethod {
		case enum.PaymentMethodTransfer:
			sum.Transfer += b.Final
		default:
			sum.Cash += b.Final
		}
		sum.Income += b.Final
	}
	for _, e := range expenses {
		if sameDay(e.Date, date) {
			sum.Expense += e.Amount
		}
	}
	sum.Net = sum.Income - sum.Expense
	return sum
}

// RangeReport aggregates income recognized at checkout within [start, end],
// bucketed by payment method, against expenses in the range bucketed by
// category.
func RangeReport(bookings []entity.Booking, expenses []entity.Expense, start, end time.Time) RangeSummary {
	sum := RangeSummary{
		IncomeByMethod:    make(map[string]int64),
		ExpenseByCategory: make(map[string]int64),
	}
	for _, b := range bookings {
		if !recognized(b, start, end) {
			continue
		}
		sum.TotalIncome += b.Final
		sum.IncomeByMethod[b.PaymentMethod.String()] += b.Final
	}
	for _, e := range expenses {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		sum.TotalExpenses += e.Amount
		sum.ExpenseByCategory[e.Category.String()] += e.Amount
	}
	sum.NetProfit = sum.TotalIncome - sum.TotalExpenses
	return sum
}

// OccupancyKPIs computes occupancy percentage, ADR and RevPAR over a range.
// ADR guards against a zero booking count and RevPAR against an empty room
// list, both yielding 0 rather than dividing by zero.
func OccupancyKPIs(bookings []entity.Booking, rooms []entity.Room, expenses []entity.Expense, start, end time.Time) OccupancySummary {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	roomNights := int64(len(rooms)) * int64(days)

	var revenue int64
	var nights, count int64
	for _, b := range bookings {
		if !recognized(b, start, end) {
			continue
		}
		revenue += b.Final
		nights += int64(b.Nights)
		count++
	}

	var kpi OccupancySummary
	if roomNights > 0 {
		kpi.OccupancyPct = float64(nights) / float64(roomNights) * 100
		kpi.RevPAR = float64(revenue) / 100 / float64(roomNights)
	}
	if count > 0 {
		kpi.ADR = float64(revenue) / 100 / float64(count)
	}

	var expenseTotal int64
	for _, e := range expenses {
		if !e.Date.Before(start) && !e.Date.After(end) {
			expenseTotal += e.Amount
		}
	}
	kpi.NetProfit = revenue - expenseTotal
	return kpi
}

// MonthlyTrend groups a year's recognized revenue by calendar month and by
// room type. Amounts are VAT-inclusive in storage, so each contribution is
// backed out to its net value with the 7% divisor before attribution.
func MonthlyTrend(bookings []entity.Booking, year int) TrendSummary {
	trend := TrendSummary{
		Months:     make([]MonthPoint, 12),
		ByRoomType: make(map[string]int64),
	}
	for i := range trend.Months {
		trend.Months[i].Month = i + 1
	}

	for _, b := range bookings {
		if b.Status != enum.BookingStatusCheckedIn && b.Status != enum.BookingStatusCheckedOut {
			continue
		}
		if b.CheckOut.Year() != year {
			continue
		}
		net := int64(math.Round(float64(b.Total) / vatDivisor))
		trend.Months[int(b.CheckOut.Month())-1].Revenue += net
		if b.Room.RoomType != "" {
			trend.ByRoomType[b.Room.RoomType] += net
		}
	}
	return trend
}
