package service

import (
	"context"
	"time"

	"github.com/prasert/baanpak-api/internal/domain/calc"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
)

// ReportService builds the income, expense and occupancy reports
type ReportService struct {
	bookingRepo repository.BookingRepository
	expenseRepo repository.ExpenseRepository
	roomRepo    repository.RoomRepository
}

// NewReportService creates a new report service
func NewReportService(
	bookingRepo repository.BookingRepository,
	expenseRepo repository.ExpenseRepository,
	roomRepo repository.RoomRepository,
) *ReportService {
	return &ReportService{
		bookingRepo: bookingRepo,
		expenseRepo: expenseRepo,
		roomRepo:    roomRepo,
	}
}

// Daily returns one day's income split by payment method against its expenses
func (s *ReportService) Daily(ctx context.Context, date time.Time) (*calc.DailySummary, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.bookingRepo.ListByCheckInRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	sum := calc.DailyReport(bookings, expenses, date)
	return &sum, nil
}

// Range returns recognized income and expenses over [start, end]
func (s *ReportService) Range(ctx context.Context, start, end time.Time) (*calc.RangeSummary, error) {
	if end.Before(start) {
		return nil, apperror.NewUnprocessableError("End date must not be before start date")
	}

	bookings, err := s.bookingRepo.ListForReport(ctx, &start, &end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	sum := calc.RangeReport(bookings, expenses, start, end)
	return &sum, nil
}

// Occupancy returns the occupancy percentage, ADR and RevPAR over [start, end]
func (s *ReportService) Occupancy(ctx context.Context, start, end time.Time) (*calc.OccupancySummary, error) {
	if end.Before(start) {
		return nil, apperror.NewUnprocessableError("End date must not be before start date")
	}

	bookings, err := s.bookingRepo.ListForReport(ctx, &start, &end)
	if err != nil {
		return nil, err
	}
	rooms, err := s.roomRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	sum := calc.OccupancyKPIs(bookings, rooms, expenses, start, end)
	return &sum, nil
}

// MonthlyTrend returns a year's net revenue by month and by room type
func (s *ReportService) MonthlyTrend(ctx context.Context, year int) (*calc.TrendSummary, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	bookings, err := s.bookingRepo.ListForReport(ctx, &start, &end)
	if err != nil {
		return nil, err
	}

	trend := calc.MonthlyTrend(bookings, year)
	return &trend, nil
}
