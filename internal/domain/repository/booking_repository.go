package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/pkg/pagination"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	List(ctx context.Context, params *BookingFilterParams) ([]entity.Booking, int64, error)
	// ListOverlapping returns every non-cancelled booking whose stay interval
	// intersects [start, end).
	ListOverlapping(ctx context.Context, start, end time.Time) ([]entity.Booking, error)
	// ListByCheckInRange returns bookings whose check-in date falls in
	// [start, end], for the daily report.
	ListByCheckInRange(ctx context.Context, start, end time.Time) ([]entity.Booking, error)
	// ListForReport returns bookings with rooms preloaded, optionally limited
	// to a check-out window, for the report aggregator.
	ListForReport(ctx context.Context, start, end *time.Time) ([]entity.Booking, error)
}

// BookingFilterParams contains filtering parameters for booking queries
type BookingFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.BookingStatus
	GuestID    *uuid.UUID
	RoomID     *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
