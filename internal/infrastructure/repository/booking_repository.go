package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	domainRepo "github.com/prasert/baanpak-api/internal/domain/repository"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) List(ctx context.Context, params *domainRepo.BookingFilterParams) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Booking{})
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.GuestID != nil {
		query = query.Where("guest_id = ?", *params.GuestID)
	}
	if params.RoomID != nil {
		query = query.Where("room_id = ?", *params.RoomID)
	}
	if params.StartDate != nil {
		query = query.Where("check_in >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("check_in <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Guest").
		Preload("Room").
		Order("check_in DESC").
		Find(&bookings).Error

	return bookings, total, err
}

// ListOverlapping uses the half-open interval test: a booking conflicts with
// [start, end) iff check_in < end and check_out > start.
func (r *bookingRepository) ListOverlapping(ctx context.Context, start, end time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Where("status <> ?", enum.BookingStatusCancelled).
		Where("check_in < ? AND check_out > ?", end, start).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListByCheckInRange(ctx context.Context, start, end time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Where("check_in >= ? AND check_in <= ?", start, end).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListForReport(ctx context.Context, start, end *time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := r.db.WithContext(ctx).Preload("Room")
	if start != nil {
		query = query.Where("check_out >= ?", *start)
	}
	if end != nil {
		query = query.Where("check_out <= ?", *end)
	}
	err := query.Find(&bookings).Error
	return bookings, err
}
