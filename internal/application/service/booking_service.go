package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/calc"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/prasert/baanpak-api/pkg/pagination"
)

// BookingService handles the booking lifecycle
type BookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	guestRepo   repository.GuestRepository
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	guestRepo repository.GuestRepository,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
	}
}

// CreateBookingInput represents the create booking input
type CreateBookingInput struct {
	GuestID       uuid.UUID
	RoomID        uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	PaymentMethod enum.PaymentMethod
}

// CreateBooking prices the stay, verifies the room is free for the interval
// and persists a reserved booking.
func (s *BookingService) CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error) {
	guest, err := s.guestRepo.GetByID(ctx, input.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	if guest.Status != enum.RecordStatusActive {
		return nil, apperror.NewUnprocessableError("Guest is inactive")
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}

	quote, err := calc.BookingPrice(room.Price, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, apperror.NewUnprocessableError(err.Error())
	}

	// The room must be free for the whole interval
	overlapping, err := s.bookingRepo.ListOverlapping(ctx, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	for _, b := range overlapping {
		if b.RoomID == input.RoomID {
			return nil, apperror.NewConflictError(fmt.Sprintf("Room %s is already booked for this period", room.RoomNumber))
		}
	}

	booking := &entity.Booking{
		GuestID:       input.GuestID,
		RoomID:        input.RoomID,
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		Nights:        quote.Nights,
		Status:        enum.BookingStatusReserved,
		Total:         quote.Total,
		Fee:           quote.Fee,
		Final:         quote.Final,
		PaymentMethod: input.PaymentMethod,
		InvoiceNo:     fmt.Sprintf("BK-%s", uuid.New().String()[:8]),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return s.bookingRepo.GetWithRelations(ctx, booking.ID)
}

// GetBooking retrieves a booking by ID
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	return booking, nil
}

// ListBookings lists bookings with filtering
func (s *BookingService) ListBookings(ctx context.Context, params *repository.BookingFilterParams) (*pagination.PaginatedResult[entity.Booking], error) {
	bookings, total, err := s.bookingRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bookings, p), nil
}

// CheckIn moves a reserved booking to checked-in and marks the room occupied.
func (s *BookingService) CheckIn(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.getForTransition(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != enum.BookingStatusReserved {
		return nil, apperror.NewConflictError(fmt.Sprintf("Cannot check in a booking in status %s", booking.Status))
	}

	booking.Status = enum.BookingStatusCheckedIn
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, enum.RoomStatusOccupied); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetWithRelations(ctx, id)
}

// CheckOut moves a checked-in booking to checked-out and sends the room to
// cleaning.
func (s *BookingService) CheckOut(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.getForTransition(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != enum.BookingStatusCheckedIn {
		return nil, apperror.NewConflictError(fmt.Sprintf("Cannot check out a booking in status %s", booking.Status))
	}

	booking.Status = enum.BookingStatusCheckedOut
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, enum.RoomStatusCleaning); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetWithRelations(ctx, id)
}

// Cancel cancels a reserved booking. Any other source state is rejected since
// downstream reports key off the exact states.
func (s *BookingService) Cancel(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.getForTransition(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != enum.BookingStatusReserved {
		return nil, apperror.NewConflictError(fmt.Sprintf("Cannot cancel a booking in status %s", booking.Status))
	}

	booking.Status = enum.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetWithRelations(ctx, id)
}

// ExtendStay moves the check-out date of a checked-in booking and reprices
// the whole stay from the room's current rate.
func (s *BookingService) ExtendStay(ctx context.Context, id uuid.UUID, newCheckOut time.Time) (*entity.Booking, error) {
	booking, err := s.getForTransition(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != enum.BookingStatusCheckedIn {
		return nil, apperror.NewConflictError(fmt.Sprintf("Cannot extend a booking in status %s", booking.Status))
	}

	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}

	quote, err := calc.BookingPrice(room.Price, booking.CheckIn, newCheckOut)
	if err != nil {
		return nil, apperror.NewUnprocessableError(err.Error())
	}

	// The extension must not collide with the room's later bookings
	overlapping, err := s.bookingRepo.ListOverlapping(ctx, booking.CheckOut, newCheckOut)
	if err != nil {
		return nil, err
	}
	for _, b := range overlapping {
		if b.RoomID == booking.RoomID && b.ID != booking.ID {
			return nil, apperror.NewConflictError("Room is booked by another guest for the extended period")
		}
	}

	booking.CheckOut = newCheckOut
	booking.Nights = quote.Nights
	booking.Total = quote.Total
	booking.Fee = quote.Fee
	booking.Final = quote.Final

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetWithRelations(ctx, id)
}

func (s *BookingService) getForTransition(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	return booking, nil
}
