package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/calc"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/prasert/baanpak-api/pkg/pagination"
)

// RoomService handles room inventory operations
type RoomService struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repository.RoomRepository, bookingRepo repository.BookingRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo, bookingRepo: bookingRepo}
}

// CreateRoomInput represents the create room input
type CreateRoomInput struct {
	RoomNumber string
	RoomType   string
	Price      float64 // Baht
}

// CreateRoom creates a new room
func (s *RoomService) CreateRoom(ctx context.Context, input *CreateRoomInput) (*entity.Room, error) {
	if input.Price <= 0 {
		return nil, apperror.NewUnprocessableError("Nightly price must be greater than zero")
	}

	existing, err := s.roomRepo.GetByNumber(ctx, input.RoomNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Room number already exists")
	}

	room := &entity.Room{
		RoomNumber: input.RoomNumber,
		RoomType:   input.RoomType,
		Price:      int64(input.Price * 100),
		Status:     enum.RoomStatusVacant,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoom retrieves a room by ID
func (s *RoomService) GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}
	return room, nil
}

// ListRooms lists rooms with filtering
func (s *RoomService) ListRooms(ctx context.Context, params *repository.RoomFilterParams) (*pagination.PaginatedResult[entity.Room], error) {
	rooms, total, err := s.roomRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(rooms, p), nil
}

// UpdateRoomInput represents the update room input
type UpdateRoomInput struct {
	ID         uuid.UUID
	RoomNumber *string
	RoomType   *string
	Price      *float64 // Baht
}

// UpdateRoom updates a room's details
func (s *RoomService) UpdateRoom(ctx context.Context, input *UpdateRoomInput) (*entity.Room, error) {
	room, err := s.GetRoom(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.RoomNumber != nil && *input.RoomNumber != room.RoomNumber {
		existing, err := s.roomRepo.GetByNumber(ctx, *input.RoomNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Room number already exists")
		}
		room.RoomNumber = *input.RoomNumber
	}
	if input.RoomType != nil {
		room.RoomType = *input.RoomType
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, apperror.NewUnprocessableError("Nightly price must be greater than zero")
		}
		room.Price = int64(*input.Price * 100)
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// UpdateRoomStatus sets the housekeeping status of a room
func (s *RoomService) UpdateRoomStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus) (*entity.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.roomRepo.UpdateStatus(ctx, room.ID, status); err != nil {
		return nil, err
	}
	room.Status = status
	return room, nil
}

// DeleteRoom removes a room from inventory
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return err
	}
	return s.roomRepo.Delete(ctx, room.ID)
}

// FindAvailable returns the rooms free for [start, end) after applying the
// optional filters.
func (s *RoomService) FindAvailable(ctx context.Context, start, end time.Time, filters calc.RoomFilters) ([]entity.Room, error) {
	if !end.After(start) {
		return nil, apperror.NewUnprocessableError("End date must be after start date")
	}

	rooms, err := s.roomRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListOverlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return calc.AvailableRooms(rooms, bookings, start, end, filters), nil
}
