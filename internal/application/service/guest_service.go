package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/prasert/baanpak-api/pkg/pagination"
)

// GuestService handles the guest registry
type GuestService struct {
	guestRepo repository.GuestRepository
}

// NewGuestService creates a new guest service
func NewGuestService(guestRepo repository.GuestRepository) *GuestService {
	return &GuestService{guestRepo: guestRepo}
}

// CreateGuestInput represents the create guest input
type CreateGuestInput struct {
	FullName string
	Phone    *string
	IDCard   *string
	Address  *string
}

// CreateGuest registers a new guest
func (s *GuestService) CreateGuest(ctx context.Context, input *CreateGuestInput) (*entity.Guest, error) {
	guest := &entity.Guest{
		FullName: input.FullName,
		Phone:    input.Phone,
		IDCard:   input.IDCard,
		Address:  input.Address,
		Status:   enum.RecordStatusActive,
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// GetGuest retrieves a guest by ID
func (s *GuestService) GetGuest(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	return guest, nil
}

// ListGuests lists guests with filtering
func (s *GuestService) ListGuests(ctx context.Context, params *repository.RegistryFilterParams) (*pagination.PaginatedResult[entity.Guest], error) {
	guests, total, err := s.guestRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(guests, p), nil
}

// UpdateGuestInput represents the update guest input
type UpdateGuestInput struct {
	ID       uuid.UUID
	FullName *string
	Phone    *string
	IDCard   *string
	Address  *string
}

// UpdateGuest updates a guest's details
func (s *GuestService) UpdateGuest(ctx context.Context, input *UpdateGuestInput) (*entity.Guest, error) {
	guest, err := s.GetGuest(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		guest.FullName = *input.FullName
	}
	if input.Phone != nil {
		guest.Phone = input.Phone
	}
	if input.IDCard != nil {
		guest.IDCard = input.IDCard
	}
	if input.Address != nil {
		guest.Address = input.Address
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// DeactivateGuest soft-deletes a guest. Bookings keep their reference.
func (s *GuestService) DeactivateGuest(ctx context.Context, id uuid.UUID) error {
	guest, err := s.GetGuest(ctx, id)
	if err != nil {
		return err
	}
	guest.Status = enum.RecordStatusInactive
	return s.guestRepo.Update(ctx, guest)
}
