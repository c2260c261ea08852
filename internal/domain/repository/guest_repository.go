package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/pkg/pagination"
)

// GuestRepository defines the interface for guest registry operations
type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	Update(ctx context.Context, guest *entity.Guest) error
	List(ctx context.Context, params *RegistryFilterParams) ([]entity.Guest, int64, error)
}

// RegistryFilterParams contains the shared filtering parameters for the
// people registries (guests, tenants, employees).
type RegistryFilterParams struct {
	Pagination      *pagination.PaginationParams
	Search          string
	IncludeInactive bool
}
