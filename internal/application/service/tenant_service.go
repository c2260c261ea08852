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

// TenantService handles the monthly-renter registry
type TenantService struct {
	tenantRepo repository.TenantRepository
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repository.TenantRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

// CreateTenantInput represents the create tenant input
type CreateTenantInput struct {
	Name        string
	RoomNumber  string
	MonthlyRent float64 // Baht
}

// CreateTenant registers a new monthly renter
func (s *TenantService) CreateTenant(ctx context.Context, input *CreateTenantInput) (*entity.Tenant, error) {
	if input.MonthlyRent < 0 {
		return nil, apperror.NewUnprocessableError("Monthly rent must not be negative")
	}

	tenant := &entity.Tenant{
		Name:        input.Name,
		RoomNumber:  input.RoomNumber,
		MonthlyRent: int64(input.MonthlyRent * 100),
		Status:      enum.RecordStatusActive,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// GetTenant retrieves a tenant by ID
func (s *TenantService) GetTenant(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}
	return tenant, nil
}

// ListTenants lists tenants with filtering
func (s *TenantService) ListTenants(ctx context.Context, params *repository.RegistryFilterParams) (*pagination.PaginatedResult[entity.Tenant], error) {
	tenants, total, err := s.tenantRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(tenants, p), nil
}

// UpdateTenantInput represents the update tenant input
type UpdateTenantInput struct {
	ID          uuid.UUID
	Name        *string
	RoomNumber  *string
	MonthlyRent *float64 // Baht
}

// UpdateTenant updates a tenant's details
func (s *TenantService) UpdateTenant(ctx context.Context, input *UpdateTenantInput) (*entity.Tenant, error) {
	tenant, err := s.GetTenant(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		tenant.Name = *input.Name
	}
	if input.RoomNumber != nil {
		tenant.RoomNumber = *input.RoomNumber
	}
	if input.MonthlyRent != nil {
		if *input.MonthlyRent < 0 {
			return nil, apperror.NewUnprocessableError("Monthly rent must not be negative")
		}
		tenant.MonthlyRent = int64(*input.MonthlyRent * 100)
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// DeactivateTenant soft-deletes a tenant, keeping meter history intact.
func (s *TenantService) DeactivateTenant(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.GetTenant(ctx, id)
	if err != nil {
		return err
	}
	tenant.Status = enum.RecordStatusInactive
	return s.tenantRepo.Update(ctx, tenant)
}
