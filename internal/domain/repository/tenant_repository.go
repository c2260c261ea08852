package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
)

// TenantRepository defines the interface for monthly-renter operations
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)
	Update(ctx context.Context, tenant *entity.Tenant) error
	List(ctx context.Context, params *RegistryFilterParams) ([]entity.Tenant, int64, error)
}

// MeterReadingRepository defines the interface for meter-reading history
type MeterReadingRepository interface {
	// Upsert inserts or overwrites the reading for (tenant, year, month).
	Upsert(ctx context.Context, reading *entity.MeterReading) error
	Get(ctx context.Context, tenantID uuid.UUID, year, month int) (*entity.MeterReading, error)
	ListByTenantYear(ctx context.Context, tenantID uuid.UUID, year int) ([]entity.MeterReading, error)
}
