package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	domainRepo "github.com/prasert/baanpak-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) domainRepo.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

func (r *tenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenant entity.Tenant
	err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tenant, err
}

func (r *tenantRepository) Update(ctx context.Context, tenant *entity.Tenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

func (r *tenantRepository) List(ctx context.Context, params *domainRepo.RegistryFilterParams) ([]entity.Tenant, int64, error) {
	var tenants []entity.Tenant
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Tenant{})
	if !params.IncludeInactive {
		query = query.Where("status = ?", enum.RecordStatusActive)
	}
	if params.Search != "" {
		query = query.Where("name LIKE ? OR room_number LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("room_number ASC").
		Find(&tenants).Error

	return tenants, total, err
}

type meterReadingRepository struct {
	db *gorm.DB
}

// NewMeterReadingRepository creates a new meter reading repository
func NewMeterReadingRepository(db *gorm.DB) domainRepo.MeterReadingRepository {
	return &meterReadingRepository{db: db}
}

// Upsert overwrites the meter values if a reading already exists for the
// tenant and period, so re-entering a corrected value is a plain PUT.
func (r *meterReadingRepository) Upsert(ctx context.Context, reading *entity.MeterReading) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"water_units", "electricity_units", "updated_at"}),
	}).Create(reading).Error
}

func (r *meterReadingRepository) Get(ctx context.Context, tenantID uuid.UUID, year, month int) (*entity.MeterReading, error) {
	var reading entity.MeterReading
	err := r.db.WithContext(ctx).
		First(&reading, "tenant_id = ? AND year = ? AND month = ?", tenantID, year, month).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reading, err
}

func (r *meterReadingRepository) ListByTenantYear(ctx context.Context, tenantID uuid.UUID, year int) ([]entity.MeterReading, error) {
	var readings []entity.MeterReading
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND year = ?", tenantID, year).
		Order("month ASC").
		Find(&readings).Error
	return readings, err
}
