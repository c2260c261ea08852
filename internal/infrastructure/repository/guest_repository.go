package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	domainRepo "github.com/prasert/baanpak-api/internal/domain/repository"
	"gorm.io/gorm"
)

type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *gorm.DB) domainRepo.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guest entity.Guest
	err := r.db.WithContext(ctx).First(&guest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, err
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

func (r *guestRepository) List(ctx context.Context, params *domainRepo.RegistryFilterParams) ([]entity.Guest, int64, error) {
	var guests []entity.Guest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Guest{})
	if !params.IncludeInactive {
		query = query.Where("status = ?", enum.RecordStatusActive)
	}
	if params.Search != "" {
		query = query.Where("full_name LIKE ? OR phone LIKE ? OR id_card LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("full_name ASC").
		Find(&guests).Error

	return guests, total, err
}
