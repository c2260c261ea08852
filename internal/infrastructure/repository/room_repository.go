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

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) domainRepo.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) GetByNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).First(&room, "room_number = ?", roomNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Room{}, "id = ?", id).Error
}

func (r *roomRepository) List(ctx context.Context, params *domainRepo.RoomFilterParams) ([]entity.Room, int64, error) {
	var rooms []entity.Room
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Room{})
	if params.Search != "" {
		query = query.Where("room_number LIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.RoomType != "" {
		query = query.Where("room_type = ?", params.RoomType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("room_number ASC").
		Find(&rooms).Error

	return rooms, total, err
}

func (r *roomRepository) ListAll(ctx context.Context) ([]entity.Room, error) {
	var rooms []entity.Room
	err := r.db.WithContext(ctx).Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}
