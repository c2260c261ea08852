package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/pkg/pagination"
)

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	GetByNumber(ctx context.Context, roomNumber string) (*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *RoomFilterParams) ([]entity.Room, int64, error)
	ListAll(ctx context.Context) ([]entity.Room, error)
}

// RoomFilterParams contains filtering parameters for room queries
type RoomFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.RoomStatus
	RoomType   string
}
