package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Guest represents a transient guest in the registry. Guests are
// soft-deleted by flipping Status so past bookings keep a valid reference.
type Guest struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	FullName  string            `gorm:"size:255;not null" json:"full_name"`
	Phone     *string           `gorm:"size:50" json:"phone,omitempty"`
	IDCard    *string           `gorm:"size:50" json:"id_card,omitempty"`
	Address   *string           `gorm:"type:text" json:"address,omitempty"`
	Status    enum.RecordStatus `gorm:"default:0" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new guest
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Guest model
func (Guest) TableName() string {
	return "guests"
}
