package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Booking represents a room booking. Amount fields are computed from the room
// rate and the stay interval at creation and again when the stay is extended.
type Booking struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	GuestID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"guest_id"`
	RoomID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"room_id"`
	CheckIn       time.Time          `gorm:"type:date;not null" json:"check_in"`
	CheckOut      time.Time          `gorm:"type:date;not null" json:"check_out"`
	Nights        int                `gorm:"not null" json:"nights"`
	Status        enum.BookingStatus `gorm:"default:0;index" json:"status"`
	Total         int64              `gorm:"default:0" json:"-"` // Stored in satang, excluded from JSON
	Fee           int64              `gorm:"default:0" json:"-"` // Stored in satang, excluded from JSON
	Final         int64              `gorm:"default:0" json:"-"` // Stored in satang, excluded from JSON
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	InvoiceNo     string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Guest Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Room  Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// MarshalJSON custom marshaler to convert satang to baht for API responses
func (b Booking) MarshalJSON() ([]byte, error) {
	type Alias Booking
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
		Fee   float64 `json:"fee"`
		Final float64 `json:"final"`
	}{
		Alias: Alias(b),
		Total: float64(b.Total) / 100,
		Fee:   float64(b.Fee) / 100,
		Final: float64(b.Final) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}
