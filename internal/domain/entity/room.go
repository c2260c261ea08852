package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Room represents a rentable room
type Room struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	RoomNumber string          `gorm:"size:50;unique;not null" json:"room_number"`
	RoomType   string          `gorm:"size:100;not null" json:"room_type"`
	Price      int64           `gorm:"not null" json:"-"` // Nightly rate in satang, excluded from JSON
	Status     enum.RoomStatus `gorm:"default:0" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert satang to baht for API responses
func (r Room) MarshalJSON() ([]byte, error) {
	type Alias Room
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(r),
		Price: float64(r.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new room
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Floor returns the floor digit parsed from the room number, for example
// "A305" is floor 3. Returns 0 when the number carries no digit.
func (r *Room) Floor() int {
	for _, ch := range r.RoomNumber {
		if ch >= '0' && ch <= '9' {
			return int(ch - '0')
		}
	}
	return 0
}

// TableName returns the table name for the Room model
func (Room) TableName() string {
	return "rooms"
}
