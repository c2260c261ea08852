package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings holds the process-wide utility tariff. A single row is seeded at
// startup and updated in place.
type Settings struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WaterRate       int64     `gorm:"not null" json:"-"` // Satang per unit, excluded from JSON
	ElectricityRate int64     `gorm:"not null" json:"-"` // Satang per unit, excluded from JSON
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert satang to baht for API responses
func (s Settings) MarshalJSON() ([]byte, error) {
	type Alias Settings
	return json.Marshal(&struct {
		Alias
		WaterRate       float64 `json:"water_rate"`
		ElectricityRate float64 `json:"electricity_rate"`
	}{
		Alias:           Alias(s),
		WaterRate:       float64(s.WaterRate) / 100,
		ElectricityRate: float64(s.ElectricityRate) / 100,
	})
}

// BeforeCreate generates a UUID before creating the settings row
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}
