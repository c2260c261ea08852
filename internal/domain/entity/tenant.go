package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Tenant represents a monthly renter, distinct from a transient Guest.
type Tenant struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name        string            `gorm:"size:255;not null" json:"name"`
	RoomNumber  string            `gorm:"size:50;not null" json:"room_number"`
	MonthlyRent int64             `gorm:"not null" json:"-"` // Stored in satang, excluded from JSON
	Status      enum.RecordStatus `gorm:"default:0" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert satang to baht for API responses
func (t Tenant) MarshalJSON() ([]byte, error) {
	type Alias Tenant
	return json.Marshal(&struct {
		Alias
		MonthlyRent float64 `json:"monthly_rent"`
	}{
		Alias:       Alias(t),
		MonthlyRent: float64(t.MonthlyRent) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new tenant
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Tenant model
func (Tenant) TableName() string {
	return "tenants"
}

// MeterReading holds the water and electricity meter values entered for one
// tenant in one calendar month. A nil component means the value has not been
// entered yet; billing refuses to run until the month is complete.
type MeterReading struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reading_tenant_period,priority:1" json:"tenant_id"`
	Year             int       `gorm:"not null;uniqueIndex:idx_reading_tenant_period,priority:2" json:"year"`
	Month            int       `gorm:"not null;uniqueIndex:idx_reading_tenant_period,priority:3" json:"month"` // 1-12
	WaterUnits       *int      `json:"water_units"`
	ElectricityUnits *int      `json:"electricity_units"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new meter reading
func (m *MeterReading) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MeterReading model
func (MeterReading) TableName() string {
	return "meter_readings"
}
