package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Expense represents a daily cash outflow entry
type Expense struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Category  enum.ExpenseCategory `gorm:"default:4;index" json:"category"`
	Amount    int64                `gorm:"not null" json:"-"` // Stored in satang, excluded from JSON
	Note      string               `gorm:"type:text" json:"note"`
	Date      time.Time            `gorm:"type:date;not null;index" json:"date"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert satang to baht for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
