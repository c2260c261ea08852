package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Employee represents a staff member on the payroll
type Employee struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name           string              `gorm:"size:255;not null" json:"name"`
	Position       string              `gorm:"size:100" json:"position"`
	EmploymentType enum.EmploymentType `gorm:"default:0" json:"employment_type"`
	BaseRate       int64               `gorm:"not null" json:"-"` // Monthly salary or day rate in satang, excluded from JSON
	BankName       *string             `gorm:"size:100" json:"bank_name,omitempty"`
	BankAccountNo  *string             `gorm:"size:50" json:"bank_account_no,omitempty"`
	Status         enum.RecordStatus   `gorm:"default:0" json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert satang to baht for API responses
func (e Employee) MarshalJSON() ([]byte, error) {
	type Alias Employee
	return json.Marshal(&struct {
		Alias
		BaseRate float64 `json:"base_rate"`
	}{
		Alias:    Alias(e),
		BaseRate: float64(e.BaseRate) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// PayrollRecord is one employee's editable input row for one semi-monthly pay
// period. Pointer fields distinguish a blank cell from an explicit zero; both
// are treated as zero by the calculator, but blanks survive edit round-trips.
type PayrollRecord struct {
	ID                      uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_payroll_employee_period,priority:1" json:"employee_id"`
	Year                    int            `gorm:"not null;uniqueIndex:idx_payroll_employee_period,priority:2" json:"year"`
	Month                   int            `gorm:"not null;uniqueIndex:idx_payroll_employee_period,priority:3" json:"month"` // 1-12
	Period                  enum.PayPeriod `gorm:"not null;uniqueIndex:idx_payroll_employee_period,priority:4" json:"period"`
	WorkDays                *int           `json:"work_days"`                 // Daily employees only
	OtherIncome             *int64         `json:"other_income"`              // Satang
	DeductionSocialSecurity *int64         `json:"deduction_social_security"` // Satang
	DeductionAbsence        *int64         `json:"deduction_absence"`         // Satang
	DeductionOther          *int64         `json:"deduction_other"`           // Satang
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// BeforeCreate generates a UUID before creating a new payroll record
func (p *PayrollRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasData reports whether any input cell has been filled in. Sync uses this to
// decide if a record of a deactivated employee can be dropped.
func (p *PayrollRecord) HasData() bool {
	return p.WorkDays != nil || p.OtherIncome != nil ||
		p.DeductionSocialSecurity != nil || p.DeductionAbsence != nil || p.DeductionOther != nil
}

// TableName returns the table name for the PayrollRecord model
func (PayrollRecord) TableName() string {
	return "payroll_records"
}
