package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
)

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context, params *RegistryFilterParams) ([]entity.Employee, int64, error)
	ListActive(ctx context.Context) ([]entity.Employee, error)
}

// PayrollRepository defines the interface for payroll period rows
type PayrollRepository interface {
	Create(ctx context.Context, record *entity.PayrollRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PayrollRecord, error)
	Update(ctx context.Context, record *entity.PayrollRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListPeriod returns every record of one pay period with the employee
	// preloaded, ordered by employee name.
	ListPeriod(ctx context.Context, year, month int, period enum.PayPeriod) ([]entity.PayrollRecord, error)
}
