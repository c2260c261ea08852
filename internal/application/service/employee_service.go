package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/prasert/baanpak-api/pkg/pagination"
)

// EmployeeService handles the staff registry
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	Name           string
	Position       string
	EmploymentType enum.EmploymentType
	BaseRate       float64 // Baht; monthly salary or day rate
	BankName       *string
	BankAccountNo  *string
}

// CreateEmployee registers a new staff member
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	if input.BaseRate <= 0 {
		return nil, apperror.NewUnprocessableError("Base rate must be greater than zero")
	}

	employee := &entity.Employee{
		Name:           input.Name,
		Position:       input.Position,
		EmploymentType: input.EmploymentType,
		BaseRate:       int64(input.BaseRate * 100),
		BankName:       input.BankName,
		BankAccountNo:  input.BankAccountNo,
		Status:         enum.RecordStatusActive,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployees lists employees with filtering
func (s *EmployeeService) ListEmployees(ctx context.Context, params *repository.RegistryFilterParams) (*pagination.PaginatedResult[entity.Employee], error) {
	employees, total, err := s.employeeRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(employees, p), nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	ID             uuid.UUID
	Name           *string
	Position       *string
	EmploymentType *enum.EmploymentType
	BaseRate       *float64 // Baht
	BankName       *string
	BankAccountNo  *string
}

// UpdateEmployee updates an employee's details
func (s *EmployeeService) UpdateEmployee(ctx context.Context, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.GetEmployee(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Position != nil {
		employee.Position = *input.Position
	}
	if input.EmploymentType != nil {
		employee.EmploymentType = *input.EmploymentType
	}
	if input.BaseRate != nil {
		if *input.BaseRate <= 0 {
			return nil, apperror.NewUnprocessableError("Base rate must be greater than zero")
		}
		employee.BaseRate = int64(*input.BaseRate * 100)
	}
	if input.BankName != nil {
		employee.BankName = input.BankName
	}
	if input.BankAccountNo != nil {
		employee.BankAccountNo = input.BankAccountNo
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeactivateEmployee soft-deletes an employee. Past payroll records keep
// their reference; the next period sync stops creating rows for them.
func (s *EmployeeService) DeactivateEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	employee.Status = enum.RecordStatusInactive
	return s.employeeRepo.Update(ctx, employee)
}
