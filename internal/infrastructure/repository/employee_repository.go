package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	domainRepo "github.com/prasert/baanpak-api/internal/domain/repository"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepository) List(ctx context.Context, params *domainRepo.RegistryFilterParams) ([]entity.Employee, int64, error) {
	var employees []entity.Employee
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Employee{})
	if !params.IncludeInactive {
		query = query.Where("status = ?", enum.RecordStatusActive)
	}
	if params.Search != "" {
		query = query.Where("name LIKE ? OR position LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&employees).Error

	return employees, total, err
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).
		Where("status = ?", enum.RecordStatusActive).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *gorm.DB) domainRepo.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(ctx context.Context, record *entity.PayrollRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *payrollRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PayrollRecord, error) {
	var record entity.PayrollRecord
	err := r.db.WithContext(ctx).Preload("Employee").First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *payrollRepository) Update(ctx context.Context, record *entity.PayrollRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *payrollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PayrollRecord{}, "id = ?", id).Error
}

func (r *payrollRepository) ListPeriod(ctx context.Context, year, month int, period enum.PayPeriod) ([]entity.PayrollRecord, error) {
	var records []entity.PayrollRecord
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Joins("JOIN employees ON employees.id = payroll_records.employee_id").
		Where("payroll_records.year = ? AND payroll_records.month = ? AND payroll_records.period = ?", year, month, period).
		Order("employees.name ASC").
		Find(&records).Error
	return records, err
}
