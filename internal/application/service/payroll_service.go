package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/calc"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
)

// PayrollService handles semi-monthly payroll periods
type PayrollService struct {
	employeeRepo repository.EmployeeRepository
	payrollRepo  repository.PayrollRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	employeeRepo repository.EmployeeRepository,
	payrollRepo repository.PayrollRepository,
) *PayrollService {
	return &PayrollService{
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
	}
}

// PayrollRow is one payroll record joined with its employee and the computed
// pay columns
type PayrollRow struct {
	Record   entity.PayrollRecord `json:"record"`
	Employee entity.Employee      `json:"employee"`
	Computed calc.PayrollResult   `json:"computed"`
}

// SyncPeriod reconciles a pay period's rows with the active employee roster.
// Active employees missing a row get a blank one; rows of deactivated
// employees are dropped unless they already hold data.
func (s *PayrollService) SyncPeriod(ctx context.Context, year, month int, period enum.PayPeriod) ([]PayrollRow, error) {
	if err := validatePeriod(month, period); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.payrollRepo.ListPeriod(ctx, year, month, period)
	if err != nil {
		return nil, err
	}

	active := make(map[uuid.UUID]bool, len(employees))
	for _, emp := range employees {
		active[emp.ID] = true
	}
	existing := make(map[uuid.UUID]bool, len(records))
	for _, rec := range records {
		existing[rec.EmployeeID] = true
		if !active[rec.EmployeeID] && !rec.HasData() {
			if err := s.payrollRepo.Delete(ctx, rec.ID); err != nil {
				return nil, err
			}
		}
	}

	for _, emp := range employees {
		if existing[emp.ID] {
			continue
		}
		record := &entity.PayrollRecord{
			EmployeeID: emp.ID,
			Year:       year,
			Month:      month,
			Period:     period,
		}
		if err := s.payrollRepo.Create(ctx, record); err != nil {
			return nil, err
		}
	}

	return s.ListPeriod(ctx, year, month, period)
}

// ListPeriod returns a pay period's rows with pay computed per row
func (s *PayrollService) ListPeriod(ctx context.Context, year, month int, period enum.PayPeriod) ([]PayrollRow, error) {
	if err := validatePeriod(month, period); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListPeriod(ctx, year, month, period)
	if err != nil {
		return nil, err
	}

	rows := make([]PayrollRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, PayrollRow{
			Record:   rec,
			Employee: rec.Employee,
			Computed: calc.PayrollRow(recordInput(&rec)),
		})
	}
	return rows, nil
}

// UpdateRecordInput represents the payroll record edit input. Amounts in baht.
type UpdateRecordInput struct {
	ID                      uuid.UUID
	WorkDays                *int
	OtherIncome             *float64
	DeductionSocialSecurity *float64
	DeductionAbsence        *float64
	DeductionOther          *float64
}

// UpdateRecord edits one payroll row's input cells and returns the row with
// recomputed pay
func (s *PayrollService) UpdateRecord(ctx context.Context, input *UpdateRecordInput) (*PayrollRow, error) {
	record, err := s.payrollRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Payroll record")
	}

	if input.WorkDays != nil {
		if *input.WorkDays < 0 {
			return nil, apperror.NewUnprocessableError("Work days must not be negative")
		}
		record.WorkDays = input.WorkDays
	}
	if input.OtherIncome != nil {
		record.OtherIncome = satangPtr(*input.OtherIncome)
	}
	if input.DeductionSocialSecurity != nil {
		record.DeductionSocialSecurity = satangPtr(*input.DeductionSocialSecurity)
	}
	if input.DeductionAbsence != nil {
		record.DeductionAbsence = satangPtr(*input.DeductionAbsence)
	}
	if input.DeductionOther != nil {
		record.DeductionOther = satangPtr(*input.DeductionOther)
	}

	if err := s.payrollRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	record.Employee = *employee

	return &PayrollRow{
		Record:   *record,
		Employee: *employee,
		Computed: calc.PayrollRow(recordInput(record)),
	}, nil
}

// MonthSummaryRow is one employee's monthly net pay roll-up with identity
// fields for display
type MonthSummaryRow struct {
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Position     string    `json:"position"`
	Period1Net   float64   `json:"period1_net"`
	Period2Net   float64   `json:"period2_net"`
	TotalNetPay  float64   `json:"total_net_pay"`
}

// MonthSummary is the monthly payroll roll-up across both pay periods
type MonthSummary struct {
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	Rows       []MonthSummaryRow `json:"rows"`
	GrandTotal float64           `json:"grand_total"`
}

// MonthlySummary joins both pay periods of a month into per-employee totals.
// Fails when the periods cover different employees, to keep the dashboard from
// showing a silently incomplete total.
func (s *PayrollService) MonthlySummary(ctx context.Context, year, month int) (*MonthSummary, error) {
	if month < 1 || month > 12 {
		return nil, apperror.NewUnprocessableError("Month must be between 1 and 12")
	}

	first, err := s.payrollRepo.ListPeriod(ctx, year, month, enum.PayPeriodFirst)
	if err != nil {
		return nil, err
	}
	second, err := s.payrollRepo.ListPeriod(ctx, year, month, enum.PayPeriodSecond)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]entity.Employee, len(first))
	p1 := make([]calc.PayrollInput, 0, len(first))
	for i := range first {
		names[first[i].EmployeeID] = first[i].Employee
		p1 = append(p1, recordInput(&first[i]))
	}
	p2 := make([]calc.PayrollInput, 0, len(second))
	for i := range second {
		names[second[i].EmployeeID] = second[i].Employee
		p2 = append(p2, recordInput(&second[i]))
	}

	summaries, err := calc.MonthlySummary(p1, p2)
	if err != nil {
		var mismatch *calc.MismatchedPeriodsError
		if errors.As(err, &mismatch) {
			return nil, apperror.NewInconsistentStateError(mismatch.Error())
		}
		return nil, err
	}

	result := &MonthSummary{Year: year, Month: month, Rows: make([]MonthSummaryRow, 0, len(summaries))}
	var grand int64
	for _, sum := range summaries {
		emp := names[sum.EmployeeID]
		result.Rows = append(result.Rows, MonthSummaryRow{
			EmployeeID:   sum.EmployeeID,
			EmployeeName: emp.Name,
			Position:     emp.Position,
			Period1Net:   float64(sum.Period1Net) / 100,
			Period2Net:   float64(sum.Period2Net) / 100,
			TotalNetPay:  float64(sum.TotalNetPay) / 100,
		})
		grand += sum.TotalNetPay
	}
	result.GrandTotal = float64(grand) / 100
	return result, nil
}

func satangPtr(baht float64) *int64 {
	v := int64(baht * 100)
	return &v
}

func recordInput(rec *entity.PayrollRecord) calc.PayrollInput {
	return calc.PayrollInput{
		EmployeeID:              rec.EmployeeID,
		EmploymentType:          rec.Employee.EmploymentType,
		BaseRate:                rec.Employee.BaseRate,
		WorkDays:                rec.WorkDays,
		OtherIncome:             rec.OtherIncome,
		DeductionSocialSecurity: rec.DeductionSocialSecurity,
		DeductionAbsence:        rec.DeductionAbsence,
		DeductionOther:          rec.DeductionOther,
	}
}

func validatePeriod(month int, period enum.PayPeriod) error {
	if month < 1 || month > 12 {
		return apperror.NewUnprocessableError("Month must be between 1 and 12")
	}
	if !period.Valid() {
		return apperror.NewUnprocessableError("Pay period must be 1 or 2")
	}
	return nil
}
