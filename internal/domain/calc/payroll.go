package calc

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/enum"
)

// PayrollInput is one employee's pay inputs for a single semi-monthly period.
// Nil pointer fields are blank cells and count as zero.
type PayrollInput struct {
	EmployeeID              uuid.UUID
	EmploymentType          enum.EmploymentType
	BaseRate                int64 // Satang; monthly salary or day rate
	WorkDays                *int  // Daily employees only
	OtherIncome             *int64
	DeductionSocialSecurity *int64
	DeductionAbsence        *int64
	DeductionOther          *int64
}

// PayrollResult is the computed pay for one period.
type PayrollResult struct {
	TotalIncome     int64 `json:"total_income"`
	TotalDeductions int64 `json:"total_deductions"`
	NetPay          int64 `json:"net_pay"`
}

// EmployeeSummary is the monthly roll-up of both pay periods for one employee.
type EmployeeSummary struct {
	EmployeeID  uuid.UUID `json:"employee_id"`
	Period1Net  int64     `json:"period1_net"`
	Period2Net  int64     `json:"period2_net"`
	TotalNetPay int64     `json:"total_net_pay"`
}

// MismatchedPeriodsError reports employees present in one pay period but not
// the other. The summary refuses to run until the periods are re-synced, so a
// dashboard never shows a silently incomplete total.
type MismatchedPeriodsError struct {
	MissingEmployeeIDs []uuid.UUID
}

func (e *MismatchedPeriodsError) Error() string {
	return fmt.Sprintf("payroll periods out of sync: %d employee(s) missing a matching row", len(e.MissingEmployeeIDs))
}

// PayrollRow computes gross income, deductions and net pay for one period row.
// Monthly staff earn base rate plus other income; daily staff earn day rate
// times work days plus other income.
func PayrollRow(row PayrollInput) PayrollResult {
	var income int64
	switch row.EmploymentType {
	case enum.EmploymentTypeDaily:
		income = row.BaseRate*int64(intOrZero(row.WorkDays)) + int64OrZero(row.OtherIncome)
	default:
		income = row.BaseRate + int64OrZero(row.OtherIncome)
	}

	deductions := int64OrZero(row.DeductionSocialSecurity) +
		int64OrZero(row.DeductionAbsence) +
		int64OrZero(row.DeductionOther)

	return PayrollResult{
		TotalIncome:     income,
		TotalDeductions: deductions,
		NetPay:          income - deductions,
	}
}

// MonthlySummary joins period-1 and period-2 rows by employee and sums their
// net pay. Every employee must appear in both periods; otherwise a
// *MismatchedPeriodsError naming the odd ones out is returned.
func MonthlySummary(period1, period2 []PayrollInput) ([]EmployeeSummary, error) {
	p2 := make(map[uuid.UUID]PayrollInput, len(period2))
	for _, row := range period2 {
		p2[row.EmployeeID] = row
	}

	var missing []uuid.UUID
	summaries := make([]EmployeeSummary, 0, len(period1))
	seen := make(map[uuid.UUID]bool, len(period1))

	for _, row := range period1 {
		seen[row.EmployeeID] = true
		other, ok := p2[row.EmployeeID]
		if !ok {
			missing = append(missing, row.EmployeeID)
			continue
		}
		net1 := PayrollRow(row).NetPay
		net2 := PayrollRow(other).NetPay
		summaries = append(summaries, EmployeeSummary{
			EmployeeID:  row.EmployeeID,
			Period1Net:  net1,
			Period2Net:  net2,
			TotalNetPay: net1 + net2,
		})
	}

	for _, row := range period2 {
		if !seen[row.EmployeeID] {
			missing = append(missing, row.EmployeeID)
		}
	}

	if len(missing) > 0 {
		return nil, &MismatchedPeriodsError{MissingEmployeeIDs: missing}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EmployeeID.String() < summaries[j].EmployeeID.String()
	})
	return summaries, nil
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func int64OrZero(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
