package service

import (
	"context"
	"testing"

	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/infrastructure/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPayrollService(db *gorm.DB) *PayrollService {
	return NewPayrollService(
		repository.NewEmployeeRepository(db),
		repository.NewPayrollRepository(db),
	)
}

func TestSyncPeriodCreatesBlankRows(t *testing.T) {
	db := setupTestDB(t)
	svc := newPayrollService(db)
	ctx := context.Background()

	seedEmployee(t, db, "Anan", enum.EmploymentTypeMonthly, 1500000)
	seedEmployee(t, db, "Boon", enum.EmploymentTypeDaily, 32000)

	rows, err := svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodFirst)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by employee name, all cells blank
	assert.Equal(t, "Anan", rows[0].Employee.Name)
	assert.Equal(t, "Boon", rows[1].Employee.Name)
	assert.Nil(t, rows[0].Record.WorkDays)
	assert.Nil(t, rows[0].Record.OtherIncome)

	// Monthly staff earn base rate even with blank cells; daily staff earn 0
	assert.Equal(t, int64(1500000), rows[0].Computed.NetPay)
	assert.Equal(t, int64(0), rows[1].Computed.NetPay)

	// Re-sync is idempotent
	rows, err = svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodFirst)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSyncPeriodDropsBlankRowsOfDeactivatedEmployees(t *testing.T) {
	db := setupTestDB(t)
	svc := newPayrollService(db)
	empRepo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db, "Anan", enum.EmploymentTypeMonthly, 1500000)
	keeper := seedEmployee(t, db, "Boon", enum.EmploymentTypeDaily, 32000)

	rows, err := svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodFirst)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Fill in Boon's row so it survives deactivation
	var boonRow *PayrollRow
	for i := range rows {
		if rows[i].Employee.ID == keeper.ID {
			boonRow = &rows[i]
		}
	}
	require.NotNil(t, boonRow)
	_, err = svc.UpdateRecord(ctx, &UpdateRecordInput{
		ID:       boonRow.Record.ID,
		WorkDays: intPtr(10),
	})
	require.NoError(t, err)

	// Deactivate both
	emp.Status = enum.RecordStatusInactive
	require.NoError(t, empRepo.Update(ctx, emp))
	keeper.Status = enum.RecordStatusInactive
	require.NoError(t, empRepo.Update(ctx, keeper))

	rows, err = svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodFirst)
	require.NoError(t, err)
	// Anan's blank row is dropped; Boon's filled row is kept
	require.Len(t, rows, 1)
	assert.Equal(t, keeper.ID, rows[0].Employee.ID)
}

func TestUpdateRecordComputesPay(t *testing.T) {
	db := setupTestDB(t)
	svc := newPayrollService(db)
	ctx := context.Background()

	seedEmployee(t, db, "Boon", enum.EmploymentTypeDaily, 32000) // 320 baht/day
	seedEmployee(t, db, "Anan", enum.EmploymentTypeMonthly, 600000)

	rows, err := svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodFirst)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var daily, monthly *PayrollRow
	for i := range rows {
		switch rows[i].Employee.Name {
		case "Boon":
			daily = &rows[i]
		case "Anan":
			monthly = &rows[i]
		}
	}

	// Daily: 320 x 15 = 4800 baht
	row, err := svc.UpdateRecord(ctx, &UpdateRecordInput{
		ID:       daily.Record.ID,
		WorkDays: intPtr(15),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(480000), row.Computed.TotalIncome)
	assert.Equal(t, int64(480000), row.Computed.NetPay)

	// Monthly: 6000 + 500 - 300 = 6200 baht
	other := 500.0
	deduction := 300.0
	row, err = svc.UpdateRecord(ctx, &UpdateRecordInput{
		ID:               monthly.Record.ID,
		OtherIncome:      &other,
		DeductionAbsence: &deduction,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(650000), row.Computed.TotalIncome)
	assert.Equal(t, int64(30000), row.Computed.TotalDeductions)
	assert.Equal(t, int64(620000), row.Computed.NetPay)
}

func TestMonthlySummaryJoinsBothPeriods(t *testing.T) {
	db := setupTestDB(t)
	svc := newPayrollService(db)
	ctx := context.Background()

	seedEmployee(t, db, "Anan", enum.EmploymentTypeMonthly, 600000)

	_, err := svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodFirst)
	require.NoError(t, err)
	_, err = svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodSecond)
	require.NoError(t, err)

	summary, err := svc.MonthlySummary(ctx, 2026, 3)
	require.NoError(t, err)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "Anan", summary.Rows[0].EmployeeName)
	assert.InDelta(t, 6000.0, summary.Rows[0].Period1Net, 0.001)
	assert.InDelta(t, 6000.0, summary.Rows[0].Period2Net, 0.001)
	assert.InDelta(t, 12000.0, summary.Rows[0].TotalNetPay, 0.001)
	assert.InDelta(t, 12000.0, summary.GrandTotal, 0.001)
}

func TestMonthlySummaryMismatchedPeriods(t *testing.T) {
	db := setupTestDB(t)
	svc := newPayrollService(db)
	ctx := context.Background()

	seedEmployee(t, db, "Anan", enum.EmploymentTypeMonthly, 600000)

	_, err := svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodFirst)
	require.NoError(t, err)

	// Hire a second employee between the periods
	seedEmployee(t, db, "Boon", enum.EmploymentTypeDaily, 32000)
	_, err = svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodSecond)
	require.NoError(t, err)

	_, err = svc.MonthlySummary(ctx, 2026, 3)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	// Re-syncing the first period repairs the month
	_, err = svc.SyncPeriod(ctx, 2026, 3, enum.PayPeriodFirst)
	require.NoError(t, err)
	summary, err := svc.MonthlySummary(ctx, 2026, 3)
	require.NoError(t, err)
	assert.Len(t, summary.Rows, 2)
}

func TestPayrollPeriodValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newPayrollService(db)
	ctx := context.Background()

	_, err := svc.SyncPeriod(ctx, 2026, 0, enum.PayPeriodFirst)
	require.Error(t, err)

	_, err = svc.ListPeriod(ctx, 2026, 3, enum.PayPeriod(5))
	require.Error(t, err)

	_, err = svc.MonthlySummary(ctx, 2026, 13)
	require.Error(t, err)
}
