package service

import (
	"context"
	"testing"

	"github.com/prasert/baanpak-api/internal/infrastructure/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMeterService(db *gorm.DB) *MeterService {
	return NewMeterService(
		repository.NewTenantRepository(db),
		repository.NewMeterReadingRepository(db),
		repository.NewSettingsRepository(db),
	)
}

func TestRecordReadingMergesPartialEntry(t *testing.T) {
	db := setupTestDB(t)
	svc := newMeterService(db)
	ctx := context.Background()

	tenant := seedTenant(t, db, "Pranee", "B201", 350000)

	reading, err := svc.RecordReading(ctx, &RecordReadingInput{
		TenantID:   tenant.ID,
		Year:       2026,
		Month:      3,
		WaterUnits: intPtr(120),
	})
	require.NoError(t, err)
	require.NotNil(t, reading.WaterUnits)
	assert.Equal(t, 120, *reading.WaterUnits)
	assert.Nil(t, reading.ElectricityUnits)

	// Entering the other meter later keeps the first value
	reading, err = svc.RecordReading(ctx, &RecordReadingInput{
		TenantID:         tenant.ID,
		Year:             2026,
		Month:            3,
		ElectricityUnits: intPtr(4500),
	})
	require.NoError(t, err)
	require.NotNil(t, reading.WaterUnits)
	assert.Equal(t, 120, *reading.WaterUnits)
	require.NotNil(t, reading.ElectricityUnits)
	assert.Equal(t, 4500, *reading.ElectricityUnits)

	history, err := svc.GetHistory(ctx, tenant.ID, 2026)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestComputeBillWorkedExample(t *testing.T) {
	db := setupTestDB(t)
	svc := newMeterService(db)
	ctx := context.Background()

	seedSettings(t, db, 2500, 800) // 25 baht water, 8 baht electricity
	tenant := seedTenant(t, db, "Pranee", "B201", 350000)

	_, err := svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 2,
		WaterUnits: intPtr(176), ElectricityUnits: intPtr(5990),
	})
	require.NoError(t, err)
	_, err = svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 3,
		WaterUnits: intPtr(179), ElectricityUnits: intPtr(6099),
	})
	require.NoError(t, err)

	bill, err := svc.ComputeBill(ctx, tenant.ID, 2026, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, bill.Quote.WaterUnits)
	assert.Equal(t, 109, bill.Quote.ElectricityUnits)
	assert.Equal(t, int64(7500), bill.Quote.WaterCost)
	assert.Equal(t, int64(87200), bill.Quote.ElectricityCost)
	assert.Equal(t, int64(350000), bill.Quote.Rent)
	assert.Equal(t, int64(444700), bill.Quote.Total) // 4447 baht
	assert.Equal(t, "มีนาคม 2569", bill.MonthLabel)
	assert.Equal(t, "4,447.00", bill.TotalDisplay)
}

func TestComputeBillAcrossYearBoundary(t *testing.T) {
	db := setupTestDB(t)
	svc := newMeterService(db)
	ctx := context.Background()

	seedSettings(t, db, 2500, 800)
	tenant := seedTenant(t, db, "Pranee", "B201", 350000)

	_, err := svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2025, Month: 12,
		WaterUnits: intPtr(100), ElectricityUnits: intPtr(1000),
	})
	require.NoError(t, err)
	_, err = svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 1,
		WaterUnits: intPtr(104), ElectricityUnits: intPtr(1050),
	})
	require.NoError(t, err)

	bill, err := svc.ComputeBill(ctx, tenant.ID, 2026, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, bill.Quote.WaterUnits)
	assert.Equal(t, 50, bill.Quote.ElectricityUnits)
}

func TestComputeBillFirstMonthUsesZeroBaseline(t *testing.T) {
	db := setupTestDB(t)
	svc := newMeterService(db)
	ctx := context.Background()

	seedSettings(t, db, 2500, 800)
	tenant := seedTenant(t, db, "Pranee", "B201", 350000)

	_, err := svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 1,
		WaterUnits: intPtr(5), ElectricityUnits: intPtr(10),
	})
	require.NoError(t, err)

	bill, err := svc.ComputeBill(ctx, tenant.ID, 2026, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, bill.Quote.WaterUnits)
	assert.Equal(t, 10, bill.Quote.ElectricityUnits)
}

func TestComputeBillIncompleteReading(t *testing.T) {
	db := setupTestDB(t)
	svc := newMeterService(db)
	ctx := context.Background()

	seedSettings(t, db, 2500, 800)
	tenant := seedTenant(t, db, "Pranee", "B201", 350000)

	_, err := svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 3,
		WaterUnits: intPtr(179),
	})
	require.NoError(t, err)

	_, err = svc.ComputeBill(ctx, tenant.ID, 2026, 3)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestComputeBillMeterRegression(t *testing.T) {
	db := setupTestDB(t)
	svc := newMeterService(db)
	ctx := context.Background()

	seedSettings(t, db, 2500, 800)
	tenant := seedTenant(t, db, "Pranee", "B201", 350000)

	_, err := svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 2,
		WaterUnits: intPtr(200), ElectricityUnits: intPtr(5000),
	})
	require.NoError(t, err)
	_, err = svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 3,
		WaterUnits: intPtr(150), ElectricityUnits: intPtr(5100),
	})
	require.NoError(t, err)

	_, err = svc.ComputeBill(ctx, tenant.ID, 2026, 3)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestRecordReadingValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newMeterService(db)
	ctx := context.Background()

	tenant := seedTenant(t, db, "Pranee", "B201", 350000)

	_, err := svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 13, WaterUnits: intPtr(1),
	})
	require.Error(t, err)

	_, err = svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 3,
	})
	require.Error(t, err)

	_, err = svc.RecordReading(ctx, &RecordReadingInput{
		TenantID: tenant.ID, Year: 2026, Month: 3, WaterUnits: intPtr(-1),
	})
	require.Error(t, err)
}
