package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/calc"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/prasert/baanpak-api/pkg/format"
)

// MeterService handles meter reading entry and utility billing
type MeterService struct {
	tenantRepo   repository.TenantRepository
	readingRepo  repository.MeterReadingRepository
	settingsRepo repository.SettingsRepository
}

// NewMeterService creates a new meter service
func NewMeterService(
	tenantRepo repository.TenantRepository,
	readingRepo repository.MeterReadingRepository,
	settingsRepo repository.SettingsRepository,
) *MeterService {
	return &MeterService{
		tenantRepo:   tenantRepo,
		readingRepo:  readingRepo,
		settingsRepo: settingsRepo,
	}
}

// RecordReadingInput represents the record meter reading input
type RecordReadingInput struct {
	TenantID         uuid.UUID
	Year             int
	Month            int // 1-12
	WaterUnits       *int
	ElectricityUnits *int
}

// RecordReading inserts or overwrites the meter reading for a tenant's month.
// Either meter may be entered alone; billing requires both.
func (s *MeterService) RecordReading(ctx context.Context, input *RecordReadingInput) (*entity.MeterReading, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, apperror.NewUnprocessableError("Month must be between 1 and 12")
	}
	if input.WaterUnits == nil && input.ElectricityUnits == nil {
		return nil, apperror.NewUnprocessableError("At least one meter value is required")
	}
	if (input.WaterUnits != nil && *input.WaterUnits < 0) ||
		(input.ElectricityUnits != nil && *input.ElectricityUnits < 0) {
		return nil, apperror.NewUnprocessableError("Meter values must not be negative")
	}

	tenant, err := s.tenantRepo.GetByID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}

	// Preserve the other meter's value when only one is submitted.
	existing, err := s.readingRepo.Get(ctx, input.TenantID, input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	merged := &entity.MeterReading{
		TenantID:         input.TenantID,
		Year:             input.Year,
		Month:            input.Month,
		WaterUnits:       input.WaterUnits,
		ElectricityUnits: input.ElectricityUnits,
	}
	if existing != nil {
		if merged.WaterUnits == nil {
			merged.WaterUnits = existing.WaterUnits
		}
		if merged.ElectricityUnits == nil {
			merged.ElectricityUnits = existing.ElectricityUnits
		}
	}

	if err := s.readingRepo.Upsert(ctx, merged); err != nil {
		return nil, err
	}
	return s.readingRepo.Get(ctx, input.TenantID, input.Year, input.Month)
}

// GetHistory returns a tenant's meter readings for one calendar year
func (s *MeterService) GetHistory(ctx context.Context, tenantID uuid.UUID, year int) ([]entity.MeterReading, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}
	return s.readingRepo.ListByTenantYear(ctx, tenantID, year)
}

// TenantBill is a tenant's itemized bill for one month
type TenantBill struct {
	TenantID     uuid.UUID         `json:"tenant_id"`
	TenantName   string            `json:"tenant_name"`
	RoomNumber   string            `json:"room_number"`
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	MonthLabel   string            `json:"month_label"`
	Quote        calc.UtilityQuote `json:"bill"`
	TotalDisplay string            `json:"total_display"`
}

// ComputeBill builds a tenant's monthly bill from the current and previous
// meter readings and the tariff in settings
func (s *MeterService) ComputeBill(ctx context.Context, tenantID uuid.UUID, year, month int) (*TenantBill, error) {
	if month < 1 || month > 12 {
		return nil, apperror.NewUnprocessableError("Month must be between 1 and 12")
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}

	current, err := s.readingRepo.Get(ctx, tenantID, year, month)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.NewNotFoundError("Meter reading")
	}

	prevYear, prevMonth := calc.PreviousPeriod(year, month)
	previous, err := s.readingRepo.Get(ctx, tenantID, prevYear, prevMonth)
	if err != nil {
		return nil, err
	}
	prevReading := calc.Reading{}
	if previous != nil {
		prevReading.Water = previous.WaterUnits
		prevReading.Electricity = previous.ElectricityUnits
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := calc.UtilityBill(
		tenant.MonthlyRent,
		calc.Rates{Water: settings.WaterRate, Electricity: settings.ElectricityRate},
		calc.Reading{Water: current.WaterUnits, Electricity: current.ElectricityUnits},
		prevReading,
	)
	if err != nil {
		if errors.Is(err, calc.ErrIncompleteReading) || errors.Is(err, calc.ErrMeterRegression) {
			return nil, apperror.NewUnprocessableError(err.Error())
		}
		return nil, err
	}

	return &TenantBill{
		TenantID:     tenant.ID,
		TenantName:   tenant.Name,
		RoomNumber:   tenant.RoomNumber,
		Year:         year,
		Month:        month,
		MonthLabel:   format.ThaiMonthYear(time.Month(month), year),
		Quote:        quote,
		TotalDisplay: format.Baht(quote.Total),
	}, nil
}
