package calc

import "errors"

var (
	// ErrIncompleteReading is returned when the current month's reading is
	// missing a meter component. Billing needs both meters entered.
	ErrIncompleteReading = errors.New("current meter reading is incomplete")

	// ErrMeterRegression is returned when a current reading is lower than the
	// previous one. A rollback means a meter reset or a data-entry mistake and
	// must be corrected before billing.
	ErrMeterRegression = errors.New("meter reading is lower than the previous month")
)

// Reading is a point-in-time pair of meter values. Nil means not entered.
type Reading struct {
	Water       *int
	Electricity *int
}

// Rates is the utility tariff in satang per unit.
type Rates struct {
	Water       int64
	Electricity int64
}

// UtilityQuote is a tenant's itemized monthly bill.
type UtilityQuote struct {
	WaterUnits       int   `json:"water_units"`
	ElectricityUnits int   `json:"electricity_units"`
	WaterCost        int64 `json:"water_cost"`
	ElectricityCost  int64 `json:"electricity_cost"`
	Rent             int64 `json:"rent"`
	Total            int64 `json:"total"`
}

// UtilityBill computes a tenant's monthly bill from the current and previous
// meter readings, the tariff, and the fixed rent. A missing previous reading
// is treated as a zero baseline (first month in the room).
func UtilityBill(rentSatang int64, rates Rates, current, previous Reading) (UtilityQuote, error) {
	if current.Water == nil || current.Electricity == nil {
		return UtilityQuote{}, ErrIncompleteReading
	}

	prevWater, prevElec := 0, 0
	if previous.Water != nil {
		prevWater = *previous.Water
	}
	if previous.Electricity != nil {
		prevElec = *previous.Electricity
	}

	waterUnits := *current.Water - prevWater
	elecUnits := *current.Electricity - prevElec
	if waterUnits < 0 || elecUnits < 0 {
		return UtilityQuote{}, ErrMeterRegression
	}

	waterCost := int64(waterUnits) * rates.Water
	elecCost := int64(elecUnits) * rates.Electricity

	return UtilityQuote{
		WaterUnits:       waterUnits,
		ElectricityUnits: elecUnits,
		WaterCost:        waterCost,
		ElectricityCost:  elecCost,
		Rent:             rentSatang,
		Total:            rentSatang + waterCost + elecCost,
	}, nil
}

// PreviousPeriod returns the calendar month preceding (year, month), crossing
// the year boundary when month is January.
func PreviousPeriod(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
