package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestUtilityBill(t *testing.T) {
	rates := Rates{Water: 2500, Electricity: 800} // 25 and 8 baht per unit

	t.Run("worked example", func(t *testing.T) {
		// prev water 176, current 179 -> 3 units at 25 = 75 baht
		// prev elec 5990, current 6099 -> 109 units at 8 = 872 baht
		// rent 3500 -> total 4447 baht
		got, err := UtilityBill(350000, rates,
			Reading{Water: intPtr(179), Electricity: intPtr(6099)},
			Reading{Water: intPtr(176), Electricity: intPtr(5990)},
		)
		require.NoError(t, err)
		assert.Equal(t, 3, got.WaterUnits)
		assert.Equal(t, int64(7500), got.WaterCost)
		assert.Equal(t, 109, got.ElectricityUnits)
		assert.Equal(t, int64(87200), got.ElectricityCost)
		assert.Equal(t, int64(444700), got.Total)
	})

	t.Run("missing previous reading is zero baseline", func(t *testing.T) {
		got, err := UtilityBill(300000, rates,
			Reading{Water: intPtr(10), Electricity: intPtr(20)},
			Reading{},
		)
		require.NoError(t, err)
		assert.Equal(t, 10, got.WaterUnits)
		assert.Equal(t, 20, got.ElectricityUnits)
		assert.Equal(t, int64(300000+10*2500+20*800), got.Total)
	})

	t.Run("incomplete current reading is rejected", func(t *testing.T) {
		_, err := UtilityBill(300000, rates,
			Reading{Water: intPtr(10)},
			Reading{},
		)
		assert.ErrorIs(t, err, ErrIncompleteReading)
	})

	t.Run("meter rollback is rejected", func(t *testing.T) {
		_, err := UtilityBill(300000, rates,
			Reading{Water: intPtr(5), Electricity: intPtr(100)},
			Reading{Water: intPtr(10), Electricity: intPtr(90)},
		)
		assert.ErrorIs(t, err, ErrMeterRegression)
	})

	t.Run("zero consumption bills rent only", func(t *testing.T) {
		got, err := UtilityBill(300000, rates,
			Reading{Water: intPtr(50), Electricity: intPtr(70)},
			Reading{Water: intPtr(50), Electricity: intPtr(70)},
		)
		require.NoError(t, err)
		assert.Equal(t, int64(300000), got.Total)
	})
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		year, month         int
		wantYear, wantMonth int
	}{
		{2024, 7, 2024, 6},
		{2024, 1, 2023, 12},
		{2024, 12, 2024, 11},
	}
	for _, tt := range tests {
		y, m := PreviousPeriod(tt.year, tt.month)
		assert.Equal(t, tt.wantYear, y)
		assert.Equal(t, tt.wantMonth, m)
	}
}
