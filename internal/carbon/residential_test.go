package carbon

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecohub/internal/factors"
)

func testTable(t *testing.T) *factors.Table {
	t.Helper()
	return factors.NewDefault(zerolog.Nop())
}

// TestResidentialInput_Estimate verifies the four monthly sub-totals and
// the final clamp.
func TestResidentialInput_Estimate(t *testing.T) {
	tests := []struct {
		name  string
		input ResidentialInput
		want  float64
	}{
		{
			name: "electricity only on a monthly bill",
			input: ResidentialInput{
				ElectricityKWh:    "300",
				ElectricityPeriod: PeriodMonthly,
				HeatingFuel:       SelectionNone,
				WaterHeaterType:   SelectionNone,
				RenewableType:     SelectionNone,
			},
			want: 180.96, // 300 kWh x 0.6032
		},
		{
			name: "electricity plus natural gas heating",
			input: ResidentialInput{
				ElectricityKWh:    "300",
				ElectricityPeriod: PeriodMonthly,
				HeatingFuel:       FuelNaturalGas,
				HeatingAmount:     "10",
				HeatingPeriod:     PeriodMonthly,
				WaterHeaterType:   SelectionNone,
				RenewableType:     SelectionNone,
			},
			want: 233.96, // 180.96 + 10 therms x 5.3
		},
		{
			name: "softwood cord heating",
			input: ResidentialInput{
				ElectricityKWh:    "0",
				ElectricityPeriod: PeriodMonthly,
				HeatingFuel:       FuelWood,
				HeatingWood:       WoodSoftwood,
				HeatingAmount:     "1",
				HeatingPeriod:     PeriodAnnually,
				WaterHeaterType:   SelectionNone,
				RenewableType:     SelectionNone,
			},
			want: 191.05, // 2292.60 / 12
		},
		{
			name: "solar thermal water heating",
			input: ResidentialInput{
				ElectricityKWh:    "100",
				ElectricityPeriod: PeriodMonthly,
				HeatingFuel:       SelectionNone,
				WaterHeaterType:   WaterHeaterSolar,
				WaterUsageAmount:  "50",
				WaterUsagePeriod:  PeriodMonthly,
				RenewableType:     SelectionNone,
			},
			want: 62.37, // 100 x 0.6032 + 50 x 0.041
		},
		{
			name: "renewables subtract from the total",
			input: ResidentialInput{
				ElectricityKWh:    "300",
				ElectricityPeriod: PeriodMonthly,
				HeatingFuel:       SelectionNone,
				WaterHeaterType:   SelectionNone,
				RenewableType:     RenewableSolarPanels,
				RenewableKWhGen:   "100",
				RenewablePeriod:   PeriodMonthly,
			},
			want: 176.86, // 180.96 - 100 x 0.041
		},
		{
			name: "large renewable credit clamps at zero",
			input: ResidentialInput{
				ElectricityKWh:    "10",
				ElectricityPeriod: PeriodMonthly,
				HeatingFuel:       SelectionNone,
				WaterHeaterType:   SelectionNone,
				RenewableType:     RenewableSolarPanels,
				RenewableKWhGen:   "1000",
				RenewablePeriod:   PeriodMonthly,
			},
			want: 0, // 6.032 - 41.0 clamped
		},
		{
			name: "blank numerics coerce to zero",
			input: ResidentialInput{
				ElectricityKWh:    "",
				ElectricityPeriod: PeriodMonthly,
				HeatingFuel:       FuelPropane,
				HeatingAmount:     "not a number",
				HeatingPeriod:     PeriodMonthly,
				WaterHeaterType:   SelectionNone,
				RenewableType:     SelectionNone,
			},
			want: 0,
		},
	}

	table := testTable(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Estimate(table)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

// TestResidentialInput_EstimateIdempotent verifies identical inputs and an
// unchanged table produce bit-identical results.
func TestResidentialInput_EstimateIdempotent(t *testing.T) {
	table := testTable(t)
	input := ResidentialInput{
		ElectricityKWh:    "123.45",
		ElectricityPeriod: PeriodPerWeek,
		HeatingFuel:       FuelHeatingOil,
		HeatingAmount:     "3.2",
		HeatingPeriod:     PeriodQuarterly,
		WaterHeaterType:   WaterHeaterElectric,
		WaterUsageAmount:  "40",
		WaterUsagePeriod:  PeriodMonthly,
		RenewableType:     RenewableWindTurbines,
		RenewableKWhGen:   "15",
		RenewablePeriod:   PeriodMonthly,
	}

	first, err := input.Estimate(table)
	require.NoError(t, err)
	second, err := input.Estimate(table)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
