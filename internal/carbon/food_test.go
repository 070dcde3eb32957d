package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFoodInput_Estimate covers production factor averaging, the three
// qualitative multipliers, and the additive regional term.
func TestFoodInput_Estimate(t *testing.T) {
	tests := []struct {
		name  string
		input FoodInput
		want  float64
	}{
		{
			name: "weekly beef with regional term",
			input: FoodInput{
				BeefKg:            "2",
				ConsumptionPeriod: PeriodPerWeek,
				Region:            "Luzon",
			},
			// 8.696 monthly kg x 42 averaged beef/lamb factor, plus
			// 8.696 x 0.5 regional.
			want: 369.598,
		},
		{
			name: "vegetables and fruits average their pair",
			input: FoodInput{
				VegFruitKg:        "10",
				ConsumptionPeriod: PeriodMonthly,
			},
			want: 6.7, // 10 x (0.88 + 0.46) / 2
		},
		{
			name: "low sourcing and heavy packaging raise the total",
			input: FoodInput{
				PorkKg:            "10",
				ConsumptionPeriod: PeriodMonthly,
				LocalSourcing:     "Low (Mostly Imported)",
				PackagingLevel:    "Mostly Packaged",
			},
			want: 80.85, // 70 x 1.05 x 1.10
		},
		{
			name: "high sourcing and minimal packaging lower the total",
			input: FoodInput{
				PorkKg:            "10",
				ConsumptionPeriod: PeriodMonthly,
				LocalSourcing:     "High (Locally Grown)",
				PackagingLevel:    "Minimal",
			},
			want: 59.85, // 70 x 0.90 x 0.95
		},
		{
			name: "organic preference applies the fertilizer discount",
			input: FoodInput{
				BeefKg:            "1",
				ConsumptionPeriod: PeriodMonthly,
				OrganicPreference: true,
			},
			want: 37.472, // 42 x 2.4 / 2.69
		},
		{
			name: "no amounts yields zero",
			input: FoodInput{
				ConsumptionPeriod: PeriodMonthly,
				Region:            "Visayas",
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
