package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServicesInput_Estimate covers the regional-or-base factor fallback
// for both service sub-sections.
func TestServicesInput_Estimate(t *testing.T) {
	tests := []struct {
		name  string
		input ServicesInput
		want  float64
	}{
		{
			name: "urban dry cleaning",
			input: ServicesInput{
				AreaType:          AreaUrban,
				DryCleaningKg:     "5",
				DryCleaningPeriod: PeriodPerMonth,
			},
			want: 35, // 5 kg x 7.0 urban
		},
		{
			name: "unknown area falls back to the base factor",
			input: ServicesInput{
				AreaType:          AreaUnknown,
				DryCleaningKg:     "5",
				DryCleaningPeriod: PeriodMonthly,
			},
			want: 10, // 5 kg x 2.0 base
		},
		{
			name: "rural landscaping",
			input: ServicesInput{
				AreaType:          AreaRural,
				LandscapingM2:     "100",
				LandscapingPeriod: PeriodMonthly,
			},
			want: 15, // 100 m2 x 0.15 rural
		},
		{
			name: "both sub-sections sum",
			input: ServicesInput{
				AreaType:          AreaUrban,
				DryCleaningKg:     "5",
				DryCleaningPeriod: PeriodMonthly,
				LandscapingM2:     "100",
				LandscapingPeriod: PeriodMonthly,
			},
			want: 55,
		},
		{
			name: "annual landscaping amortizes to monthly",
			input: ServicesInput{
				AreaType:          AreaUnknown,
				LandscapingM2:     "100",
				LandscapingPeriod: PeriodAnnually,
			},
			want: 1.667, // 100 / 12 x 0.2 base
		},
		{
			name:  "empty input yields zero",
			input: ServicesInput{AreaType: AreaUnknown},
			want:  0,
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
