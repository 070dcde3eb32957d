package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDigitalInput_Estimate covers device, media and data-transfer energy
// and the regional grid intensity fallback.
func TestDigitalInput_Estimate(t *testing.T) {
	tests := []struct {
		name  string
		input DigitalInput
		want  float64
	}{
		{
			name: "laptop running around the clock on the Luzon grid",
			input: DigitalInput{
				LaptopHours: "24",
				GridRegion:  "Luzon",
			},
			want: 1.423, // 0.055 kWh/day x 0.85 x days per month
		},
		{
			name: "high quality streaming",
			input: DigitalInput{
				StreamingHours:   "2",
				StreamingQuality: "High (4K)",
				GridRegion:       "Luzon",
			},
			want: 36.221, // 1.4 kWh/day x 0.85 x days per month
		},
		{
			name: "high demand gaming",
			input: DigitalInput{
				GamingHours: "3",
				GamingType:  "High Demand",
				GridRegion:  "Luzon",
			},
			want: 27.165, // 1.05 kWh/day x 0.85 x days per month
		},
		{
			name: "monthly data on the default grid",
			input: DigitalInput{
				DataUsageGB: "30.4375",
				DataPeriod:  PeriodPerMonth,
				GridRegion:  "Other",
			},
			want: 95.104, // 1 GB/day x 5.18 kWh/GB x 0.6032 x days per month
		},
		{
			name: "device and media energy sum before the grid factor",
			input: DigitalInput{
				LaptopHours:      "24",
				StreamingHours:   "2",
				StreamingQuality: "High (4K)",
				GridRegion:       "Luzon",
			},
			want: 37.644,
		},
		{
			name: "mobile hours on the Mindanao grid",
			input: DigitalInput{
				MobileHours: "5",
				GridRegion:  "Mindanao",
			},
			want: 0.104,
		},
		{
			name:  "no usage yields zero",
			input: DigitalInput{GridRegion: "Luzon"},
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
