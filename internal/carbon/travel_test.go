package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTravelInput_Estimate covers private vehicles, rideshare occupancy
// splitting, air travel band and cabin multipliers, and public transit
// per-passenger-km factors.
func TestTravelInput_Estimate(t *testing.T) {
	tests := []struct {
		name  string
		input TravelInput
		want  float64
	}{
		{
			name: "gasoline car single trip",
			input: TravelInput{
				Mode:     ModeCar,
				Distance: "50",
				Period:   PeriodPerTrip,
				CarFuel:  FuelGasoline,
			},
			want: 9.75, // 50 km x 0.195
		},
		{
			name: "diesel car monthly distance",
			input: TravelInput{
				Mode:     ModeCar,
				Distance: "100",
				Period:   PeriodMonthly,
				CarFuel:  FuelDiesel,
			},
			want: 22.4,
		},
		{
			name: "car with unrecognized fuel contributes nothing",
			input: TravelInput{
				Mode:     ModeCar,
				Distance: "100",
				Period:   PeriodMonthly,
				CarFuel:  "Hydrogen",
			},
			want: 0,
		},
		{
			name: "rideshare splits by occupancy",
			input: TravelInput{
				Mode:                ModeRideshare,
				Distance:            "30",
				Period:              PeriodPerTrip,
				RideshareFuel:       FuelGasoline,
				RidesharePassengers: "3",
			},
			want: 1.95, // 30 x 0.195 / 3
		},
		{
			name: "rideshare occupancy floors at one",
			input: TravelInput{
				Mode:                ModeRideshare,
				Distance:            "30",
				Period:              PeriodPerTrip,
				RideshareFuel:       FuelGasoline,
				RidesharePassengers: "0",
			},
			want: 5.85,
		},
		{
			name: "short haul business flight",
			input: TravelInput{
				Mode:        ModeAirTravel,
				Distance:    "1000",
				Period:      PeriodPerTrip,
				FlightType:  "Short",
				FlightCabin: CabinBusiness,
			},
			want: 753, // 1000 x 0.251 x 3.0
		},
		{
			name: "flight defaults to medium band economy",
			input: TravelInput{
				Mode:     ModeAirTravel,
				Distance: "1000",
				Period:   PeriodPerTrip,
			},
			want: 209,
		},
		{
			name: "weekly bus commute scales to monthly",
			input: TravelInput{
				Mode:     ModeBus,
				Distance: "100",
				Period:   PeriodPerWeek,
			},
			want: 40.438, // 9.3 per week x weeks per month
		},
		{
			name: "daily jeepney ride",
			input: TravelInput{
				Mode:     ModeJeepney,
				Distance: "10",
				Period:   PeriodDailyTotal,
			},
			want: 34.699, // 1.14 per day x days per month
		},
		{
			name: "unrecognized mode contributes nothing",
			input: TravelInput{
				Mode:     "Walking",
				Distance: "10",
				Period:   PeriodDailyTotal,
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
