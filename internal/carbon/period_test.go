package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeMonthly verifies the monthly-equivalent conversion for every
// recognized reporting period.
func TestNormalizeMonthly(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		period Period
		want   float64
	}{
		{name: "monthly passes through", amount: 10, period: PeriodMonthly, want: 10},
		{name: "monthly total alias", amount: 10, period: PeriodMonthlyTotal, want: 10},
		{name: "per month alias", amount: 10, period: PeriodPerMonth, want: 10},
		{name: "weekly scales by weeks per month", amount: 7, period: PeriodPerWeek, want: 30.4375},
		{name: "weekly total alias", amount: 7, period: PeriodWeeklyTotal, want: 30.4375},
		{name: "daily total scales by days per month", amount: 1, period: PeriodDailyTotal, want: 30.4375},
		{name: "per day alias", amount: 2, period: PeriodPerDay, want: 60.875},
		{name: "bi-monthly halves", amount: 10, period: PeriodBiMonthly, want: 5},
		{name: "quarterly divides by three", amount: 30, period: PeriodQuarterly, want: 10},
		{name: "annual divides by twelve", amount: 120, period: PeriodAnnually, want: 10},
		{name: "one-off amortizes over a year", amount: 120, period: PeriodOneOff, want: 10},
		{name: "per trip passes through", amount: 9.75, period: PeriodPerTrip, want: 9.75},
		{name: "unknown period passes through", amount: 42, period: Period("Fortnightly"), want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeMonthly(tt.amount, tt.period), 1e-9)
		})
	}
}

// TestNormalizeMonthly_Linearity verifies normalize(2a, p) == 2*normalize(a, p)
// and normalize(0, p) == 0 for every recognized period.
func TestNormalizeMonthly_Linearity(t *testing.T) {
	for period := range monthlyMultipliers {
		t.Run(string(period), func(t *testing.T) {
			single := NormalizeMonthly(3.7, period)
			double := NormalizeMonthly(7.4, period)
			assert.InDelta(t, 2*single, double, 1e-9)
			assert.Zero(t, NormalizeMonthly(0, period))
		})
	}
}

// TestKnownPeriod verifies period recognition.
func TestKnownPeriod(t *testing.T) {
	assert.True(t, KnownPeriod(PeriodPerTrip))
	assert.True(t, KnownPeriod(PeriodOneOff))
	assert.False(t, KnownPeriod(Period("Fortnightly")))
	assert.False(t, KnownPeriod(Period("")))
}
