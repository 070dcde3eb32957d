package carbon

import "github.com/rs/zerolog/log"

// Period is the reporting cadence of an input quantity.
type Period string

// Recognized reporting periods. The *Total and Per Month variants are the
// labels the input forms use; they normalize like their canonical kinds.
const (
	PeriodMonthly      Period = "Monthly"
	PeriodMonthlyTotal Period = "Monthly Total"
	PeriodPerMonth     Period = "Per Month"
	PeriodPerWeek      Period = "Per Week"
	PeriodWeeklyTotal  Period = "Weekly Total"
	PeriodDailyTotal   Period = "Daily Total"
	PeriodPerDay       Period = "Per Day"
	PeriodBiMonthly    Period = "Bi-monthly"
	PeriodQuarterly    Period = "Quarterly"
	PeriodAnnually     Period = "Annually"
	PeriodOneOff       Period = "One-off Purchase"
	PeriodPerTrip      Period = "Per Trip"
)

// monthlyMultipliers maps each recognized period to the multiplier that
// converts a quantity reported over that period into a monthly-equivalent.
//
// One-off Purchase amortizes over a year. Per Trip contributes the raw
// single-trip value as the monthly figure; the dataset does not carry trip
// frequency, so no scaling is applied.
var monthlyMultipliers = map[Period]float64{
	PeriodMonthly:      1,
	PeriodMonthlyTotal: 1,
	PeriodPerMonth:     1,
	PeriodPerWeek:      WeeksPerMonth,
	PeriodWeeklyTotal:  WeeksPerMonth,
	PeriodDailyTotal:   DaysPerMonth,
	PeriodPerDay:       DaysPerMonth,
	PeriodBiMonthly:    1.0 / 2.0,
	PeriodQuarterly:    1.0 / 3.0,
	PeriodAnnually:     1.0 / 12.0,
	PeriodOneOff:       1.0 / 12.0,
	PeriodPerTrip:      1,
}

// NormalizeMonthly converts amount, reported over the given period, into a
// monthly-equivalent quantity. Unknown periods pass the amount through
// unchanged with a data-quality warning; normalization never fails.
func NormalizeMonthly(amount float64, period Period) float64 {
	if mult, ok := monthlyMultipliers[period]; ok {
		return amount * mult
	}
	log.Warn().Str("period", string(period)).
		Msg("unknown reporting period, using raw amount as monthly")
	return amount
}

// KnownPeriod reports whether the period has a defined monthly multiplier.
func KnownPeriod(period Period) bool {
	_, ok := monthlyMultipliers[period]
	return ok
}
