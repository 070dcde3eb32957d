package carbon

const (
	// DaysPerMonth is the average Gregorian month length in days
	// (365.25 / 12), used for all period-to-monthly conversions.
	DaysPerMonth = 30.4375

	// WeeksPerMonth is the average number of weeks per month (~4.3482).
	WeeksPerMonth = DaysPerMonth / 7.0

	// PHPToUSDRate is the fixed Philippine peso to US dollar conversion
	// rate applied to goods spending before the per-dollar factors.
	PHPToUSDRate = 57.0

	// resultPrecision is the number of decimal places in a final estimate.
	resultPrecision = 3
)
