package carbon

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// violations accumulates ordered validation messages. Validation never
// mutates inputs; it only reads the raw submitted values.
type violations struct {
	messages []string
}

// requireSelection checks that a selection value is present and not "None".
func (v *violations) requireSelection(value, name string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == SelectionNone {
		v.messages = append(v.messages, fmt.Sprintf("'%s' is required.", name))
	}
}

// requireNumber checks a raw numeric string. Blank input passes when zero
// is allowed. allowZero false demands a strictly positive value; wholeNumber
// demands an integer.
func (v *violations) requireNumber(value, name string, allowZero, wholeNumber bool) {
	trimmed := strings.TrimSpace(value)
	valid := false
	if trimmed == "" {
		valid = allowZero
	} else if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
		inDomain := parsed > 0 || (allowZero && parsed == 0)
		if inDomain && (!wholeNumber || parsed == float64(int64(parsed))) {
			valid = true
		}
	}
	if !valid {
		domain := "non-negative"
		if !allowZero {
			domain = "positive"
		}
		whole := ""
		if wholeNumber {
			whole = " whole"
		}
		v.messages = append(v.messages,
			fmt.Sprintf("'%s' must be a %s%s number or empty.", name, domain, whole))
	}
}

// Validate checks the residential submission: electricity is mandatory,
// the optional heating/water/renewable sub-sections only need valid
// amounts when their selection is not "None".
func (in *ResidentialInput) Validate() []string {
	var v violations
	v.requireSelection(in.ElectricityKWh, "Electricity Used")
	v.requireNumber(in.ElectricityKWh, "Electricity Used", false, false)
	v.requireSelection(string(in.ElectricityPeriod), "Electricity Billing Period")

	if in.HeatingFuel != SelectionNone && in.HeatingFuel != "" {
		v.requireNumber(in.HeatingAmount, in.HeatingFuel+" Amount", true, false)
	}
	if in.WaterHeaterType != SelectionNone && in.WaterHeaterType != "" {
		v.requireNumber(in.WaterUsageAmount, in.WaterHeaterType+" Usage", true, false)
	}
	if in.RenewableType != SelectionNone && in.RenewableType != "" {
		v.requireNumber(in.RenewableKWhGen, "kWh Generated", true, false)
	}
	return v.messages
}

// Validate checks the travel submission. Mode-specific selections are only
// required for the chosen mode.
func (in *TravelInput) Validate() []string {
	var v violations
	v.requireSelection(in.Mode, "Mode")
	v.requireSelection(in.Distance, "Distance")
	v.requireNumber(in.Distance, "Distance", false, false)
	v.requireSelection(string(in.Period), "Period/Frequency")

	switch in.Mode {
	case ModeCar:
		v.requireSelection(in.CarFuel, "Car Fuel")
	case ModeRideshare:
		v.requireSelection(in.RideshareFuel, "Rideshare Fuel")
		v.requireSelection(in.RidesharePassengers, "Passengers")
		v.requireNumber(in.RidesharePassengers, "Passengers", false, true)
	case ModeAirTravel:
		v.requireSelection(in.FlightType, "Flight Type")
		v.requireSelection(in.FlightCabin, "Cabin")
	}
	return v.messages
}

// Validate checks the food submission: at least one food amount must be
// reported, and every reported amount must be a valid number.
func (in *FoodInput) Validate() []string {
	var v violations
	v.requireSelection(string(in.ConsumptionPeriod), "Consumption Period")
	v.requireSelection(in.Region, "Region")

	amounts := in.amounts()
	hasAmount := false
	for _, amount := range amounts {
		if floatOrZero(amount) > 0 {
			hasAmount = true
			break
		}
	}
	if !hasAmount {
		v.messages = append(v.messages, "Enter amount for at least one food category.")
		return v.messages
	}
	for _, field := range sortedKeys(amounts) {
		v.requireNumber(amounts[field], foodFieldLabels[field], true, false)
	}
	return v.messages
}

// Validate checks the goods & waste submission: at least one of the
// spending or waste groups must be present, and group-specific fields are
// only required when their group is.
func (in *GoodsWasteInput) Validate() []string {
	var v violations

	spending := in.spending()
	hasSpend := false
	for _, amount := range spending {
		if floatOrZero(amount) > 0 {
			hasSpend = true
			break
		}
	}
	hasWaste := floatOrZero(in.WasteKg) > 0

	if !hasSpend && !hasWaste {
		v.messages = append(v.messages, "Enter Spending or Waste details.")
		return v.messages
	}

	v.requireSelection(in.AreaType, "Area Type")
	if hasSpend {
		v.requireSelection(string(in.SpendingPeriod), "Spending Period")
	}
	for _, field := range sortedKeys(spending) {
		v.requireNumber(spending[field], spendingFieldLabels[field], true, false)
	}
	if hasWaste {
		v.requireNumber(in.WasteKg, "Waste Amount", false, false)
		v.requireSelection(string(in.WastePeriod), "Waste Period")
		v.requireSelection(in.WasteDisposal, "Disposal Method")
	}
	return v.messages
}

// Validate checks the services submission: dry cleaning or landscaping must
// be reported, with periods required per reported sub-section.
func (in *ServicesInput) Validate() []string {
	var v violations

	hasDryCleaning := floatOrZero(in.DryCleaningKg) > 0
	hasLandscaping := floatOrZero(in.LandscapingM2) > 0

	if !hasDryCleaning && !hasLandscaping {
		v.messages = append(v.messages, "Enter details for Dry Cleaning or Landscaping.")
		return v.messages
	}

	v.requireSelection(in.AreaType, "Area Type")
	if hasDryCleaning {
		v.requireNumber(in.DryCleaningKg, "Dry Cleaning Amount", false, false)
		v.requireSelection(string(in.DryCleaningPeriod), "DC Period")
	}
	if hasLandscaping {
		v.requireNumber(in.LandscapingM2, "Landscaping Area", false, false)
		v.requireSelection(string(in.LandscapingPeriod), "LS Period")
	}
	return v.messages
}

// Validate checks the digital submission: at least one usage field must be
// non-zero, a data period is required once data usage is reported, and the
// grid region is always required.
func (in *DigitalInput) Validate() []string {
	var v violations

	usage := map[string]string{
		"Laptop Hours":    in.LaptopHours,
		"Mobile Hours":    in.MobileHours,
		"Tablet Hours":    in.TabletHours,
		"Streaming Hours": in.StreamingHours,
		"Gaming Hours":    in.GamingHours,
		"Data Usage Gb":   in.DataUsageGB,
	}
	hasUsage := false
	for _, amount := range usage {
		if floatOrZero(amount) > 0 {
			hasUsage = true
			break
		}
	}
	if !hasUsage {
		v.messages = append(v.messages, "Enter usage for at least one digital activity.")
	} else {
		for _, name := range sortedKeys(usage) {
			v.requireNumber(usage[name], name, true, false)
		}
	}

	if floatOrZero(in.DataUsageGB) > 0 {
		v.requireSelection(string(in.DataPeriod), "Data Period")
	}
	v.requireSelection(in.GridRegion, "Region (Grid)")
	return v.messages
}

// sortedKeys orders map keys so validation messages are deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
