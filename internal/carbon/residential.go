package carbon

import "github.com/rshade/ecohub/internal/factors"

// Heating fuel, water heater, and renewable selections. "None" disables the
// corresponding sub-section.
const (
	FuelNaturalGas = "Natural Gas"
	FuelHeatingOil = "Heating Oil"
	FuelPropane    = "Propane"
	FuelWood       = "Wood"

	WoodHardwood = "Hardwood"
	WoodSoftwood = "Softwood"

	WaterHeaterElectric   = "Electric"
	WaterHeaterNaturalGas = "Natural Gas"
	WaterHeaterSolar      = "Solar Thermal"

	RenewableSolarPanels  = "Solar Panels"
	RenewableWindTurbines = "Wind Turbines"

	SelectionNone = "None"
)

// ResidentialInput is a household energy activity: grid electricity, space
// heating, water heating, and on-site renewable generation. Each sub-section
// carries its own reporting period and is normalized to monthly
// independently before summing.
type ResidentialInput struct {
	ElectricityKWh    string
	ElectricityPeriod Period

	HeatingFuel   string // Natural Gas, Heating Oil, Propane, Wood or None
	HeatingWood   string // Hardwood or Softwood, when HeatingFuel is Wood
	HeatingAmount string // therms, gallons or cords depending on fuel
	HeatingPeriod Period

	WaterHeaterType  string // Electric, Natural Gas, Solar Thermal or None
	WaterUsageAmount string // kWh or therms depending on type
	WaterUsagePeriod Period

	RenewableType   string // Solar Panels, Wind Turbines or None
	RenewableKWhGen string
	RenewablePeriod Period
}

func (in *ResidentialInput) Category() Category { return CategoryResidential }

// Estimate sums the four monthly sub-totals. Renewable generation carries a
// negative factor and subtracts; the clamp to >= 0 happens only on the
// grand total.
func (in *ResidentialInput) Estimate(table *factors.Table) (float64, error) {
	total := 0.0

	monthlyElec := NormalizeMonthly(floatOrZero(in.ElectricityKWh), in.ElectricityPeriod.orMonthly())
	total += monthlyElec * table.Lookup("res_elec_usage_ph_nat_avg_kwh")

	monthlyHeat := NormalizeMonthly(floatOrZero(in.HeatingAmount), in.HeatingPeriod.orMonthly())
	if monthlyHeat > 0 && in.HeatingFuel != SelectionNone {
		if key := heatingFactorKey(in.HeatingFuel, in.HeatingWood); key != "" {
			total += monthlyHeat * table.Lookup(key)
		}
	}

	monthlyWater := NormalizeMonthly(floatOrZero(in.WaterUsageAmount), in.WaterUsagePeriod.orMonthly())
	if monthlyWater > 0 && in.WaterHeaterType != SelectionNone {
		if key := waterFactorKey(in.WaterHeaterType); key != "" {
			total += monthlyWater * table.Lookup(key)
		}
	}

	monthlyRenew := NormalizeMonthly(floatOrZero(in.RenewableKWhGen), in.RenewablePeriod.orMonthly())
	if monthlyRenew > 0 && in.RenewableType != SelectionNone && in.RenewableType != "" {
		key := "res_renew_solar_panels_kwh"
		if in.RenewableType == RenewableWindTurbines {
			key = "res_renew_wind_turbines_kwh"
		}
		total += monthlyRenew * table.Lookup(key) // factor is negative
	}

	return finalize(total), nil
}

// Details returns the raw submitted fields for the activity record.
func (in *ResidentialInput) Details() map[string]any {
	return map[string]any{
		"elec_kwh":           in.ElectricityKWh,
		"elec_period":        string(in.ElectricityPeriod),
		"heat_fuel_type":     in.HeatingFuel,
		"heat_wood_type":     in.HeatingWood,
		"heat_fuel_amount":   in.HeatingAmount,
		"heat_fuel_period":   string(in.HeatingPeriod),
		"water_heater_type":  in.WaterHeaterType,
		"water_usage_amount": in.WaterUsageAmount,
		"water_usage_period": string(in.WaterUsagePeriod),
		"renew_type":         in.RenewableType,
		"renew_kwh_gen":      in.RenewableKWhGen,
		"renew_period":       string(in.RenewablePeriod),
	}
}

func heatingFactorKey(fuel, wood string) string {
	switch fuel {
	case FuelNaturalGas:
		return "res_heat_nat_gas_therm"
	case FuelHeatingOil:
		return "res_heat_heating_oil_gallon"
	case FuelPropane:
		return "res_heat_propane_gallon"
	case FuelWood:
		if wood == WoodSoftwood {
			return "res_heat_wood_softwood_cord"
		}
		return "res_heat_wood_hardwood_cord"
	}
	return ""
}

func waterFactorKey(heaterType string) string {
	switch heaterType {
	case WaterHeaterElectric:
		return "res_water_elec_kwh"
	case WaterHeaterNaturalGas:
		return "res_water_gas_therm"
	case WaterHeaterSolar:
		return "res_water_solar_thermal_kwh"
	}
	return ""
}

// orMonthly substitutes the Monthly default for an unset period, matching
// the input forms' initial selection for optional sub-sections.
func (p Period) orMonthly() Period {
	if p == "" {
		return PeriodMonthly
	}
	return p
}
