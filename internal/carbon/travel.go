package carbon

import "github.com/rshade/ecohub/internal/factors"

// Travel modes and air travel selections.
const (
	ModeCar        = "Car"
	ModeMotorcycle = "Motorcycle"
	ModeBus        = "Bus"
	ModeTrain      = "Train"
	ModeSubway     = "Subway"
	ModeJeepney    = "Jeepney"
	ModeAirTravel  = "Air Travel"
	ModeRideshare  = "Rideshare"

	FuelGasoline = "Gasoline"
	FuelDiesel   = "Diesel"
	FuelElectric = "Electric"

	CabinEconomy  = "Economy"
	CabinBusiness = "Business"
	CabinFirst    = "First"
)

// privateVehicleFactorKeys maps a private-vehicle fuel type to its per-km
// factor. Car and Rideshare share these keys.
var privateVehicleFactorKeys = map[string]string{
	FuelGasoline: "trans_pv_gasoline_km",
	FuelDiesel:   "trans_pv_diesel_km",
	FuelElectric: "trans_pv_electric_km",
}

// publicModeFactorKeys maps public transport modes to fixed
// per-passenger-km factors.
var publicModeFactorKeys = map[string]string{
	ModeMotorcycle: "trans_pub_motorcycle_pkm",
	ModeBus:        "trans_pub_bus_pkm",
	ModeTrain:      "trans_pub_train_pkm",
	ModeSubway:     "trans_pub_subway_pkm",
	ModeJeepney:    "trans_pub_jeepney_pkm",
}

// TravelInput is a single travel activity: a distance covered by some mode,
// reported over a period. The single-trip footprint is computed first, then
// normalized to monthly; with the Per Trip period the trip value passes
// through as the monthly figure.
type TravelInput struct {
	Mode     string
	Distance string // km
	Period   Period

	CarFuel string // when Mode is Car

	RidesharePassengers string // when Mode is Rideshare; occupancy >= 1
	RideshareFuel       string

	FlightType  string // Short, Medium or Long (distance band)
	FlightCabin string // Economy, Business or First
}

func (in *TravelInput) Category() Category { return CategoryTravel }

// Estimate resolves the per-unit factor by mode, computes the single-trip
// footprint for the distance, and normalizes it to monthly.
func (in *TravelInput) Estimate(table *factors.Table) (float64, error) {
	distance := floatOrZero(in.Distance)

	factor := 0.0
	multiplier := 1.0
	occupancy := 1.0
	perPassengerKm := false

	switch in.Mode {
	case ModeCar:
		if key, ok := privateVehicleFactorKeys[in.CarFuel]; ok {
			factor = table.Lookup(key)
		}
	case ModeRideshare:
		if key, ok := privateVehicleFactorKeys[in.RideshareFuel]; ok {
			factor = table.Lookup(key)
		}
		if p := intOrZero(in.RidesharePassengers); p > 1 {
			occupancy = float64(p)
		}
	case ModeAirTravel:
		bandKey, ok := map[string]string{
			"Short":  "trans_air_short_pkm",
			"Medium": "trans_air_medium_pkm",
			"Long":   "trans_air_long_pkm",
		}[firstWord(in.FlightType)]
		if !ok {
			bandKey = "trans_air_medium_pkm"
		}
		factor = table.Lookup(bandKey)
		cabinKey, ok := map[string]string{
			CabinEconomy:  "trans_air_cabin_economy",
			CabinBusiness: "trans_air_cabin_business",
			CabinFirst:    "trans_air_cabin_first",
		}[in.FlightCabin]
		if !ok {
			cabinKey = "trans_air_cabin_economy"
		}
		multiplier = table.Lookup(cabinKey)
		perPassengerKm = true
	default:
		if key, ok := publicModeFactorKeys[in.Mode]; ok {
			factor = table.Lookup(key)
			perPassengerKm = true
		}
	}

	tripFootprint := distance * factor * multiplier
	if !perPassengerKm {
		tripFootprint /= occupancy
	}

	return finalize(NormalizeMonthly(tripFootprint, in.Period)), nil
}

// Details returns the raw submitted fields for the activity record.
func (in *TravelInput) Details() map[string]any {
	return map[string]any{
		"mode":                 in.Mode,
		"distance":             in.Distance,
		"period":               string(in.Period),
		"car_fuel_type":        in.CarFuel,
		"rideshare_fuel_type":  in.RideshareFuel,
		"rideshare_passengers": in.RidesharePassengers,
		"flight_type":          in.FlightType,
		"flight_cabin":         in.FlightCabin,
	}
}
