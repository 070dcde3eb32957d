// Package display converts kg CO2e footprints into the user's preferred
// display unit: raw CO2e, tree-year absorption equivalents, or car-year
// emission equivalents.
package display

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit is a footprint display unit. The string values are the persisted
// setting values and the labels shown in unit selectors.
type Unit string

const (
	UnitCO2e  Unit = "CO2e"
	UnitTrees Unit = "Trees (Absorbed CO2 per Year)"
	UnitCars  Unit = "Cars (Emitted CO2 per Year)"
)

// Units lists the supported display units.
var Units = []Unit{UnitCO2e, UnitTrees, UnitCars}

// Equivalency constants.
const (
	// TreeAbsorptionKgPerYear is the average kg CO2 absorbed by one urban
	// tree per year.
	TreeAbsorptionKgPerYear = 21.7

	// CarEmissionsKgPerYear is the average annual kg CO2e emitted by a US
	// passenger vehicle (EPA).
	CarEmissionsKgPerYear = 4600.0

	// NearZeroThresholdKg is the magnitude below which a footprint formats
	// as zero in every unit, to avoid noisy tiny non-zero outputs.
	NearZeroThresholdKg = 0.001
)

// conversion divisors, overridable via NewConverterWith so a
// misconfigured zero divisor is testable.
type divisors struct {
	treeKgPerYear float64
	carKgPerYear  float64
}

// FormatConverter turns kg CO2e values into display strings: unit
// conversion plus locale-aware number formatting (grouped thousands). A
// zero equivalency divisor is reported as a configuration error rather
// than producing a division artifact.
type FormatConverter struct {
	div     divisors
	printer *message.Printer
}

// NewConverter returns a FormatConverter using the standard equivalency
// constants.
func NewConverter() *FormatConverter {
	return NewConverterWith(TreeAbsorptionKgPerYear, CarEmissionsKgPerYear)
}

// NewConverterWith returns a FormatConverter with explicit equivalency
// divisors.
func NewConverterWith(treeKgPerYear, carKgPerYear float64) *FormatConverter {
	return &FormatConverter{
		div:     divisors{treeKgPerYear: treeKgPerYear, carKgPerYear: carKgPerYear},
		printer: message.NewPrinter(language.English),
	}
}

// Convert returns the raw converted value for the unit. Near-zero inputs
// collapse to 0 for the equivalency units. A zero divisor returns
// ErrZeroConversionFactor.
func (c *FormatConverter) Convert(kgCO2e float64, unit Unit) (float64, error) {
	switch unit {
	case UnitTrees:
		if math.Abs(kgCO2e) < NearZeroThresholdKg {
			return 0, nil
		}
		if c.div.treeKgPerYear == 0 {
			return 0, ErrZeroConversionFactor
		}
		return kgCO2e / c.div.treeKgPerYear, nil
	case UnitCars:
		if math.Abs(kgCO2e) < NearZeroThresholdKg {
			return 0, nil
		}
		if c.div.carKgPerYear == 0 {
			return 0, ErrZeroConversionFactor
		}
		return kgCO2e / c.div.carKgPerYear, nil
	default:
		return kgCO2e, nil
	}
}

// Format converts kgCO2e into the unit and renders it with the unit's
// label and precision: CO2e always 2 decimals, trees 2 decimals at
// magnitude >= 0.1 and 3 below, cars always 4 decimals.
func (c *FormatConverter) Format(kgCO2e float64, unit Unit) (string, error) {
	value, err := c.Convert(kgCO2e, unit)
	if err != nil {
		return "", err
	}

	switch unit {
	case UnitTrees:
		if math.Abs(value) < 0.1 {
			return c.printer.Sprintf("%.3f Trees/yr", value), nil
		}
		return c.printer.Sprintf("%.2f Trees/yr", value), nil
	case UnitCars:
		return c.printer.Sprintf("%.4f Cars/yr", value), nil
	default:
		return c.printer.Sprintf("%.2f kg CO₂e", value), nil
	}
}

// ParseUnit maps a persisted setting value to a Unit, reporting whether it
// was recognized. Unrecognized values map to UnitCO2e.
func ParseUnit(s string) (Unit, bool) {
	for _, u := range Units {
		if string(u) == s {
			return u, true
		}
	}
	return UnitCO2e, false
}
