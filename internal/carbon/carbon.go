// Package carbon estimates household carbon footprints from user-reported
// activity inputs. Each of the six activity categories has a typed input
// struct implementing Input; estimation normalizes reported quantities to a
// monthly basis, combines them with emission factors, and produces a single
// kg CO2e value per activity.
package carbon

import (
	"fmt"

	"github.com/rshade/ecohub/internal/factors"
)

// Category identifies one of the six footprint domains.
type Category string

const (
	CategoryResidential Category = "residential"
	CategoryTravel      Category = "travel"
	CategoryFood        Category = "food"
	CategoryGoodsWaste  Category = "shopping"
	CategoryServices    Category = "services"
	CategoryDigital     Category = "digital"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryResidential,
	CategoryTravel,
	CategoryFood,
	CategoryGoodsWaste,
	CategoryServices,
	CategoryDigital,
}

// Name returns the human-readable category name.
func (c Category) Name() string {
	switch c {
	case CategoryResidential:
		return "Residential"
	case CategoryTravel:
		return "Travel"
	case CategoryFood:
		return "Food"
	case CategoryGoodsWaste:
		return "Goods & Waste"
	case CategoryServices:
		return "Services"
	case CategoryDigital:
		return "Digital"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryResidential, CategoryTravel, CategoryFood,
		CategoryGoodsWaste, CategoryServices, CategoryDigital:
		return true
	}
	return false
}

// Input is a validated-then-estimated activity submission for one category.
//
// Numeric fields on implementations are strings exactly as collected from
// input; Validate reports violations on the raw values and estimation
// coerces blank or invalid numerics to zero.
type Input interface {
	// Category returns the category this input belongs to.
	Category() Category

	// Validate checks required fields and numeric domains, returning an
	// ordered list of human-readable violations. Empty means valid.
	Validate() []string

	// Estimate computes the monthly kg CO2e for this input using the given
	// factor table. The result is clamped to >= 0 and rounded to 3 decimals.
	Estimate(table *factors.Table) (float64, error)

	// Details returns the raw submitted fields, keyed by their canonical
	// field names, for storage on the activity record.
	Details() map[string]any
}

// Estimate runs an input's estimation with panic recovery, so an unexpected
// arithmetic or coercion failure surfaces as a CalculationError for the
// category instead of crashing the submission.
func Estimate(in Input, table *factors.Table) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = 0
			err = &CalculationError{
				Category: in.Category(),
				Cause:    fmt.Errorf("%v", r),
			}
		}
	}()
	return in.Estimate(table)
}
