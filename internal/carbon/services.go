package carbon

import "github.com/rshade/ecohub/internal/factors"

// ServicesInput is a service-industry activity: dry cleaning by garment
// weight and landscaping by maintained area. Either sub-section may be
// absent; each carries its own reporting period.
type ServicesInput struct {
	AreaType string // Urban, Rural or Unknown

	DryCleaningKg     string
	DryCleaningPeriod Period

	LandscapingM2     string
	LandscapingPeriod Period
}

func (in *ServicesInput) Category() Category { return CategoryServices }

// Estimate sums the dry-cleaning and landscaping monthly sub-totals, each
// using the region-specific factor for the area type when one exists, and
// the base factor otherwise.
func (in *ServicesInput) Estimate(table *factors.Table) (float64, error) {
	total := 0.0

	if kg := floatOrZero(in.DryCleaningKg); kg > 0 {
		monthlyKg := NormalizeMonthly(kg, in.DryCleaningPeriod.orMonthly())
		total += monthlyKg * regionalFactor(table,
			"serv_drycleaning_region_"+areaSuffix(in.AreaType)+"_kg_garment",
			"serv_drycleaning_base_kg_garment")
	}

	if m2 := floatOrZero(in.LandscapingM2); m2 > 0 {
		monthlyM2 := NormalizeMonthly(m2, in.LandscapingPeriod.orMonthly())
		total += monthlyM2 * regionalFactor(table,
			"serv_landscaping_region_"+areaSuffix(in.AreaType)+"_m2",
			"serv_landscaping_base_m2")
	}

	return finalize(total), nil
}

// regionalFactor looks up the region-specific factor, falling back to the
// base factor when the regional key is absent.
func regionalFactor(table *factors.Table, regionalKey, baseKey string) float64 {
	if table.Has(regionalKey) {
		return table.Lookup(regionalKey)
	}
	return table.Lookup(baseKey)
}

// areaSuffix lowercases an area type for factor key construction.
func areaSuffix(areaType string) string {
	switch areaType {
	case AreaUrban:
		return "urban"
	case AreaRural:
		return "rural"
	}
	return "unknown"
}

// Details returns the raw submitted fields for the activity record.
func (in *ServicesInput) Details() map[string]any {
	return map[string]any{
		"area_type_services":  in.AreaType,
		"dry_cleaning_kg":     in.DryCleaningKg,
		"dry_cleaning_period": string(in.DryCleaningPeriod),
		"landscaping_m2":      in.LandscapingM2,
		"landscaping_period":  string(in.LandscapingPeriod),
	}
}
