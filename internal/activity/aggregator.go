package activity

import "github.com/rshade/ecohub/internal/carbon"

// Summary is the overall aggregation across a set of records.
type Summary struct {
	Count   int
	TotalKg float64
	AvgKg   float64
}

// TotalsByCategory sums the computed footprints per category. Records with
// an absent footprint are ignored; every known category appears in the
// result, at zero when nothing contributed.
func TotalsByCategory(records []Record) map[carbon.Category]float64 {
	totals := make(map[carbon.Category]float64, len(carbon.Categories))
	for _, cat := range carbon.Categories {
		totals[cat] = 0
	}
	for _, rec := range records {
		if rec.CarbonFootprint == nil {
			continue
		}
		if _, ok := totals[rec.Category]; !ok {
			continue
		}
		totals[rec.Category] += *rec.CarbonFootprint
	}
	return totals
}

// Overall aggregates count, total and average footprint across records.
// Records without a computed footprint still count as entries but
// contribute zero to the total. Zero records yields a zero average, not a
// division error.
func Overall(records []Record) Summary {
	sum := Summary{Count: len(records)}
	for _, rec := range records {
		if rec.CarbonFootprint == nil {
			continue
		}
		sum.TotalKg += *rec.CarbonFootprint
	}
	if sum.Count > 0 {
		sum.AvgKg = sum.TotalKg / float64(sum.Count)
	}
	return sum
}
