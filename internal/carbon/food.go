package carbon

import "github.com/rshade/ecohub/internal/factors"

// foodFactorKeys maps each food input field to the production factor keys
// behind it. Entries with two keys average the pair (beef/lamb,
// vegetables/fruits, grains/legumes share one input field each).
var foodFactorKeys = map[string][]string{
	"beef_kg":           {"food_prod_beef_kg_kg", "food_prod_lamb_kg_kg"},
	"pork_kg":           {"food_prod_pork_kg_kg"},
	"poultry_kg":        {"food_prod_poultry_kg_kg"},
	"seafood_kg":        {"food_prod_seafood_kg_kg"},
	"dairy_kg":          {"food_prod_dairy_kg_kg"},
	"eggs_kg":           {"food_prod_eggs_kg_kg"},
	"veg_fruit_kg":      {"food_prod_vegetables_kg_kg", "food_prod_fruits_kg_kg"},
	"grains_legumes_kg": {"food_prod_grains_kg_kg", "food_prod_legumes_kg_kg"},
}

// foodFieldLabels are the validation message names for each food field.
var foodFieldLabels = map[string]string{
	"beef_kg":           "Beef / Lamb",
	"pork_kg":           "Pork",
	"poultry_kg":        "Poultry",
	"seafood_kg":        "Fish & Seafood",
	"dairy_kg":          "Dairy",
	"eggs_kg":           "Eggs",
	"veg_fruit_kg":      "Vegetables & Fruits",
	"grains_legumes_kg": "Grains & Legumes",
}

// foodRegionFactorKeys maps a region selection to its additive per-kg
// factor key. Unrecognized regions contribute nothing.
var foodRegionFactorKeys = map[string]string{
	"Luzon":    "food_region_luzon_kg_crop",
	"Visayas":  "food_region_visayas_kg_crop",
	"Mindanao": "food_region_mindanao_kg_crop",
}

// FoodInput is a food consumption activity: kg amounts for eight food
// types over a common reporting period, plus qualitative adjustments for
// local sourcing, organic preference and packaging, and a regional term.
type FoodInput struct {
	BeefKg          string
	PorkKg          string
	PoultryKg       string
	SeafoodKg       string
	DairyKg         string
	EggsKg          string
	VegFruitKg      string
	GrainsLegumesKg string

	ConsumptionPeriod Period
	LocalSourcing     string // matched on first word: Low, Medium or High
	OrganicPreference bool
	PackagingLevel    string // matched on first word: Minimal, Average or Mostly
	Region            string // Luzon, Visayas or Mindanao
}

func (in *FoodInput) Category() Category { return CategoryFood }

func (in *FoodInput) amounts() map[string]string {
	return map[string]string{
		"beef_kg":           in.BeefKg,
		"pork_kg":           in.PorkKg,
		"poultry_kg":        in.PoultryKg,
		"seafood_kg":        in.SeafoodKg,
		"dairy_kg":          in.DairyKg,
		"eggs_kg":           in.EggsKg,
		"veg_fruit_kg":      in.VegFruitKg,
		"grains_legumes_kg": in.GrainsLegumesKg,
	}
}

// Estimate computes the monthly production footprint across the reported
// food types, applies the three multiplicative qualitative adjustments,
// then adds the regional per-kg term over the total monthly kilograms.
func (in *FoodInput) Estimate(table *factors.Table) (float64, error) {
	production := 0.0
	totalMonthlyKg := 0.0

	for field, amount := range in.amounts() {
		kg := floatOrZero(amount)
		if kg <= 0 {
			continue
		}
		monthlyKg := NormalizeMonthly(kg, in.ConsumptionPeriod)
		totalMonthlyKg += monthlyKg

		keys := foodFactorKeys[field]
		sum := 0.0
		for _, key := range keys {
			sum += table.Lookup(key)
		}
		production += monthlyKg * sum / float64(len(keys))
	}

	adjusted := production *
		in.localSourcingMultiplier() *
		in.fertilizerMultiplier(table) *
		in.packagingMultiplier()

	regional := 0.0
	if totalMonthlyKg > 0 {
		if key, ok := foodRegionFactorKeys[in.Region]; ok {
			regional = totalMonthlyKg * table.Lookup(key)
		}
	}

	return finalize(adjusted + regional), nil
}

func (in *FoodInput) localSourcingMultiplier() float64 {
	switch firstWord(in.LocalSourcing) {
	case "Low":
		return 1.05
	case "High":
		return 0.90
	default:
		return 1.0
	}
}

// fertilizerMultiplier discounts the footprint for organic preference by
// the ratio of the organic fertilizer factor to the conventional/organic
// average. Conventional consumption is the 1.0 baseline.
func (in *FoodInput) fertilizerMultiplier(table *factors.Table) float64 {
	if !in.OrganicPreference {
		return 1.0
	}
	conventional := table.Lookup("food_farm_fertilizer_conventional_kgN")
	organic := table.Lookup("food_farm_fertilizer_organic_kgN")
	base := (conventional + organic) / 2.0
	if base <= 0 {
		return 1.0
	}
	return organic / base
}

func (in *FoodInput) packagingMultiplier() float64 {
	switch firstWord(in.PackagingLevel) {
	case "Minimal":
		return 0.95
	case "Mostly":
		return 1.10
	default:
		return 1.0
	}
}

// Details returns the raw submitted fields for the activity record.
func (in *FoodInput) Details() map[string]any {
	details := map[string]any{
		"consumption_period": string(in.ConsumptionPeriod),
		"local_sourcing":     in.LocalSourcing,
		"organic_preference": in.OrganicPreference,
		"packaging_level":    in.PackagingLevel,
		"region":             in.Region,
	}
	for field, amount := range in.amounts() {
		details[field] = amount
	}
	return details
}
