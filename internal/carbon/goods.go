package carbon

import (
	"strings"

	"github.com/rshade/ecohub/internal/factors"
)

// Area types for retail and waste regional adjustments.
const (
	AreaUrban   = "Urban"
	AreaRural   = "Rural"
	AreaUnknown = "Unknown"
)

// Waste disposal selections are matched by substring: any selection
// containing "Recycling" or "Incineration" picks those paths, and landfill
// selections name their methane tier (Low/Medium/High).
const (
	DisposalRecycling    = "Recycling"
	DisposalIncineration = "Incineration"
)

// spendingFactorKeys maps each goods spending field to its per-USD factor.
var spendingFactorKeys = map[string]string{
	"clothing_spending":    "spending_clothing_usd",
	"electronics_spending": "spending_electronics_usd",
	"appliances_spending":  "spending_appliances_usd",
	"furniture_spending":   "spending_furniture_usd",
	"other_spending":       "spending_other_goods_usd",
}

// spendingFieldLabels are the validation message names for spending fields.
var spendingFieldLabels = map[string]string{
	"clothing_spending":    "Clothing Spending",
	"electronics_spending": "Electronics Spending",
	"appliances_spending":  "Appliances Spending",
	"furniture_spending":   "Furniture Spending",
	"other_spending":       "Other Goods Spending",
}

// landfillTierKeys maps methane tier names to base landfill factor keys.
var landfillTierKeys = map[string]string{
	"Low":    "waste_landfill_low_ch4_kg_kg",
	"Medium": "waste_landfill_med_ch4_kg_kg",
	"High":   "waste_landfill_high_ch4_kg_kg",
}

// GoodsWasteInput is a goods spending and household waste activity.
// Spending amounts are in Philippine pesos, converted to US dollars at the
// fixed rate before the per-dollar factors apply. Waste carries its own
// reporting period and disposal method.
type GoodsWasteInput struct {
	ClothingSpending    string
	ElectronicsSpending string
	AppliancesSpending  string
	FurnitureSpending   string
	OtherSpending       string

	SpendingPeriod Period
	AreaType       string // Urban, Rural or Unknown

	WasteKg       string
	WastePeriod   Period
	WasteDisposal string
}

func (in *GoodsWasteInput) Category() Category { return CategoryGoodsWaste }

func (in *GoodsWasteInput) spending() map[string]string {
	return map[string]string{
		"clothing_spending":    in.ClothingSpending,
		"electronics_spending": in.ElectronicsSpending,
		"appliances_spending":  in.AppliancesSpending,
		"furniture_spending":   in.FurnitureSpending,
		"other_spending":       in.OtherSpending,
	}
}

// Estimate computes the spending sub-total (currency-converted, factored,
// retail-multiplied, then normalized to monthly) plus the waste sub-total
// (monthly-normalized kg times the disposal factor).
func (in *GoodsWasteInput) Estimate(table *factors.Table) (float64, error) {
	spendingFootprint := 0.0
	for field, amount := range in.spending() {
		php := floatOrZero(amount)
		if php <= 0 {
			continue
		}
		usd := php / PHPToUSDRate
		spendingFootprint += usd * table.Lookup(spendingFactorKeys[field])
	}
	spendingFootprint *= in.retailMultiplier(table)
	monthlySpending := NormalizeMonthly(spendingFootprint, in.SpendingPeriod.orMonthly())

	monthlyWasteFootprint := 0.0
	if wasteKg := floatOrZero(in.WasteKg); wasteKg > 0 {
		wastePeriod := in.WastePeriod
		if wastePeriod == "" {
			wastePeriod = PeriodPerWeek
		}
		monthlyWasteKg := NormalizeMonthly(wasteKg, wastePeriod)
		monthlyWasteFootprint = monthlyWasteKg * in.wasteFactor(table)
	}

	return finalize(monthlySpending + monthlyWasteFootprint), nil
}

// retailMultiplier returns the area-type retail multiplier. Unknown area
// types apply no adjustment.
func (in *GoodsWasteInput) retailMultiplier(table *factors.Table) float64 {
	switch in.AreaType {
	case AreaUrban:
		return table.Lookup("goods_region_urban_retail_mult")
	case AreaRural:
		return table.Lookup("goods_region_rural_retail_mult")
	}
	return 1.0
}

// wasteFactor resolves the per-kg disposal factor. Recycling uses the
// average-mix saving factor (negative); incineration is a fixed factor;
// landfill picks the methane tier named in the selection (defaulting to
// Medium), overridden by the regional landfill factor when the area type
// is Urban or Rural.
func (in *GoodsWasteInput) wasteFactor(table *factors.Table) float64 {
	switch {
	case strings.Contains(in.WasteDisposal, DisposalRecycling):
		return table.Lookup("waste_recycle_avg_mix_kg_kg")
	case strings.Contains(in.WasteDisposal, DisposalIncineration):
		return table.Lookup("waste_incineration_kg_kg")
	}

	tierKey := landfillTierKeys["Medium"]
	for tier, key := range landfillTierKeys {
		if strings.Contains(in.WasteDisposal, tier) {
			tierKey = key
			break
		}
	}
	base := table.Lookup(tierKey)

	switch in.AreaType {
	case AreaUrban:
		if table.Has("waste_region_urban_landfill_kg_kg") {
			return table.Lookup("waste_region_urban_landfill_kg_kg")
		}
	case AreaRural:
		if table.Has("waste_region_rural_landfill_kg_kg") {
			return table.Lookup("waste_region_rural_landfill_kg_kg")
		}
	}
	return base
}

// Details returns the raw submitted fields for the activity record.
func (in *GoodsWasteInput) Details() map[string]any {
	details := map[string]any{
		"spending_period":  string(in.SpendingPeriod),
		"area_type_retail": in.AreaType,
		"waste_kg":         in.WasteKg,
		"waste_period":     string(in.WastePeriod),
		"waste_disposal":   in.WasteDisposal,
	}
	for field, amount := range in.spending() {
		details[field] = amount
	}
	return details
}
