package factors

// defaultFactors maps factor identifiers to emission coefficients in
// kg CO2e per unit (kWh, km, passenger-km, kg, USD, m², therm, gallon,
// cord, GB or hour depending on the prefix group).
//
// Negative values are carbon savings (on-site renewables, recycling).
//
// Sources: Philippine national grid averages and the Gutierrez & Katsuya
// research compilation carried over from the original dataset.
var defaultFactors = map[string]float64{
	// Residential
	"res_elec_usage_ph_nat_avg_kwh": 0.6032,
	"res_heat_nat_gas_therm":        5.3,
	"res_heat_heating_oil_gallon":   1.01,
	"res_heat_propane_gallon":       0.863,
	"res_heat_wood_hardwood_cord":   2208.93,
	"res_heat_wood_softwood_cord":   2292.60,
	"res_water_elec_kwh":            0.6032,
	"res_water_gas_therm":           5.3,
	"res_water_solar_thermal_kwh":   0.041,
	"res_renew_solar_panels_kwh":    -0.041,
	"res_renew_wind_turbines_kwh":   -0.011,

	// Transportation
	"trans_pv_gasoline_km":      0.195,
	"trans_pv_diesel_km":        0.224,
	"trans_pv_electric_km":      0.104,
	"trans_pub_bus_pkm":         0.093,
	"trans_pub_train_pkm":       0.058,
	"trans_pub_subway_pkm":      0.031,
	"trans_pub_jeepney_pkm":     0.114,
	"trans_pub_motorcycle_pkm":  0.103,
	"trans_air_short_pkm":       0.251,
	"trans_air_medium_pkm":      0.209,
	"trans_air_long_pkm":        0.195,
	"trans_air_cabin_economy":   1.0,
	"trans_air_cabin_business":  3.0,
	"trans_air_cabin_first":     9.0,

	// Food production, transport, processing, packaging, farming
	"food_prod_beef_kg_kg":       60.0,
	"food_prod_lamb_kg_kg":       24.0,
	"food_prod_pork_kg_kg":       7.0,
	"food_prod_poultry_kg_kg":    6.0,
	"food_prod_seafood_kg_kg":    5.0,
	"food_prod_dairy_kg_kg":      3.0,
	"food_prod_eggs_kg_kg":       4.5,
	"food_prod_vegetables_kg_kg": 0.88,
	"food_prod_fruits_kg_kg":     0.46,
	"food_prod_grains_kg_kg":     1.4,
	"food_prod_legumes_kg_kg":    0.9,
	"food_miles_avg_km":          2400,
	"food_miles_truck_tkm":       0.07,
	"food_miles_train_tkm":       0.03,
	"food_miles_air_tkm":         1.5,
	"food_proc_meat_tonne":       0.3,
	"food_proc_bread_tonne":      8.0,
	"food_proc_sugar_tonne":      10.0,
	"food_proc_fats_tonne":       10.0,
	"food_proc_cereals_tonne":    1.0,
	"food_proc_animalfeed_tonne": 1.0,
	"food_proc_coffee_tonne":     0.55,
	"food_pack_paper_kg_kg":      1.25,
	"food_pack_plastic_kg_kg":    3.25,
	"food_pack_glass_kg_kg":      1.5,
	"food_pack_recycled_kg_kg":   3.0,
	"food_pack_steel_kg_kg":      3.0,
	"food_pack_biopolymer_kg_kg": 3.0,

	"food_farm_fertilizer_conventional_kgN": 2.98,
	"food_farm_fertilizer_organic_kgN":      2.4,
	"food_farm_avg_N_per_kg_crop":           0.02,
	"food_region_luzon_kg_crop":             0.5,
	"food_region_visayas_kg_crop":           0.55,
	"food_region_mindanao_kg_crop":          0.5,

	// Goods spending and waste disposal
	"spending_clothing_usd":    0.3,
	"spending_electronics_usd": 0.3,
	"spending_appliances_usd":  0.3,
	"spending_furniture_usd":   0.3,
	"spending_other_goods_usd": 0.3,

	"goods_region_urban_retail_mult": 1.6666667,
	"goods_region_rural_retail_mult": 1.3333333,

	"waste_landfill_low_ch4_kg_kg":      0.42,
	"waste_landfill_med_ch4_kg_kg":      1.90,
	"waste_landfill_high_ch4_kg_kg":     2.52,
	"waste_incineration_kg_kg":          1.20,
	"waste_region_urban_landfill_kg_kg": 1.90,
	"waste_region_rural_landfill_kg_kg": 1.40,
	"waste_recycle_paper_kg_kg":         -0.46,
	"waste_recycle_plastic_kg_kg":       -1.08,
	"waste_recycle_glass_kg_kg":         -0.31,
	"waste_recycle_aluminum_kg_kg":      -8.14,
	"waste_recycle_steel_kg_kg":         -0.86,
	"waste_recycle_copper_kg_kg":        -3.0,
	"waste_recycle_avg_mix_kg_kg":       -0.80,

	// Service industries
	"serv_drycleaning_base_kg_garment":         2.0,
	"serv_drycleaning_region_urban_kg_garment": 7.0,
	"serv_drycleaning_region_rural_kg_garment": 7.0,
	"serv_landscaping_base_m2":                 0.2,
	"serv_landscaping_region_urban_m2":         0.2,
	"serv_landscaping_region_rural_m2":         0.15,

	// Digital footprint
	"digital_grid_luzon_kwh":         0.85,
	"digital_grid_visayas_kwh":       0.85,
	"digital_grid_mindanao_kwh":      0.82,
	"digital_grid_default_kwh":       0.6032,
	"digital_datacenter_kwh_gb":      5.12,
	"digital_network_kwh_gb":         0.06,
	"digital_laptop_kwh_hour":        0.055 / 24.0,
	"digital_mobile_kwh_hour":        7.3 / (365.0 * 24.0),
	"digital_tablet_kwh_hour":        0.06 / 24.0,
	"digital_stream_low_kwh_hour":    0.1,
	"digital_stream_medium_kwh_hour": 0.2,
	"digital_stream_high_kwh_hour":   0.7,
	"digital_game_low_kwh_hour":      0.14,
	"digital_game_high_kwh_hour":     0.35,
}

// Defaults returns a fresh copy of the embedded default emission factors.
// Callers may mutate the returned map freely.
func Defaults() map[string]float64 {
	out := make(map[string]float64, len(defaultFactors))
	for id, v := range defaultFactors {
		out[id] = v
	}
	return out
}
