package carbon

import "github.com/rshade/ecohub/internal/factors"

// digitalGridFactorKeys maps a grid region to its carbon intensity key.
// Unrecognized regions use the national default grid factor.
var digitalGridFactorKeys = map[string]string{
	"Luzon":    "digital_grid_luzon_kwh",
	"Visayas":  "digital_grid_visayas_kwh",
	"Mindanao": "digital_grid_mindanao_kwh",
}

// DigitalInput is a digital usage activity: daily device hours, streaming
// and gaming hours, and mobile data volume over a reporting period.
type DigitalInput struct {
	LaptopHours string // hours per day
	MobileHours string
	TabletHours string

	StreamingHours   string // hours per day
	StreamingQuality string // matched on first word: Low, Medium or High
	GamingHours      string // hours per day
	GamingType       string // matched on first word: Low or High demand

	DataUsageGB string
	DataPeriod  Period

	GridRegion string // Luzon, Visayas or Mindanao
}

func (in *DigitalInput) Category() Category { return CategoryDigital }

// Estimate converts daily device, streaming/gaming and data-transfer energy
// into a daily kWh total, multiplies by the regional grid factor for a
// daily CO2e, and scales to monthly.
func (in *DigitalInput) Estimate(table *factors.Table) (float64, error) {
	deviceKWh := floatOrZero(in.LaptopHours)*table.Lookup("digital_laptop_kwh_hour") +
		floatOrZero(in.MobileHours)*table.Lookup("digital_mobile_kwh_hour") +
		floatOrZero(in.TabletHours)*table.Lookup("digital_tablet_kwh_hour")

	streamKey, ok := map[string]string{
		"Low":  "digital_stream_low_kwh_hour",
		"High": "digital_stream_high_kwh_hour",
	}[firstWord(in.StreamingQuality)]
	if !ok {
		streamKey = "digital_stream_medium_kwh_hour"
	}
	gameKey := "digital_game_low_kwh_hour"
	if firstWord(in.GamingType) == "High" {
		gameKey = "digital_game_high_kwh_hour"
	}
	mediaKWh := floatOrZero(in.StreamingHours)*table.Lookup(streamKey) +
		floatOrZero(in.GamingHours)*table.Lookup(gameKey)

	dataPeriod := in.DataPeriod
	if dataPeriod == "" {
		dataPeriod = PeriodPerMonth
	}
	dailyDataGB := NormalizeMonthly(floatOrZero(in.DataUsageGB), dataPeriod) / DaysPerMonth
	dataKWh := dailyDataGB * (table.Lookup("digital_datacenter_kwh_gb") +
		table.Lookup("digital_network_kwh_gb"))

	gridFactor := regionalFactor(table,
		digitalGridFactorKeys[in.GridRegion], "digital_grid_default_kwh")

	dailyCO2e := (deviceKWh + mediaKWh + dataKWh) * gridFactor
	return finalize(dailyCO2e * DaysPerMonth), nil
}

// Details returns the raw submitted fields for the activity record.
func (in *DigitalInput) Details() map[string]any {
	return map[string]any{
		"laptop_hours":      in.LaptopHours,
		"mobile_hours":      in.MobileHours,
		"tablet_hours":      in.TabletHours,
		"streaming_hours":   in.StreamingHours,
		"streaming_quality": in.StreamingQuality,
		"gaming_hours":      in.GamingHours,
		"gaming_type":       in.GamingType,
		"data_usage_gb":     in.DataUsageGB,
		"data_period":       string(in.DataPeriod),
		"region_grid":       in.GridRegion,
	}
}
