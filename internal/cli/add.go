package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ecohub/internal/activity"
	"github.com/rshade/ecohub/internal/carbon"
)

// NewAddCmd creates the add command with one subcommand per category.
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new activity",
		Long: `Records one activity: the input is validated, its monthly kg CO2e
footprint estimated, and the record appended to the activity history.`,
	}

	cmd.AddCommand(newAddResidentialCmd())
	cmd.AddCommand(newAddTravelCmd())
	cmd.AddCommand(newAddFoodCmd())
	cmd.AddCommand(newAddGoodsCmd())
	cmd.AddCommand(newAddServicesCmd())
	cmd.AddCommand(newAddDigitalCmd())

	return cmd
}

// submit runs the shared validate → estimate → append pipeline. Validation
// failures are printed per field and block the submission; a calculation
// failure aborts it with the category named; nothing partial is persisted.
func submit(cmd *cobra.Command, in carbon.Input) error {
	session, err := OpenSession()
	if err != nil {
		return err
	}

	if messages := in.Validate(); len(messages) > 0 {
		cmd.PrintErrln("Please correct the following:")
		for _, msg := range messages {
			cmd.PrintErrln("  • " + msg)
		}
		return fmt.Errorf("%d validation error(s)", len(messages))
	}

	kgCO2e, err := carbon.Estimate(in, session.Factors)
	if err != nil {
		return err
	}

	rec := activity.NewRecord(in.Category(), in.Details(), kgCO2e)
	if err := session.Store.Append(rec); err != nil {
		return fmt.Errorf("saving activity: %w", err)
	}

	cmd.Printf("Added %s activity: %s/month\n",
		in.Category().Name(), session.FormatFootprint(kgCO2e))
	return nil
}

func newAddResidentialCmd() *cobra.Command {
	var in carbon.ResidentialInput
	var elecPeriod, heatPeriod, waterPeriod, renewPeriod string

	cmd := &cobra.Command{
		Use:   "residential",
		Short: "Record household energy use",
		Example: `  # 300 kWh on the monthly bill, nothing else
  ecohub add residential --elec-kwh 300 --elec-period Monthly`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.ElectricityPeriod = carbon.Period(elecPeriod)
			in.HeatingPeriod = carbon.Period(heatPeriod)
			in.WaterUsagePeriod = carbon.Period(waterPeriod)
			in.RenewablePeriod = carbon.Period(renewPeriod)
			return submit(cmd, &in)
		},
	}

	cmd.Flags().StringVar(&in.ElectricityKWh, "elec-kwh", "", "Electricity used (kWh)")
	cmd.Flags().StringVar(&elecPeriod, "elec-period", "Monthly", "Electricity billing period")
	cmd.Flags().StringVar(&in.HeatingFuel, "heat-fuel", "None", "Heating fuel (Natural Gas, Heating Oil, Propane, Wood, None)")
	cmd.Flags().StringVar(&in.HeatingWood, "heat-wood", "Hardwood", "Wood type when heating with wood (Hardwood, Softwood)")
	cmd.Flags().StringVar(&in.HeatingAmount, "heat-amount", "", "Heating fuel amount (therms, gallons or cords)")
	cmd.Flags().StringVar(&heatPeriod, "heat-period", "Monthly", "Heating fuel period")
	cmd.Flags().StringVar(&in.WaterHeaterType, "water-type", "None", "Water heater type (Electric, Natural Gas, Solar Thermal, None)")
	cmd.Flags().StringVar(&in.WaterUsageAmount, "water-amount", "", "Water heating usage (kWh or therms)")
	cmd.Flags().StringVar(&waterPeriod, "water-period", "Monthly", "Water heating period")
	cmd.Flags().StringVar(&in.RenewableType, "renew-type", "None", "On-site renewables (Solar Panels, Wind Turbines, None)")
	cmd.Flags().StringVar(&in.RenewableKWhGen, "renew-kwh", "", "Renewable generation (kWh)")
	cmd.Flags().StringVar(&renewPeriod, "renew-period", "Monthly", "Renewable generation period")

	return cmd
}

func newAddTravelCmd() *cobra.Command {
	var in carbon.TravelInput
	var period string

	cmd := &cobra.Command{
		Use:   "travel",
		Short: "Record a trip or recurring travel",
		Example: `  # A 50 km gasoline car trip
  ecohub add travel --mode Car --fuel Gasoline --distance 50 --period "Per Trip"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Period = carbon.Period(period)
			return submit(cmd, &in)
		},
	}

	cmd.Flags().StringVar(&in.Mode, "mode", "", "Travel mode (Car, Motorcycle, Bus, Train, Subway, Jeepney, Air Travel, Rideshare)")
	cmd.Flags().StringVar(&in.Distance, "distance", "", "Distance (km)")
	cmd.Flags().StringVar(&period, "period", "Per Trip", "Period the distance covers")
	cmd.Flags().StringVar(&in.CarFuel, "fuel", "", "Car fuel type (Gasoline, Diesel, Electric)")
	cmd.Flags().StringVar(&in.RideshareFuel, "rideshare-fuel", "", "Rideshare vehicle fuel type")
	cmd.Flags().StringVar(&in.RidesharePassengers, "passengers", "", "Rideshare passenger count")
	cmd.Flags().StringVar(&in.FlightType, "flight-type", "", "Flight distance band (Short, Medium, Long)")
	cmd.Flags().StringVar(&in.FlightCabin, "cabin", "", "Flight cabin class (Economy, Business, First)")

	return cmd
}

func newAddFoodCmd() *cobra.Command {
	var in carbon.FoodInput
	var period string

	cmd := &cobra.Command{
		Use:   "food",
		Short: "Record food consumption",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.ConsumptionPeriod = carbon.Period(period)
			return submit(cmd, &in)
		},
	}

	cmd.Flags().StringVar(&in.BeefKg, "beef-kg", "", "Beef / lamb (kg)")
	cmd.Flags().StringVar(&in.PorkKg, "pork-kg", "", "Pork (kg)")
	cmd.Flags().StringVar(&in.PoultryKg, "poultry-kg", "", "Poultry (kg)")
	cmd.Flags().StringVar(&in.SeafoodKg, "seafood-kg", "", "Fish & seafood (kg)")
	cmd.Flags().StringVar(&in.DairyKg, "dairy-kg", "", "Dairy (kg)")
	cmd.Flags().StringVar(&in.EggsKg, "eggs-kg", "", "Eggs (kg)")
	cmd.Flags().StringVar(&in.VegFruitKg, "veg-fruit-kg", "", "Vegetables & fruits (kg)")
	cmd.Flags().StringVar(&in.GrainsLegumesKg, "grains-legumes-kg", "", "Grains & legumes (kg)")
	cmd.Flags().StringVar(&period, "period", "Per Week", "Consumption period")
	cmd.Flags().StringVar(&in.LocalSourcing, "local-sourcing", "Medium", "Local sourcing tier (Low, Medium, High)")
	cmd.Flags().BoolVar(&in.OrganicPreference, "organic", false, "Prefer organic produce")
	cmd.Flags().StringVar(&in.PackagingLevel, "packaging", "Average Mix", "Packaging level (Minimal, Average Mix, Mostly Packaged)")
	cmd.Flags().StringVar(&in.Region, "region", "", "Region (Luzon, Visayas, Mindanao)")

	return cmd
}

func newAddGoodsCmd() *cobra.Command {
	var in carbon.GoodsWasteInput
	var spendingPeriod, wastePeriod string

	cmd := &cobra.Command{
		Use:   "goods",
		Short: "Record goods spending and household waste",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.SpendingPeriod = carbon.Period(spendingPeriod)
			in.WastePeriod = carbon.Period(wastePeriod)
			return submit(cmd, &in)
		},
	}

	cmd.Flags().StringVar(&in.ClothingSpending, "clothing", "", "Clothing spending (PHP)")
	cmd.Flags().StringVar(&in.ElectronicsSpending, "electronics", "", "Electronics spending (PHP)")
	cmd.Flags().StringVar(&in.AppliancesSpending, "appliances", "", "Appliances spending (PHP)")
	cmd.Flags().StringVar(&in.FurnitureSpending, "furniture", "", "Furniture spending (PHP)")
	cmd.Flags().StringVar(&in.OtherSpending, "other", "", "Other goods spending (PHP)")
	cmd.Flags().StringVar(&spendingPeriod, "spending-period", "Monthly", "Spending period")
	cmd.Flags().StringVar(&in.AreaType, "area-type", "", "Area type (Urban, Rural, Unknown)")
	cmd.Flags().StringVar(&in.WasteKg, "waste-kg", "", "Waste amount (kg)")
	cmd.Flags().StringVar(&wastePeriod, "waste-period", "Per Week", "Waste period")
	cmd.Flags().StringVar(&in.WasteDisposal, "disposal", "", "Disposal method (Recycling, Incineration, Landfill Low/Medium/High Methane)")

	return cmd
}

func newAddServicesCmd() *cobra.Command {
	var in carbon.ServicesInput
	var dcPeriod, lsPeriod string

	cmd := &cobra.Command{
		Use:   "services",
		Short: "Record service-industry usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.DryCleaningPeriod = carbon.Period(dcPeriod)
			in.LandscapingPeriod = carbon.Period(lsPeriod)
			return submit(cmd, &in)
		},
	}

	cmd.Flags().StringVar(&in.AreaType, "area-type", "", "Area type (Urban, Rural, Unknown)")
	cmd.Flags().StringVar(&in.DryCleaningKg, "dry-cleaning-kg", "", "Dry cleaning (kg of garments)")
	cmd.Flags().StringVar(&dcPeriod, "dry-cleaning-period", "Per Month", "Dry cleaning period")
	cmd.Flags().StringVar(&in.LandscapingM2, "landscaping-m2", "", "Landscaped area (m²)")
	cmd.Flags().StringVar(&lsPeriod, "landscaping-period", "Per Month", "Landscaping period")

	return cmd
}

func newAddDigitalCmd() *cobra.Command {
	var in carbon.DigitalInput
	var dataPeriod string

	cmd := &cobra.Command{
		Use:   "digital",
		Short: "Record digital usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.DataPeriod = carbon.Period(dataPeriod)
			return submit(cmd, &in)
		},
	}

	cmd.Flags().StringVar(&in.LaptopHours, "laptop-hours", "", "Laptop use (hours/day)")
	cmd.Flags().StringVar(&in.MobileHours, "mobile-hours", "", "Mobile use (hours/day)")
	cmd.Flags().StringVar(&in.TabletHours, "tablet-hours", "", "Tablet use (hours/day)")
	cmd.Flags().StringVar(&in.StreamingHours, "streaming-hours", "", "Streaming (hours/day)")
	cmd.Flags().StringVar(&in.StreamingQuality, "streaming-quality", "Medium", "Streaming quality (Low, Medium, High)")
	cmd.Flags().StringVar(&in.GamingHours, "gaming-hours", "", "Gaming (hours/day)")
	cmd.Flags().StringVar(&in.GamingType, "gaming-type", "Low", "Gaming demand (Low, High)")
	cmd.Flags().StringVar(&in.DataUsageGB, "data-gb", "", "Mobile data volume (GB)")
	cmd.Flags().StringVar(&dataPeriod, "data-period", "Per Month", "Data volume period")
	cmd.Flags().StringVar(&in.GridRegion, "region", "", "Grid region (Luzon, Visayas, Mindanao)")

	return cmd
}
