package cli

import "github.com/spf13/cobra"

// NewRootCmd creates the ecohub root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecohub",
		Short: "Household carbon footprint tracker",
		Long: `EcoHub estimates a household's carbon footprint from reported
activities across six categories (Residential, Travel, Food, Goods & Waste,
Services, Digital), normalizes everything to a monthly basis, and aggregates
results for display in CO2e, tree-year or car-year equivalents.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewFactorsCmd())

	return cmd
}
