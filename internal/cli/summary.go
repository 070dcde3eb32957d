package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ecohub/internal/activity"
	"github.com/rshade/ecohub/internal/carbon"
)

// NewSummaryCmd creates the summary command: per-category totals plus the
// overall count/total/average, formatted in the configured display unit.
func NewSummaryCmd() *cobra.Command {
	var unitOverride string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show footprint totals by category",
		Example: `  # Totals in the configured display unit
  ecohub summary

  # Totals as tree-year equivalents
  ecohub summary --unit "Trees (Absorbed CO2 per Year)"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := OpenSession()
			if err != nil {
				return err
			}
			if unitOverride != "" {
				session.Settings.DisplayUnit = unitOverride
			}

			records := session.Store.All()
			totals := activity.TotalsByCategory(records)

			cmd.Println("Category Summary")
			for _, cat := range carbon.Categories {
				cmd.Printf("  %-14s %s\n", cat.Name(), session.FormatFootprint(totals[cat]))
			}

			overall := activity.Overall(records)
			cmd.Printf("\nTotal: %s across %d entries", session.FormatFootprint(overall.TotalKg), overall.Count)
			cmd.Printf("\nAverage / Entry: %s\n", session.FormatFootprint(overall.AvgKg))
			return nil
		},
	}

	cmd.Flags().StringVar(&unitOverride, "unit", "", "Display unit override")

	return cmd
}
