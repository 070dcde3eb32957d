package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ecohub/internal/factors"
)

// NewFactorsCmd creates the factors command for inspecting the effective
// emission factor table and exporting the defaults as an override template.
func NewFactorsCmd() *cobra.Command {
	var exportPath string
	var showValues bool

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Inspect or export the emission factor table",
		Long: `Shows the effective emission factor table: embedded defaults merged
with the user override file, where loaded values win per key.

With --export, writes the embedded defaults as an indented JSON document
that can be edited and placed in the data directory as an override file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if exportPath != "" {
				if err := factors.Export(factors.Defaults(), exportPath); err != nil {
					return err
				}
				cmd.Printf("Exported %d default factors to %s\n", len(factors.Defaults()), exportPath)
				return nil
			}

			session, err := OpenSession()
			if err != nil {
				return err
			}

			cmd.Printf("%d emission factors loaded\n", session.Factors.Len())
			if showValues {
				snapshot := session.Factors.Snapshot()
				for _, id := range session.Factors.IDs() {
					cmd.Printf("  %-42s %12.6f\n", id, snapshot[id])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Write default factors as JSON to this path")
	cmd.Flags().BoolVar(&showValues, "values", false, "List every factor id and value")

	return cmd
}
