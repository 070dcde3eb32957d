// Command export-factors writes the embedded default emission factor table
// to a JSON file. The output is the starting point for a user-edited
// override file placed in the data directory.
//
// Usage: go run ./tools/export-factors [output-path]
package main

import (
	"fmt"
	"os"

	"github.com/rshade/ecohub/internal/config"
	"github.com/rshade/ecohub/internal/factors"
)

func main() {
	path := config.FactorsFileName
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	defaults := factors.Defaults()
	if err := factors.Export(defaults, path); err != nil {
		fmt.Fprintf(os.Stderr, "export-factors: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d factors to %s\n", len(defaults), path)
}
