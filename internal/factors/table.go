// Package factors provides the emission factor table used by all category
// estimators: embedded defaults, an optional user-editable JSON override
// file, and a tolerant lookup that treats missing identifiers as zero.
package factors

import (
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Table is an effective emission factor table, loaded once per session and
// read-only thereafter. Lookups for unknown identifiers return 0 and emit a
// data-quality warning; they never abort a calculation.
type Table struct {
	values map[string]float64
	logger zerolog.Logger
}

// New creates a Table from the given factor map. The map is copied.
func New(values map[string]float64, logger zerolog.Logger) *Table {
	copied := make(map[string]float64, len(values))
	for id, v := range values {
		copied[id] = v
	}
	return &Table{values: copied, logger: logger}
}

// NewDefault creates a Table containing only the embedded defaults.
func NewDefault(logger zerolog.Logger) *Table {
	return New(defaultFactors, logger)
}

// Merge overlays overrides onto defaults and returns the effective map.
// Overrides win per key; defaults fill every gap. Neither input is mutated.
func Merge(defaults, overrides map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(defaults)+len(overrides))
	for id, v := range defaults {
		merged[id] = v
	}
	for id, v := range overrides {
		merged[id] = v
	}
	return merged
}

// Load builds the effective factor table from the JSON override document at
// path merged over the embedded defaults. A missing or unreadable file is
// not an error: the table falls back to defaults with a logged warning.
func Load(path string, logger zerolog.Logger) *Table {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).
				Msg("failed to read emission factor overrides, using defaults")
		}
		return NewDefault(logger)
	}

	var overrides map[string]float64
	if err := json.Unmarshal(data, &overrides); err != nil {
		logger.Warn().Err(err).Str("path", path).
			Msg("failed to parse emission factor overrides, using defaults")
		return NewDefault(logger)
	}

	logger.Debug().Int("overrides", len(overrides)).Str("path", path).
		Msg("loaded emission factor overrides")
	return New(Merge(defaultFactors, overrides), logger)
}

// Lookup returns the coefficient for the given factor identifier.
// Missing identifiers resolve to 0 with a warning naming the id.
func (t *Table) Lookup(id string) float64 {
	if v, ok := t.values[id]; ok {
		return v
	}
	t.logger.Warn().Str("factor_id", id).
		Msg("emission factor not found, substituting 0")
	return 0
}

// Has reports whether the table contains the given identifier.
func (t *Table) Has(id string) bool {
	_, ok := t.values[id]
	return ok
}

// Len returns the number of factors in the table.
func (t *Table) Len() int {
	return len(t.values)
}

// Snapshot returns a copy of the table contents.
func (t *Table) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(t.values))
	for id, v := range t.values {
		out[id] = v
	}
	return out
}

// IDs returns all factor identifiers in sorted order.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.values))
	for id := range t.values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Export writes the table contents as indented JSON, suitable as a starting
// point for a user-edited override file.
func Export(values map[string]float64, path string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling factor table: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing factor table to %s: %w", path, err)
	}
	return nil
}
