// Package cli wires the estimation engine into cobra commands: activity
// submission, summaries, and factor table inspection.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/rshade/ecohub/internal/activity"
	"github.com/rshade/ecohub/internal/config"
	"github.com/rshade/ecohub/internal/display"
	"github.com/rshade/ecohub/internal/factors"
)

// Session owns the per-invocation state the engine needs: the effective
// factor table (loaded once, read-only afterwards), the activity store,
// settings, and the display converter. It is passed explicitly into each
// command rather than living in globals.
type Session struct {
	Settings  config.Settings
	Factors   *factors.Table
	Store     *activity.Store
	Converter *display.FormatConverter
}

// OpenSession loads settings, initializes logging, builds the effective
// factor table and loads the activity store from the data directory.
func OpenSession() (*Session, error) {
	dataDir := config.DataDir()

	settings, err := config.LoadSettings(filepath.Join(dataDir, config.SettingsFileName))
	if err != nil {
		return nil, err
	}
	if err := config.InitLogger(settings.Logging); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	table := factors.Load(filepath.Join(dataDir, config.FactorsFileName), log.Logger)

	store := activity.NewStore(filepath.Join(dataDir, config.ActivitiesFileName), log.Logger)
	if err := store.Load(); err != nil {
		return nil, err
	}

	log.Debug().Int("factors", table.Len()).Int("activities", store.Len()).
		Msg("session opened")

	return &Session{
		Settings:  settings,
		Factors:   table,
		Store:     store,
		Converter: display.NewConverter(),
	}, nil
}

// FormatFootprint renders a kg CO2e value in the session's display unit.
func (s *Session) FormatFootprint(kgCO2e float64) string {
	formatted, err := s.Converter.Format(kgCO2e, s.Settings.Unit())
	if err != nil {
		log.Warn().Err(err).Msg("display conversion misconfigured, showing raw CO2e")
		return fmt.Sprintf("%.2f kg CO2e", kgCO2e)
	}
	return formatted
}
