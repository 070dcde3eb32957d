// Package config holds user settings and logger initialization. Settings
// are a small YAML document; absent keys keep their defaults, loaded values
// win for keys present in both.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ecohub/internal/display"
)

// Default file locations inside the data directory.
const (
	DefaultDataDir     = "EcoHubData"
	SettingsFileName   = "settings.yaml"
	FactorsFileName    = "emission_factors.json"
	ActivitiesFileName = "activities.json"
)

// LoggingSettings configures the zerolog logger.
type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Settings is the persisted per-user configuration.
type Settings struct {
	DisplayUnit string          `yaml:"display_unit"`
	Logging     LoggingSettings `yaml:"logging"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		DisplayUnit: string(display.UnitCO2e),
		Logging:     LoggingSettings{Level: "info"},
	}
}

// Unit returns the configured display unit, falling back to CO2e with a
// warning for unrecognized values.
func (s Settings) Unit() display.Unit {
	unit, ok := display.ParseUnit(s.DisplayUnit)
	if !ok && s.DisplayUnit != "" {
		log.Warn().Str("display_unit", s.DisplayUnit).
			Msg("unknown display unit in settings, using CO2e")
	}
	return unit
}

// LoadSettings reads the settings file at path, overlaying loaded values
// on the defaults. A missing file returns the defaults without error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if settings.Logging.Level == "" {
		settings.Logging.Level = "info"
	}
	return settings, nil
}

// SaveSettings writes the settings as YAML, creating the parent directory
// if needed.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshalling settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

// DataDir resolves the data directory, honoring ECOHUB_DATA_DIR.
func DataDir() string {
	if dir := os.Getenv("ECOHUB_DATA_DIR"); dir != "" {
		return dir
	}
	return DefaultDataDir
}
