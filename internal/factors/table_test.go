package factors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	defaults := map[string]float64{"a": 1, "b": 2}
	overrides := map[string]float64{"b": 20, "c": 30}

	merged := Merge(defaults, overrides)

	assert.Equal(t, map[string]float64{"a": 1, "b": 20, "c": 30}, merged)
	assert.Equal(t, map[string]float64{"a": 1, "b": 2}, defaults, "defaults must not be mutated")
	assert.Equal(t, map[string]float64{"b": 20, "c": 30}, overrides, "overrides must not be mutated")
}

func TestTable_Lookup(t *testing.T) {
	table := New(map[string]float64{"known": 0.5}, zerolog.Nop())

	assert.InDelta(t, 0.5, table.Lookup("known"), 1e-9)
	assert.Zero(t, table.Lookup("unknown"), "missing factors substitute 0")
	assert.True(t, table.Has("known"))
	assert.False(t, table.Has("unknown"))
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	table := Load(filepath.Join(t.TempDir(), "no-such-file.json"), zerolog.Nop())
	assert.Equal(t, len(defaultFactors), table.Len())
	assert.InDelta(t, 0.6032, table.Lookup("res_elec_usage_ph_nat_avg_kwh"), 1e-9)
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	table := Load(path, zerolog.Nop())
	assert.Equal(t, len(defaultFactors), table.Len())
}

func TestLoad_OverridesWinPerKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.json")
	doc := []byte(`{"res_elec_usage_ph_nat_avg_kwh": 0.5, "custom_factor": 1.25}`)
	require.NoError(t, os.WriteFile(path, doc, 0600))

	table := Load(path, zerolog.Nop())

	assert.InDelta(t, 0.5, table.Lookup("res_elec_usage_ph_nat_avg_kwh"), 1e-9)
	assert.InDelta(t, 1.25, table.Lookup("custom_factor"), 1e-9)
	assert.InDelta(t, 0.195, table.Lookup("trans_pv_gasoline_km"), 1e-9, "untouched defaults survive")
	assert.Equal(t, len(defaultFactors)+1, table.Len())
}

func TestExport_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exported.json")
	require.NoError(t, Export(Defaults(), path))

	table := Load(path, zerolog.Nop())
	for id, want := range defaultFactors {
		assert.InDelta(t, want, table.Lookup(id), 1e-9, id)
	}
}

func TestDefaults_ReturnsACopy(t *testing.T) {
	first := Defaults()
	first["res_elec_usage_ph_nat_avg_kwh"] = 999

	assert.InDelta(t, 0.6032, Defaults()["res_elec_usage_ph_nat_avg_kwh"], 1e-9)
}
