package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "energy", cfg.Mode)
	assert.Equal(t, int64(1000), cfg.Steps)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "run.yaml", `
mode: period
max_steps: 5000
timeout: 30s
bodies:
  - "<x=-1, y=0, z=2>"
  - "<x=2, y=-10, z=-7>"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "period", cfg.Mode)
	assert.Equal(t, int64(1000), cfg.Steps, "unset keys keep their defaults")
	assert.Equal(t, int64(5000), cfg.MaxSteps)
	assert.Len(t, cfg.Bodies, 2)

	sc, err := cfg.SimConfig()
	require.NoError(t, err)
	assert.Equal(t, sim.ModePeriod, sc.Mode)
	assert.Equal(t, 30*time.Second, sc.Timeout)
	assert.Equal(t, int64(5000), sc.MaxSteps)

	state, err := cfg.InitialState()
	require.NoError(t, err)
	assert.Equal(t, dynamo.NewBody(2, -10, -7), state[1])
}

func TestLoadGcfg(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "moons.txt", "<x=1, y=-4, z=3>\n<x=-14, y=9, z=-4>\n")
	path := writeFile(t, dir, "run.gcfg", `
[simulation]
mode = period
max-steps = 250
record = true
input = moons.txt
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "period", cfg.Mode)
	assert.Equal(t, int64(1000), cfg.Steps)
	assert.Equal(t, int64(250), cfg.MaxSteps)
	assert.True(t, cfg.Record)
	assert.Equal(t, filepath.Join(dir, "moons.txt"), cfg.Input)

	state, err := cfg.InitialState()
	require.NoError(t, err)
	assert.Equal(t, dynamo.State{dynamo.NewBody(1, -4, 3), dynamo.NewBody(-14, 9, -4)}, state)
}

func TestLoadGcfgMaxStepsSpelling(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dash.gcfg", "[simulation]\nmax-steps = 7\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.MaxSteps)

	path = writeFile(t, dir, "underscore.gcfg", "[simulation]\nmax_steps = 7\n")
	_, err = Load(path)
	assert.Error(t, err, "gcfg names cannot contain underscores")
}

func TestLoadGcfgInlineBodies(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.ini", `
[simulation]
steps = 10
body = "<x=-1, y=0, z=2>"
body = "<x=2, y=-10, z=-7>"
body = "<x=4, y=-8, z=8>"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(10), cfg.Steps)
	state, err := cfg.InitialState()
	require.NoError(t, err)
	assert.Len(t, state, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := GetPreset("example1")
	require.NotNil(t, cfg)

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown mode", Config{Mode: "orbit"}},
		{"negative steps", Config{Mode: "energy", Steps: -1}},
		{"negative max steps", Config{Mode: "period", MaxSteps: -1}},
		{"bad timeout", Config{Mode: "period", Timeout: "soon"}},
		{"negative timeout", Config{Mode: "period", Timeout: "-5s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.ErrorIs(t, err, dynamo.ErrInvalidConfig)
			_, err = tt.cfg.SimConfig()
			assert.Error(t, err)
		})
	}
}

func TestInitialStateWithoutSource(t *testing.T) {
	_, err := DefaultConfig().InitialState()
	assert.ErrorIs(t, err, dynamo.ErrInputUnavailable)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("canonical")
	require.NotNil(t, cfg)

	state, err := cfg.InitialState()
	require.NoError(t, err)
	assert.Equal(t, dynamo.NewBody(6, -9, -11), state[3])

	cfg.Bodies[0] = "<x=0, y=0, z=0>"
	assert.Equal(t, "<x=1, y=-4, z=3>", Presets["canonical"].Bodies[0], "presets must not be shared")
}

func TestGetPreset_NotFound(t *testing.T) {
	assert.Nil(t, GetPreset("nonexistent"))
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"canonical", "example1", "example2"}, ListPresets())
}
