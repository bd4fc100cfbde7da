package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/roomrota/pkg/core/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roomrota_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_MinimalConfigUsesDefaults(t *testing.T) {
	path := writeConfig(t, "databaseURL: postgres://localhost/roomrota\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	settings := cfg.EngineSettings()
	assert.InDelta(t, 1.67, settings.Weights.Twin, 1e-9)
	assert.InDelta(t, 0.2, settings.Weights.Eco, 1e-9)
	assert.InDelta(t, 1.5, settings.BathCostNormal, 1e-9)
	assert.InDelta(t, 3.0, settings.BathCostWithDraining, 1e-9)
	assert.InDelta(t, 0.5, settings.SplitThreshold, 1e-9)
}

func TestLoadFromPath_OverridesApply(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/roomrota
pointWeights:
  twin: 1.5
  eco: 0.3
bathDutyCosts:
  withDraining: 4
splitThreshold: 0.25
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	settings := cfg.EngineSettings()
	assert.InDelta(t, 1.5, settings.Weights.Twin, 1e-9)
	assert.InDelta(t, 0.3, settings.Weights.Eco, 1e-9)
	assert.InDelta(t, 1.0, settings.Weights.Single, 1e-9, "untouched weights keep their defaults")
	assert.InDelta(t, 4.0, settings.BathCostWithDraining, 1e-9)
	assert.InDelta(t, 1.5, settings.BathCostNormal, 1e-9)
	assert.InDelta(t, 0.25, settings.SplitThreshold, 1e-9)
}

func TestLoadFromPath_MissingDatabaseURLFails(t *testing.T) {
	path := writeConfig(t, "splitThreshold: 0.5\n")

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidRRuleFails(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/roomrota
bathDutySchedule:
  - rrule: "NOT A RULE"
    type: normal
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidBathTypeFails(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/roomrota
bathDutySchedule:
  - rrule: "FREQ=WEEKLY;BYDAY=FR"
    type: sauna
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestBathTypeFor_MatchesScheduledDay(t *testing.T) {
	cfg := &Config{
		BathDutySchedule: []BathDutyRule{
			{RRule: "FREQ=WEEKLY;BYDAY=FR", Type: "with_draining"},
			{RRule: "FREQ=DAILY", Type: "normal"},
		},
	}

	// 2026-08-28 is a Friday: the first matching rule wins
	friday := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	bathType, err := cfg.BathTypeFor(friday)
	require.NoError(t, err)
	assert.Equal(t, model.BathWithDraining, bathType)

	// Any other day falls through to the daily rule
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	bathType, err = cfg.BathTypeFor(monday)
	require.NoError(t, err)
	assert.Equal(t, model.BathNormal, bathType)
}

func TestBathTypeFor_NoMatchMeansNoDuty(t *testing.T) {
	cfg := &Config{
		BathDutySchedule: []BathDutyRule{
			{RRule: "FREQ=WEEKLY;BYDAY=FR", Type: "normal"},
		},
	}

	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	bathType, err := cfg.BathTypeFor(monday)
	require.NoError(t, err)
	assert.Equal(t, model.BathNone, bathType)
}

func TestBathTypeFor_EmptyScheduleMeansNoDuty(t *testing.T) {
	cfg := &Config{}
	bathType, err := cfg.BathTypeFor(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, model.BathNone, bathType)
}
