package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yankputra/SPK-AlatMusikKesenian/ahp"
	"github.com/yankputra/SPK-AlatMusikKesenian/decision"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Evaluate.Concurrency)
	assert.Equal(t, "geometric_mean", cfg.AHP.Method)
	assert.InDelta(t, 0.10, cfg.AHP.Threshold, 1e-12)
	assert.Equal(t, "vector", cfg.Decision.Normalization)
	assert.Equal(t, "en", cfg.Report.Locale)
	assert.Equal(t, "table", cfg.Report.Format)
	assert.Equal(t, "Criteria", cfg.Workbook.CriteriaSheet)
	assert.Equal(t, "AHP", cfg.Workbook.AHPSheet)
	assert.Equal(t, "Weights", cfg.Workbook.WeightsSheet)
	assert.Equal(t, "Dataset", cfg.Workbook.DatasetSheet)
	assert.Equal(t, ahp.GeometricMean, cfg.Method())
	assert.Equal(t, decision.Vector, cfg.Policy())
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
  format: console
server:
  port: 9090
ahp:
  method: eigenvector
decision:
  normalization: linear
workbook:
  dataset_sheet: Alternatif
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spk.yaml"), []byte(yaml), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ahp.Eigenvector, cfg.Method())
	assert.Equal(t, decision.Linear, cfg.Policy())
	assert.Equal(t, "Alternatif", cfg.Workbook.DatasetSheet)
	// Defaults still apply for unset values
	assert.Equal(t, "Criteria", cfg.Workbook.CriteriaSheet)
	assert.Equal(t, 4, cfg.Evaluate.Concurrency)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("evaluate:\n  concurrency: 2\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Evaluate.Concurrency)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spk.yaml"), []byte("server:\n  port: 9090\n"), 0644))

	t.Setenv("SPK_SERVER_PORT", "7070")
	t.Setenv("SPK_REPORT_LOCALE", "id")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "id", cfg.Report.Locale)
}

func TestLoadRejectsInvalid(t *testing.T) {
	for name, yaml := range map[string]string{
		"method":        "ahp:\n  method: fuzzy\n",
		"normalization": "decision:\n  normalization: zscore\n",
		"format":        "report:\n  format: html\n",
		"concurrency":   "evaluate:\n  concurrency: 0\n",
		"threshold":     "ahp:\n  threshold: -1\n",
		"threshold nan": "ahp:\n  threshold: NaN\n",
		"threshold inf": "ahp:\n  threshold: .inf\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := chdirTemp(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "spk.yaml"), []byte(yaml), 0644))
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsNonFiniteThresholdFromEnv(t *testing.T) {
	for _, v := range []string{"NaN", "+Inf"} {
		t.Run(v, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv("SPK_AHP_THRESHOLD", v)
			_, err := Load("")
			assert.ErrorContains(t, err, "ahp.threshold")
		})
	}
}

func TestInitLogger(t *testing.T) {
	orig := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(orig) })

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "json"}))
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))

	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
}
