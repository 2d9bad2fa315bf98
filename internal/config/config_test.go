package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/internal/config"
	"github.com/katalvlaran/pathsearch/weight"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, weight.KindImpassable, cfg.MissingPolicy().Kind())
}

func TestLoad_FileThenEnv(t *testing.T) {
	file := writeFile(t, "pathsearch.yaml", `
log:
  level: debug
  format: json
workers: 16
missing: "value:2.5"
metrics:
  enabled: true
  file: /tmp/pathsearch.prom
`)
	t.Setenv("PATHSEARCH_WORKERS", "32")

	cfg, err := config.Load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 32, cfg.Workers)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/pathsearch.prom", cfg.Metrics.File)
	assert.Equal(t, weight.KindValue, cfg.MissingPolicy().Kind())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"workers":      "workers: 0\n",
		"too many":     "workers: 1000\n",
		"level":        "log:\n  level: chatty\n",
		"format":       "log:\n  format: xml\n",
		"missing":      "missing: sometimes\n",
		"metrics file": "metrics:\n  enabled: true\n",
		"bad value":    "missing: \"value:x\"\n",
		"nan value":    "missing: \"value:nan\"\n",
		"inf value":    "missing: \"value:inf\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(viper.New(), writeFile(t, "c.yaml", body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("PATHSEARCH_LOG_FORMAT", "json")
	t.Setenv("PATHSEARCH_MISSING", "infinity")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, weight.KindInfinity, cfg.MissingPolicy().Kind())
}
