package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/textrank/textrank"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := load("", env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, textrank.DefaultWindow, cfg.Extraction.Window)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
extraction:
  window: 3
  pos_tags: [NN]
  weighting: binary
  stopwords: [Foo, bar]
server:
  addr: "127.0.0.1:9000"
  read_timeout: 2s
log:
  level: debug
  file: /tmp/textrank.log
`)
	cfg, err := load(path, env(nil))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Extraction.Window)
	assert.Equal(t, []string{"NN"}, cfg.Extraction.POSTags)
	assert.Equal(t, textrank.WeightBinary, cfg.Extraction.Weighting)
	assert.Equal(t, []string{"Foo", "bar"}, cfg.Extraction.Stopwords)
	assert.Equal(t, textrank.DefaultDamping, cfg.Extraction.Damping, "unset keys keep defaults")
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/textrank.log", cfg.Log.File)
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	cfg, err := load(writeFile(t, ""), env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "extraction:\n  window: 3\n")
	cfg, err := load(path, env(map[string]string{
		"TEXTRANK_WINDOW":            "5",
		"TEXTRANK_DAMPING":           "0.5",
		"TEXTRANK_POS_TAGS":          "NN, VB ,",
		"TEXTRANK_DISABLE_STOPWORDS": "true",
		"TEXTRANK_ADDR":              ":9999",
		"TEXTRANK_SHUTDOWN_TIMEOUT":  "1m",
		"TEXTRANK_LOG_LEVEL":         "WARN",
		"TEXTRANK_MAX_ITERATIONS":    "",
	}))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Extraction.Window)
	assert.Equal(t, 0.5, cfg.Extraction.Damping)
	assert.Equal(t, []string{"NN", "VB"}, cfg.Extraction.POSTags)
	assert.True(t, cfg.Extraction.DisableStopwords)
	assert.Equal(t, textrank.DefaultMaxIterations, cfg.Extraction.MaxIterations)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, time.Minute, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		env  map[string]string
		want string
	}{
		{name: "unknown key", yaml: "extraction:\n  windw: 3\n", want: "config: parsing"},
		{name: "bad yaml", yaml: "extraction: [", want: "config: parsing"},
		{name: "bad env int", env: map[string]string{"TEXTRANK_WINDOW": "two"}, want: "config: TEXTRANK_WINDOW"},
		{name: "bad env duration", env: map[string]string{"TEXTRANK_READ_TIMEOUT": "soon"}, want: "config: TEXTRANK_READ_TIMEOUT"},
		{name: "server addr", yaml: "server:\n  addr: \"\"\n", want: "config: server.addr"},
		{name: "log level", env: map[string]string{"TEXTRANK_LOG_LEVEL": "loud"}, want: "config: log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := ""
			if tt.yaml != "" {
				path = writeFile(t, tt.yaml)
			}
			_, err := load(path, env(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadExtractionErrorKeepsType(t *testing.T) {
	t.Parallel()

	_, err := load("", env(map[string]string{"TEXTRANK_DAMPING": "1.5"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, textrank.ErrConfiguration)

	var ce *textrank.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "damping", ce.Field)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), env(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
