package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validConfigYAML = `
debug_logging: true
output_dir: /tmp/inbeef-reports
logo_path: branding/logo.png
server:
  addr: "127.0.0.1:9090"
  read_timeout: 3s
report:
  compress: false
defaults:
  days: 60
  live_price_per_kg: 11.5
  animal_count: 250
`

var invalidConfigJSON = `{
    "server": {"addr": "", "read_timeout": "-1s"},
    "defaults": {"days": 0}
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:    "Valid yaml config",
			file:    "config.yaml",
			content: validConfigYAML,
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.DebugLogging)
				assert.Equal(t, "/tmp/inbeef-reports", cfg.OutputDir)
				assert.Equal(t, "branding/logo.png", cfg.LogoPath)
				assert.Equal(t, DefaultStylesheetPath, cfg.StylesheetPath)
				assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
				assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
				assert.False(t, cfg.Report.Compress)
				assert.Equal(t, 60, cfg.Defaults.Days)
				assert.Equal(t, 11.5, cfg.Defaults.LivePricePerKg)
				assert.Equal(t, 250, cfg.Defaults.AnimalCount)
				assert.Equal(t, 0.01, cfg.Defaults.InbeefPricePerKg)
			},
		},
		{
			name:    "Invalid config - empty required fields",
			file:    "config.json",
			content: invalidConfigJSON,
			wantErr: true,
		},
		{
			name:    "Malformed file",
			file:    "config.json",
			content: "{not json",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.True(t, cfg.Report.Compress)
	assert.False(t, cfg.LogCompress)
	assert.Equal(t, simulation.DefaultInput(), cfg.Defaults)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("INBEEF_SERVER_ADDR", ":7000")
	t.Setenv("INBEEF_DEFAULTS_DAYS", "90")
	t.Setenv("INBEEF_DEBUG_LOGGING", "true")
	t.Setenv("INBEEF_LOG_COMPRESS", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, 90, cfg.Defaults.Days)
	assert.True(t, cfg.DebugLogging)
	assert.True(t, cfg.LogCompress)
}

func TestSampleConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "configs", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default().Server, cfg.Server)
	assert.Equal(t, simulation.DefaultInput(), cfg.Defaults)
	assert.True(t, cfg.Report.Compress)
	assert.True(t, cfg.LogCompress)
}
