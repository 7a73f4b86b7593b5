package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

graph:
  max_depth: 3
  max_cycles: 500
  report_cycles: 20
  sample_cycles: 3
  top_limit_max: 50

log:
  level: "debug"
  format: "text"
`

func TestLoad_EnvOnly_Defaults(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	_, err := Load()
	require.Error(t, err, "explicit CONFIG_PATH to a missing file must fail")

	t.Setenv("CONFIG_PATH", "")
	os.Unsetenv("CONFIG_PATH")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3, cfg.Graph.MaxDepth)
	assert.Equal(t, 10000, cfg.Graph.MaxCycles)
	assert.Equal(t, 20, cfg.Graph.ReportCycles)
	assert.Equal(t, 3, cfg.Graph.SampleCycles)
	assert.Equal(t, 50, cfg.Graph.TopLimitMax)
	assert.Equal(t, 1000, cfg.Seeder.BatchSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_YAMLFile(t *testing.T) {
	validEnv(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 500, cfg.Graph.MaxCycles)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	validEnv(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("GRAPH_MAX_CYCLES", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 42, cfg.Graph.MaxCycles)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Graph: GraphConfig{
				MaxDepth:     3,
				MaxCycles:    10000,
				ReportCycles: 20,
				SampleCycles: 3,
				TopLimitMax:  50,
			},
			Seeder: SeederConfig{BatchSize: 1000},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"zero depth", func(c *Config) { c.Graph.MaxDepth = 0 }, "max_depth"},
		{"zero cycle budget", func(c *Config) { c.Graph.MaxCycles = 0 }, "max_cycles"},
		{"zero report cap", func(c *Config) { c.Graph.ReportCycles = 0 }, "report_cycles"},
		{"sample above report", func(c *Config) { c.Graph.SampleCycles = 21 }, "sample_cycles"},
		{"zero top limit", func(c *Config) { c.Graph.TopLimitMax = 0 }, "top_limit_max"},
		{"zero batch size", func(c *Config) { c.Seeder.BatchSize = 0 }, "batch_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
