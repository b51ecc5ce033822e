package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.validate())

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultOutputDir, cfg.Paths.OutputDir)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.Upload.MaxBytes)
	assert.Equal(t, "none", cfg.Telemetry.TraceExporter)
	assert.True(t, cfg.Telemetry.MetricsEnabled)
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		env      map[string]string
		wantErr  string
		validate func(*testing.T, *Config)
	}{
		{
			name: "defaults without file or env",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "file overrides defaults",
			yaml: "server:\n  port: 9090\n  read_timeout: 5s\npaths:\n  output_dir: /tmp/out\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "/tmp/out", cfg.Paths.OutputDir)
				assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout, "keys absent from the file keep defaults")
			},
		},
		{
			name: "env overrides file",
			yaml: "server:\n  port: 9090\n",
			env: map[string]string{
				"ACCTFILTER_SERVER_PORT":              "7000",
				"ACCTFILTER_UPLOAD_MAX_BYTES":         "1024",
				"ACCTFILTER_SECURITY_ALLOWED_ORIGINS": "https://a.example,https://b.example",
				"ACCTFILTER_SECURITY_RATE_LIMIT_RPS":  "2.5",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7000, cfg.Server.Port)
				assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
				assert.Equal(t, int64(1024), cfg.Upload.MemoryBytes, "memory budget is capped by the upload limit")
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.AllowedOrigins)
				assert.Equal(t, 2.5, cfg.Security.RateLimit.RPS)
			},
		},
		{
			name:    "invalid port",
			env:     map[string]string{"ACCTFILTER_SERVER_PORT": "70000"},
			wantErr: "invalid server port",
		},
		{
			name:    "invalid logging output",
			yaml:    "logging:\n  output: syslog\n",
			wantErr: "invalid logging output",
		},
		{
			name:    "invalid trace exporter",
			env:     map[string]string{"ACCTFILTER_TELEMETRY_TRACE_EXPORTER": "jaeger"},
			wantErr: "invalid trace exporter",
		},
		{
			name:    "empty output dir",
			yaml:    "paths:\n  output_dir: \"\"\n",
			wantErr: "output directory",
		},
		{
			name:    "malformed env value",
			env:     map[string]string{"ACCTFILTER_SERVER_READ_TIMEOUT": "soon"},
			wantErr: "failed to load config from env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.yaml != "" {
				path = writeConfig(t, tt.yaml)
			}

			cfg, err := LoadFile(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestServerAddr(t *testing.T) {
	assert.Equal(t, ":8080", ServerConfig{Port: 8080}.Addr())
	assert.Equal(t, "127.0.0.1:9000", ServerConfig{Host: "127.0.0.1", Port: 9000}.Addr())
}

func TestResolvePaths(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.LogsDir = filepath.Join(base, "abs-logs")

	paths, err := cfg.ResolvePaths(base)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, DefaultOutputDir), paths.OutputDir)
	assert.Equal(t, filepath.Join(base, "abs-logs"), paths.LogsDir)
	assert.Equal(t, filepath.Join(base, DefaultOutputDir, "x.xlsx"), paths.OutputPath("x.xlsx"))

	require.NoError(t, paths.EnsureDirectories())
	assert.True(t, FileExists(paths.OutputDir))
	assert.True(t, FileExists(paths.LogsDir))
}
