package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// writeConfigFile writes YAML content to a temp file and returns its
// path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "httpscribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestLoadConfig tests loading settings from a YAML file.
func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
log_level: debug
max_dump_length: 64KB
history_size: 32
whitelist_request_headers:
  - Host
  - Accept
blacklist_response_headers:
  - Set-Cookie
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "64KB", cfg.MaxDumpLength)
	assert.Equal(t, int64(32), cfg.HistorySize)
	assert.Equal(t, []string{"Host", "Accept"}, cfg.WhitelistRequestHeaders)
	assert.Equal(t, []string{"Set-Cookie"}, cfg.BlacklistResponseHeaders)
}

// TestLoadConfig_MissingFile tests the error path for an absent file.
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// TestValidateConfig tests derived-field computation.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		LogLevel:      "debug",
		MaxDumpLength: "64KB",
		HistorySize:   16,
	}

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, uint64(64000), cfg.ParsedMaxDumpLength)
}

// TestValidateConfig_Defaults tests that an empty config validates with
// defaults applied.
func TestValidateConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
	assert.Equal(t, uint64(0), cfg.ParsedMaxDumpLength)
}

// TestValidateConfig_Errors tests the validation error paths.
func TestValidateConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      *Config
		expected error
	}{
		{
			name:     "unknown log level",
			cfg:      &Config{LogLevel: "loud"},
			expected: ErrUnknownLogLevel,
		},
		{
			name:     "negative history size",
			cfg:      &Config{LogLevel: "info", HistorySize: -1},
			expected: ErrInvalidHistorySize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, ValidateConfig(tt.cfg), tt.expected)
		})
	}
}

// TestValidateConfig_BadDumpLength tests the byte-size parse error path.
func TestValidateConfig_BadDumpLength(t *testing.T) {
	t.Parallel()

	cfg := &Config{LogLevel: "info", MaxDumpLength: "a lot"}

	assert.Error(t, ValidateConfig(cfg))
}

// TestTransportOptions tests the bridge into transport options.
func TestTransportOptions(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		WhitelistRequestHeaders:  []string{"Host"},
		BlacklistResponseHeaders: []string{"Set-Cookie"},
		LogLevel:                 "info",
		MaxDumpLength:            "1KB",
		HistorySize:              8,
	}
	require.NoError(t, ValidateConfig(cfg))

	opts := cfg.TransportOptions(nil)

	assert.Equal(t, []string{"Host"}, opts.WhitelistRequestHeaders)
	assert.Equal(t, []string{"Set-Cookie"}, opts.BlacklistResponseHeaders)
	assert.Equal(t, uint64(1000), opts.MaxDumpLength)
	assert.Equal(t, 8, opts.HistorySize)
}

// TestWriteDefaultConfig tests that the generated default file loads and
// validates.
func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, uint64(1000000), cfg.ParsedMaxDumpLength)
}
