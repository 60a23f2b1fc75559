// Package config loads and validates the middleware configuration from a
// YAML file and bridges it into transport options.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/httpscribe"
	"github.com/oshokin/httpscribe/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// WhitelistRequestHeaders is the optional allow-list of request
	// header names; when set, only these survive into the loggable
	// request.
	WhitelistRequestHeaders []string `mapstructure:"whitelist_request_headers" yaml:"whitelist_request_headers,omitempty"`
	// BlacklistRequestHeaders lists request header names removed after
	// allow-listing.
	BlacklistRequestHeaders []string `mapstructure:"blacklist_request_headers" yaml:"blacklist_request_headers,omitempty"`
	// WhitelistResponseHeaders is the optional allow-list of response
	// header names.
	WhitelistResponseHeaders []string `mapstructure:"whitelist_response_headers" yaml:"whitelist_response_headers,omitempty"`
	// BlacklistResponseHeaders lists response header names removed after
	// allow-listing.
	BlacklistResponseHeaders []string `mapstructure:"blacklist_response_headers" yaml:"blacklist_response_headers,omitempty"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// MaxDumpLength sets the maximum size of raw request/response dumps
	// (e.g. "64KB", "1MB"). Empty or "0" disables dumps.
	MaxDumpLength string `mapstructure:"max_dump_length" yaml:"max_dump_length,omitempty"`
	// HistorySize is the number of recent exchanges to retain in memory.
	// Zero disables the history.
	HistorySize int64 `mapstructure:"history_size" yaml:"history_size,omitempty"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-" yaml:"-"`
	// ParsedMaxDumpLength is the parsed dump size limit in bytes.
	ParsedMaxDumpLength uint64 `mapstructure:"-" yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".httpscribe.yaml"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the mode used when writing config files.
	DefaultFilePermissions = 0o600
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidHistorySize indicates that the history size is negative.
	ErrInvalidHistorySize = errors.New("history_size must not be negative")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived
// fields.
func ValidateConfig(cfg *Config) error {
	logLevel := strings.TrimSpace(cfg.LogLevel)
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(logLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	maxDumpLength := strings.TrimSpace(cfg.MaxDumpLength)
	if maxDumpLength != "" && maxDumpLength != "0" {
		parsedMaxDumpLength, err := humanize.ParseBytes(maxDumpLength)
		if err != nil {
			return fmt.Errorf("failed to parse max dump length: %w", err)
		}

		cfg.ParsedMaxDumpLength = parsedMaxDumpLength
	}

	if cfg.HistorySize < 0 {
		return ErrInvalidHistorySize
	}

	return nil
}

// TransportOptions bridges the configuration into transport options with
// the given sink.
func (cfg *Config) TransportOptions(sink httpscribe.Sink) httpscribe.Options {
	return httpscribe.Options{
		Sink:                     sink,
		WhitelistRequestHeaders:  cfg.WhitelistRequestHeaders,
		BlacklistRequestHeaders:  cfg.BlacklistRequestHeaders,
		WhitelistResponseHeaders: cfg.WhitelistResponseHeaders,
		BlacklistResponseHeaders: cfg.BlacklistResponseHeaders,
		MaxDumpLength:            cfg.ParsedMaxDumpLength,
		HistorySize:              int(cfg.HistorySize),
	}
}

// WriteDefaultConfig writes a default configuration file to the given
// path, preserving field order via the yaml encoder.
func WriteDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	content, err := yaml.Marshal(&Config{
		LogLevel:      DefaultLogLevel,
		MaxDumpLength: "1MB",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err = os.WriteFile(path, content, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
