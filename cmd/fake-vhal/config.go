package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vhal-go/fakevhal/pkg/defaultconfig"
	"github.com/vhal-go/fakevhal/pkg/pool"
)

// Config holds the emulator configuration.
type Config struct {
	ConfigFile  string        `yaml:"-"`
	Properties  string        `yaml:"properties"`
	LogLevel    string        `yaml:"logLevel"`
	EventLog    string        `yaml:"eventLog"`
	Trace       bool          `yaml:"trace"`
	StateFile   string        `yaml:"state"`
	Reset       bool          `yaml:"-"`
	Simulate    bool          `yaml:"simulate"`
	SimInterval time.Duration `yaml:"simInterval"`
	PoolSize    int           `yaml:"poolSize"`
	Interactive bool          `yaml:"-"`
}

// DefaultConfig returns the configuration used when no flag or file
// overrides a setting.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		SimInterval: time.Second,
		PoolSize:    pool.DefaultMaxFree,
	}
}

// parseFlags builds the configuration from command-line args. Settings come
// from DefaultConfig, then the -config file, then flags given explicitly.
func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("fake-vhal", flag.ContinueOnError)

	flags := DefaultConfig()
	fs.StringVar(&flags.ConfigFile, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&flags.Properties, "props", "", "Property declarations file (YAML), merged over the built-in set")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&flags.EventLog, "event-log", "", "Record property events to this CBOR file")
	fs.BoolVar(&flags.Trace, "trace", false, "Log every property event at debug level")
	fs.StringVar(&flags.StateFile, "state", "", "Snapshot file: restored at start, saved on exit")
	fs.BoolVar(&flags.Reset, "reset", false, "Clear the snapshot file before starting")
	fs.BoolVar(&flags.Simulate, "simulate", false, "Enable simulation mode with synthetic driving data")
	fs.DurationVar(&flags.SimInterval, "sim-interval", flags.SimInterval, "Simulation step interval")
	fs.IntVar(&flags.PoolSize, "pool-size", flags.PoolSize, "Maximum recycled property values kept for reuse")
	fs.BoolVar(&flags.Interactive, "interactive", false, "Enable interactive command mode")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if flags.ConfigFile != "" {
		if err := loadConfigFile(flags.ConfigFile, &cfg); err != nil {
			return Config{}, err
		}
	}
	cfg.ConfigFile = flags.ConfigFile
	cfg.Reset = flags.Reset
	cfg.Interactive = flags.Interactive

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "props":
			cfg.Properties = flags.Properties
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "event-log":
			cfg.EventLog = flags.EventLog
		case "trace":
			cfg.Trace = flags.Trace
		case "state":
			cfg.StateFile = flags.StateFile
		case "simulate":
			cfg.Simulate = flags.Simulate
		case "sim-interval":
			cfg.SimInterval = flags.SimInterval
		case "pool-size":
			cfg.PoolSize = flags.PoolSize
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadConfigFile reads YAML settings from path into cfg. Only keys present in
// the file replace cfg's values; explicit flags are applied afterwards.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Simulate && c.SimInterval <= 0 {
		return fmt.Errorf("simulation interval must be positive, got %s", c.SimInterval)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("pool size must not be negative, got %d", c.PoolSize)
	}
	return nil
}

// declarations returns the built-in property declarations, overlaid with the
// properties file if one is configured.
func (c *Config) declarations() ([]defaultconfig.ConfigDeclaration, error) {
	base := defaultconfig.DefaultConfigs()
	if c.Properties == "" {
		return base, nil
	}
	extra, err := defaultconfig.LoadFile(c.Properties)
	if err != nil {
		return nil, err
	}
	return defaultconfig.Merge(base, extra), nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (debug, info, warn, error)", level)
	}
}
