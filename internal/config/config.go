package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dnguyen/tascan/internal/core"
	"github.com/spf13/viper"
)

type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Scan      ScanConfig      `mapstructure:"scan"`
	Collector CollectorConfig `mapstructure:"collector"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Watchlist []WatchItem     `mapstructure:"watchlist"`
}

type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// ScanConfig controls the batch scanner.
type ScanConfig struct {
	Workers     int   `mapstructure:"workers"`
	Offsets     []int `mapstructure:"offsets"`      // trading-day offsets, 0 or negative
	HistoryDays int   `mapstructure:"history_days"` // calendar days of history to fetch
}

type CollectorConfig struct {
	Provider string        `mapstructure:"provider"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// ArchiveConfig selects where scan reports are persisted.
type ArchiveConfig struct {
	Type string   `mapstructure:"type"` // "localfs" or "s3"
	Path string   `mapstructure:"path"` // For localfs
	S3   S3Config `mapstructure:"s3"`   // For S3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

type WatchItem struct {
	Symbol string `mapstructure:"symbol"`
	Name   string `mapstructure:"name"`
	Sector string `mapstructure:"sector"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Scan: ScanConfig{
			Workers:     4,
			Offsets:     []int{0, -1, -2},
			HistoryDays: 400,
		},
		Collector: CollectorConfig{
			Provider: "yahoo",
			Timeout:  10 * time.Second,
		},
		Archive: ArchiveConfig{
			Type: "localfs",
			Path: "data/reports",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Scan.Workers < 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("scan workers must be at least 1, got %d", c.Scan.Workers))
	}
	for _, offset := range c.Scan.Offsets {
		if offset > 0 {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("scan offset %d looks into the future", offset))
		}
	}
	if c.Scan.HistoryDays < 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("history_days must be positive, got %d", c.Scan.HistoryDays))
	}

	switch c.Collector.Provider {
	case "yahoo":
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown collector provider: %s", c.Collector.Provider))
	}

	switch c.Archive.Type {
	case "localfs":
		if c.Archive.Path == "" {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("archive path required for localfs"))
		}
	case "s3":
		if c.Archive.S3.Bucket == "" {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("s3 bucket required when archive type is s3"))
		}
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown archive type: %s", c.Archive.Type))
	}

	seen := map[string]bool{}
	for _, item := range c.Watchlist {
		if item.Symbol == "" {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("watchlist item missing symbol"))
		}
		if seen[item.Symbol] {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("duplicate watchlist symbol: %s", item.Symbol))
		}
		seen[item.Symbol] = true
	}

	return nil
}
