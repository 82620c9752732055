// Package config holds runtime configuration for the staging model and
// its packaging edge.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stagekit/stagefs"
	"github.com/stagekit/stagefs/util"
)

// Config contains runtime configuration values for a staging session.
type Config struct {
	LogLvl             util.LogLevel       // Internal log level (Default info)
	DefaultPermissions stagefs.Permissions // Permissions applied to hydrated records without one (Default read-only)
	MaxPayloadSize     int64               // Per-file byte cap for batch imports; 0 disables the cap (Default 50MB)
	Compress           bool                // Whether archive entries are deflate-compressed (Default true)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions.
type ConfigOverride struct {
	// LogLvl is a verbosity value between 1 (error) and 5 (trace)
	LogLvl             *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	DefaultPermissions *string `yaml:"default_permissions,omitempty" json:"default_permissions,omitempty"`
	MaxPayloadSize     *int64  `yaml:"max_payload_size,omitempty" json:"max_payload_size,omitempty"`
	Compress           *bool   `yaml:"compress,omitempty" json:"compress,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:             DefaultLogLvl,
		DefaultPermissions: DefaultPermissions,
		MaxPayloadSize:     DefaultMaxPayloadSize,
		Compress:           DefaultCompress,
	}
}

// NewConfig creates a Config from defaults with any non-nil override
// fields applied. A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = verbosityToLevel(*override.LogLvl)
	}
	if override.DefaultPermissions != nil {
		c.DefaultPermissions = stagefs.Permissions(*override.DefaultPermissions)
	}
	if override.MaxPayloadSize != nil {
		c.MaxPayloadSize = *override.MaxPayloadSize
	}
	if override.Compress != nil {
		c.Compress = *override.Compress
	}
}

// verbosityToLevel maps the user-facing 1-5 verbosity scale onto internal
// log levels; out-of-range values clamp
func verbosityToLevel(verbose int) util.LogLevel {
	if verbose < ErrorVerbose {
		verbose = ErrorVerbose
	}
	if verbose > TraceVerbose {
		verbose = TraceVerbose
	}
	lvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return lvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
