package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/fsnode/internal/util"
	"gopkg.in/yaml.v3"
)

// Platform names understood by the filesystem factory
const (
	PlatformAuto   = "auto"   // drives on Windows, posix elsewhere
	PlatformPosix  = "posix"  // single native root
	PlatformDrives = "drives" // pseudo-root over drive letters
	PlatformMounts = "mounts" // pseudo-root over the configured mount table
)

// Verbosity levels as accepted on the command line and in override files.
// They map onto [util.LogLevel] in reverse order.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl          = util.InfoLevel
	DefaultPlatform        = PlatformAuto
	DefaultSeparator       = "/"
	DefaultCaseInsensitive = false
	DefaultShowHidden      = false
	DefaultAtomicWrites    = false

	// DefaultFsName is the FsName reported by the FUSE mirror
	DefaultFsName = "fsnode"
	// DefaultName is the mount Name reported by the FUSE mirror
	DefaultName = "fsnode"

	// DefaultAttrTimeout is the attribute cache timeout in seconds
	DefaultAttrTimeout = 1.0

	// DefaultEntryTimeout is the directory entry cache timeout in seconds
	DefaultEntryTimeout = 1.0
)

// Config contains runtime configuration values for the node filesystem.
type Config struct {
	MountOptions
	LogLvl          util.LogLevel  // Log level (Default info)
	Platform        string         // Platform variant, see Platform* (Default auto)
	Volumes         []VolumeConfig // Mount table for the mounts platform
	Separator       string         // Path separator for the mounts platform (Default "/")
	CaseInsensitive bool           // Case-insensitive name matching for the mounts platform (Default false)
	BaseDir         string         // Base for relative paths; "" uses the process working directory
	ShowHidden      bool           // Default hidden-entry policy for the CLI, browser and mirror (Default false)
	AtomicWrites    bool           // Write streams go through a temp file renamed on Close (Default false)

	AttrTimeout  float64 // FUSE attribute cache timeout in seconds (Default 1.0)
	EntryTimeout float64 // FUSE directory entry cache timeout in seconds (Default 1.0)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a verbosity between ErrorVerbose (1) and TraceVerbose (5)
	LogLvl          *int            `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Platform        *string         `yaml:"platform,omitempty" json:"platform,omitempty"`
	Volumes         *[]VolumeConfig `yaml:"volumes,omitempty" json:"volumes,omitempty"`
	Separator       *string         `yaml:"separator,omitempty" json:"separator,omitempty"`
	CaseInsensitive *bool           `yaml:"case_insensitive,omitempty" json:"case_insensitive,omitempty"`
	BaseDir         *string         `yaml:"base_dir,omitempty" json:"base_dir,omitempty"`
	ShowHidden      *bool           `yaml:"show_hidden,omitempty" json:"show_hidden,omitempty"`
	AtomicWrites    *bool           `yaml:"atomic_writes,omitempty" json:"atomic_writes,omitempty"`
	FsName          *string         `yaml:"fs_name,omitempty" json:"fs_name,omitempty"`
	Name            *string         `yaml:"name,omitempty" json:"name,omitempty"`
	Debug           *bool           `yaml:"fuse_debug,omitempty" json:"fuse_debug,omitempty"`
	AttrTimeout     *float64        `yaml:"attr_timeout,omitempty" json:"attr_timeout,omitempty"`
	EntryTimeout    *float64        `yaml:"entry_timeout,omitempty" json:"entry_timeout,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		MountOptions: MountOptions{
			FsName: DefaultFsName,
			Name:   DefaultName,
		},
		LogLvl:          DefaultLogLvl,
		Platform:        DefaultPlatform,
		Separator:       DefaultSeparator,
		CaseInsensitive: DefaultCaseInsensitive,
		ShowHidden:      DefaultShowHidden,
		AtomicWrites:    DefaultAtomicWrites,
		AttrTimeout:     DefaultAttrTimeout,
		EntryTimeout:    DefaultEntryTimeout,
	}
}

// NewConfig returns the defaults with override applied; override may be nil.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// VerbosityToLogLevel clamps v to [ErrorVerbose, TraceVerbose] and converts it.
func VerbosityToLogLevel(v int) util.LogLevel {
	v = max(ErrorVerbose, min(v, TraceVerbose))
	lvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return lvls[v-1]
}

// LogLevelToVerbosity is the inverse of VerbosityToLogLevel
func LogLevelToVerbosity(lvl util.LogLevel) int {
	switch lvl {
	case util.TraceLevel:
		return TraceVerbose
	case util.DebugLevel:
		return DebugVerbose
	case util.WarnLevel:
		return WarnVerbose
	case util.ErrorLevel:
		return ErrorVerbose
	default:
		return InfoVerbose
	}
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerbosityToLogLevel(*override.LogLvl)
	}
	if override.Platform != nil {
		c.Platform = strings.ToLower(*override.Platform)
	}
	if override.Volumes != nil {
		c.Volumes = append([]VolumeConfig(nil), (*override.Volumes)...)
	}
	if override.Separator != nil {
		c.Separator = *override.Separator
	}
	if override.CaseInsensitive != nil {
		c.CaseInsensitive = *override.CaseInsensitive
	}
	if override.BaseDir != nil {
		c.BaseDir = *override.BaseDir
	}
	if override.ShowHidden != nil {
		c.ShowHidden = *override.ShowHidden
	}
	if override.AtomicWrites != nil {
		c.AtomicWrites = *override.AtomicWrites
	}
	if override.FsName != nil {
		c.FsName = *override.FsName
	}
	if override.Name != nil {
		c.Name = *override.Name
	}
	if override.Debug != nil {
		c.Debug = *override.Debug
	}
	if override.AttrTimeout != nil {
		c.AttrTimeout = *override.AttrTimeout
	}
	if override.EntryTimeout != nil {
		c.EntryTimeout = *override.EntryTimeout
	}
}

// Validate checks values the factory cannot recover from
func (c *Config) Validate() error {
	if c.Platform == "" {
		return fmt.Errorf("platform is required")
	}
	if c.Separator != "/" && c.Separator != `\` {
		return fmt.Errorf("invalid separator %q: must be / or \\", c.Separator)
	}
	seen := make(map[string]bool, len(c.Volumes))
	for i, v := range c.Volumes {
		if v.Name == "" {
			return fmt.Errorf("volume %d: name is required", i)
		}
		if v.Name == "." || v.Name == ".." || strings.ContainsAny(v.Name, "/\\\x00") {
			return fmt.Errorf("volume %q: name must be a single path component", v.Name)
		}
		if v.Root == "" {
			return fmt.Errorf("volume %q: root is required", v.Name)
		}
		key := v.Name
		if c.CaseInsensitive {
			key = strings.ToLower(key)
		}
		if seen[key] {
			return fmt.Errorf("volume %q: duplicate name", v.Name)
		}
		seen[key] = true
	}
	return nil
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
