package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestNewConfig_WithNilOverride tests that NewConfig creates a config with all default values
// when no override is provided.
func TestNewConfig_WithNilOverride(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(nil)

	require.NotNil(t, cfg)
	assert.Equal(t, createDefaultCfg(), cfg, "must use default values when no config provided")
}

// TestNewConfig_WithAllOverride tests that NewConfig properly applies every override.
func TestNewConfig_WithAllOverride(t *testing.T) {
	t.Parallel()

	override := createOverride()
	override.LogLvl = util.Pointer(TraceVerbose)
	cfg := NewConfig(override)

	expCfg := &Config{
		MountOptions: MountOptions{
			Debug:  true,
			FsName: "test_fs",
			Name:   "test_name",
		},
		LogLvl:          util.TraceLevel,
		Platform:        PlatformMounts,
		Volumes:         *override.Volumes,
		Separator:       `\`,
		CaseInsensitive: true,
		BaseDir:         "/srv/games",
		ShowHidden:      true,
		AtomicWrites:    true,
		AttrTimeout:     *override.AttrTimeout,
		EntryTimeout:    *override.EntryTimeout,
	}
	require.NotNil(t, cfg)
	assert.Equal(t, expCfg, cfg, "must override all provided fields")
}

func TestConfig_Merge_LogLvlConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		verboseValue  int
		expectedLevel util.LogLevel
	}{
		{"verbose_1_error", 1, util.ErrorLevel},
		{"verbose_2_warn", 2, util.WarnLevel},
		{"verbose_3_info", 3, util.InfoLevel},
		{"verbose_4_debug", 4, util.DebugLevel},
		{"verbose_5_trace", 5, util.TraceLevel},
		{"verbose_0_clamped_to_1", 0, util.ErrorLevel},
		{"verbose_100_clamped_to_5", 100, util.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			override := &ConfigOverride{
				LogLvl: util.Pointer(tt.verboseValue),
			}

			cfg := NewConfig(override)

			assert.Equal(t, tt.expectedLevel, cfg.LogLvl,
				"CLI verbose %d should map to util.LogLevel %v", tt.verboseValue, tt.expectedLevel)
			assert.Equal(t, cfg.LogLvl, VerbosityToLogLevel(LogLevelToVerbosity(cfg.LogLvl)))
		})
	}
}

func TestConfig_Merge_NilOverrideVals(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(&ConfigOverride{})

	require.NotNil(t, cfg)
	assert.Equal(t, createDefaultCfg(), cfg, "must use default values for nil override fields")
}

func TestConfig_Merge_PartialOverride(t *testing.T) {
	t.Parallel()

	override := &ConfigOverride{
		FsName:   util.Pointer("test_fs"),
		Platform: util.Pointer("POSIX"),
	}
	cfg := NewConfig(override)

	expCfg := createDefaultCfg()
	expCfg.FsName = "test_fs"
	expCfg.Platform = PlatformPosix

	require.NotNil(t, cfg)
	assert.Equal(t, expCfg, cfg, "must override all provided fields and leave rest default")
}

func TestConfig_Merge_VolumesAreCopied(t *testing.T) {
	t.Parallel()

	vols := []VolumeConfig{{Name: "A", Root: "/a"}}
	cfg := NewConfig(&ConfigOverride{Volumes: &vols})
	vols[0].Name = "changed"

	assert.Equal(t, "A", cfg.Volumes[0].Name, "config must not alias the override's slice")
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"bad separator", func(c *Config) { c.Separator = ":" }, "invalid separator"},
		{"empty platform", func(c *Config) { c.Platform = "" }, "platform is required"},
		{"volume without name", func(c *Config) {
			c.Volumes = []VolumeConfig{{Root: "/a"}}
		}, "name is required"},
		{"volume without root", func(c *Config) {
			c.Volumes = []VolumeConfig{{Name: "A"}}
		}, "root is required"},
		{"duplicate volume", func(c *Config) {
			c.Volumes = []VolumeConfig{{Name: "A", Root: "/a"}, {Name: "A", Root: "/b"}}
		}, "duplicate name"},
		{"duplicate volume case-insensitive", func(c *Config) {
			c.CaseInsensitive = true
			c.Volumes = []VolumeConfig{{Name: "a", Root: "/a"}, {Name: "A", Root: "/b"}}
		}, "duplicate name"},
		{"volume named dot-dot", func(c *Config) {
			c.Volumes = []VolumeConfig{{Name: "..", Root: "/a"}}
		}, "single path component"},
		{"volume named dot", func(c *Config) {
			c.Volumes = []VolumeConfig{{Name: ".", Root: "/a"}}
		}, "single path component"},
		{"volume name with separator", func(c *Config) {
			c.Volumes = []VolumeConfig{{Name: `a\b`, Root: "/a"}}
		}, "single path component"},
		{"volume name with slash", func(c *Config) {
			c.Volumes = []VolumeConfig{{Name: "a/b", Root: "/a"}}
		}, "single path component"},
		{"drive style name", func(c *Config) {
			c.Volumes = []VolumeConfig{{Name: "C:", Root: "/c"}}
		}, ""},
		{"case-sensitive names differ", func(c *Config) {
			c.Volumes = []VolumeConfig{{Name: "a", Root: "/a"}, {Name: "A", Root: "/b"}}
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewDefaultConfig()
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

func TestLoadConfigOverrideFile_Valid(t *testing.T) {
	t.Parallel()

	type tc struct {
		ext     string
		marshal func(v any) ([]byte, error)
	}

	cases := []tc{
		{ext: ".yaml", marshal: yaml.Marshal},
		{ext: ".yml", marshal: yaml.Marshal},
		{ext: ".json", marshal: json.Marshal},
	}

	for _, c := range cases {
		t.Run("valid"+c.ext, func(t *testing.T) {
			t.Parallel()
			override := createOverride()
			data, err := c.marshal(override)
			require.NoError(t, err)
			path := filepath.Join(t.TempDir(), "override"+c.ext)
			require.NoError(t, os.WriteFile(path, data, 0o600))

			loaded, err := LoadConfigOverrideFile(path)

			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Equal(t, *override, *loaded)
		})
	}
}

func TestLoadConfigOverrideFile_YAMLVolumes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fsnode.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
platform: mounts
separator: "\\"
volumes:
  - name: C
    label: Phone memory
    root: C:\
  - name: E
    root: E:\
`), 0o600))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, PlatformMounts, cfg.Platform)
	assert.Equal(t, `\`, cfg.Separator)
	assert.Equal(t, []VolumeConfig{
		{Name: "C", Label: "Phone memory", Root: `C:\`},
		{Name: "E", Root: `E:\`},
	}, cfg.Volumes)
}

// TestLoadConfigOverrideFile_NonExistentFile tests error handling
// when trying to load a file that doesn't exist.
func TestLoadConfigOverrideFile_NonExistentFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "does_not_exist.yaml")

	_, err := LoadConfigOverrideFile(path)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err), "expected not exist error, got %v", err)
}

// TestLoadConfigOverrideFile_UnsupportedExtension tests error handling
// for file extensions that aren't supported (.txt, .xml, etc).
func TestLoadConfigOverrideFile_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "override.txt")
	require.NoError(t, os.WriteFile(path, []byte("platform: posix"), 0o600))

	_, err := LoadConfigOverrideFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config file extension")
}

func TestLoadConfigOverrideFile_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "override.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadConfigOverrideFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config file")
}

// TestNewConfigFromFile_FileError tests that file loading errors
// are properly propagated by the convenience function.
func TestNewConfigFromFile_FileError(t *testing.T) {
	t.Parallel()

	_, err := NewConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func createDefaultCfg() *Config {
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

// createOverride makes a ConfigOverride with all non-default values
func createOverride() *ConfigOverride {
	return &ConfigOverride{
		LogLvl:   util.Pointer(DebugVerbose),
		Platform: util.Pointer(PlatformMounts),
		Volumes: &[]VolumeConfig{
			{Name: "A", Label: "Card A", Root: "/media/a"},
			{Name: "B", Root: "/media/b"},
		},
		Separator:       util.Pointer(`\`),
		CaseInsensitive: util.Pointer(!DefaultCaseInsensitive),
		BaseDir:         util.Pointer("/srv/games"),
		ShowHidden:      util.Pointer(!DefaultShowHidden),
		AtomicWrites:    util.Pointer(!DefaultAtomicWrites),
		FsName:          util.Pointer("test_fs"),
		Name:            util.Pointer("test_name"),
		Debug:           util.Pointer(true),
		AttrTimeout:     util.Pointer(float64(DefaultAttrTimeout + 1)),
		EntryTimeout:    util.Pointer(float64(DefaultEntryTimeout + 1)),
	}
}
