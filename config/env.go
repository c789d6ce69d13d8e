package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by LoadEnvOverride
const EnvPrefix = "FSNODE_"

// Environment variable names (without EnvPrefix)
const (
	EnvLogLevel        = "LOG_LEVEL" // trace|debug|info|warn|error or a verbosity 1-5
	EnvPlatform        = "PLATFORM"
	EnvSeparator       = "SEPARATOR"
	EnvCaseInsensitive = "CASE_INSENSITIVE"
	EnvBaseDir         = "BASE_DIR"
	EnvShowHidden      = "SHOW_HIDDEN"
	EnvAtomicWrites    = "ATOMIC_WRITES"
)

// LoadEnvOverride builds an override from FSNODE_* variables. Values from the
// given .env files are read first; the process environment wins over them.
// Missing .env files are an error, an empty file list reads only the process
// environment.
func LoadEnvOverride(files ...string) (*ConfigOverride, error) {
	env := map[string]string{}
	if len(files) > 0 {
		fileEnv, err := godotenv.Read(files...)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		env = fileEnv
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return overrideFromEnv(env)
}

func overrideFromEnv(env map[string]string) (*ConfigOverride, error) {
	var o ConfigOverride
	get := func(name string) (string, bool) {
		v, ok := env[EnvPrefix+name]
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get(EnvLogLevel); ok {
		if n, err := strconv.Atoi(v); err == nil {
			o.LogLvl = util.Pointer(n)
		} else if lvl, ok := util.ParseLogLevel(v); ok {
			o.LogLvl = util.Pointer(LogLevelToVerbosity(lvl))
		} else {
			return nil, fmt.Errorf("invalid %s%s: %q", EnvPrefix, EnvLogLevel, v)
		}
	}
	if v, ok := get(EnvPlatform); ok {
		o.Platform = util.Pointer(v)
	}
	if v, ok := get(EnvSeparator); ok {
		o.Separator = util.Pointer(v)
	}
	if v, ok := get(EnvBaseDir); ok {
		o.BaseDir = util.Pointer(v)
	}

	bools := []struct {
		name string
		dst  **bool
	}{
		{EnvCaseInsensitive, &o.CaseInsensitive},
		{EnvShowHidden, &o.ShowHidden},
		{EnvAtomicWrites, &o.AtomicWrites},
	}
	for _, b := range bools {
		v, ok := get(b.name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s%s: %w", EnvPrefix, b.name, err)
		}
		*b.dst = util.Pointer(parsed)
	}
	return &o, nil
}
