package filesystem

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/brettbedarf/fsnode/config"
	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/spf13/afero"
)

// Constructor builds a platform variant over a backend. A nil backend means
// the OS filesystem.
type Constructor func(cfg *config.Config, backend afero.Fs) (*FileSystem, error)

// Registry maps platform names to constructors. Safe for concurrent use.
type Registry struct {
	platforms *xsync.Map[string, Constructor]
}

func NewRegistry() *Registry {
	return &Registry{platforms: xsync.NewMap[string, Constructor]()}
}

// Register ties a constructor to a platform name. The first registration of a
// name wins.
func (r *Registry) Register(name string, ctor Constructor) {
	r.platforms.LoadOrStore(strings.ToLower(name), ctor)
}

func (r *Registry) Lookup(name string) (Constructor, bool) {
	return r.platforms.Load(strings.ToLower(name))
}

// Platforms returns the registered names in sorted order
func (r *Registry) Platforms() []string {
	var names []string
	r.platforms.Range(func(name string, _ Constructor) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// New validates cfg and builds the FileSystem for cfg.Platform, resolving
// "auto" for the running OS.
func (r *Registry) New(cfg *config.Config, backend afero.Fs) (*FileSystem, error) {
	logger := util.GetLogger("Registry.New")
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	name := ResolvePlatform(cfg.Platform)
	ctor, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no platform %q", name)
	}
	fsys, err := ctor(cfg, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s filesystem: %w", name, err)
	}
	logger.Info().Str("platform", fsys.Platform()).Str("base_dir", fsys.baseDir).Msg("Filesystem ready")
	return fsys, nil
}

// ResolvePlatform maps "auto" onto the variant native to this OS
func ResolvePlatform(name string) string {
	name = strings.ToLower(name)
	if name != config.PlatformAuto {
		return name
	}
	if runtime.GOOS == "windows" {
		return config.PlatformDrives
	}
	return config.PlatformPosix
}

var defaultRegistry = NewRegistry()

// Register adds a platform to the default registry
func Register(name string, ctor Constructor) {
	defaultRegistry.Register(name, ctor)
}

// Platforms lists the platforms of the default registry
func Platforms() []string {
	return defaultRegistry.Platforms()
}

// New builds a FileSystem from the default registry. Call RegisterBuiltins
// first.
func New(cfg *config.Config, backend afero.Fs) (*FileSystem, error) {
	return defaultRegistry.New(cfg, backend)
}
