package filesystem

import "github.com/brettbedarf/fsnode/config"

type BuiltInPlatform = string

// RegisterBuiltins registers all built-in platforms in the default registry
// or only the specific ones if names are provided
func RegisterBuiltins(names ...BuiltInPlatform) {
	RegisterBuiltinsIn(defaultRegistry, names...)
}

func RegisterBuiltinsIn(r *Registry, names ...BuiltInPlatform) {
	if len(names) == 0 {
		names = []BuiltInPlatform{config.PlatformPosix, config.PlatformDrives, config.PlatformMounts}
	}

	for _, name := range names {
		switch name {
		case config.PlatformPosix:
			r.Register(name, NewPosix)
		case config.PlatformDrives:
			r.Register(name, NewDrives)
		case config.PlatformMounts:
			r.Register(name, NewMounts)
		}
	}
}
