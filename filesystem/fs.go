package filesystem

import (
	"os"
	"strings"

	"github.com/brettbedarf/fsnode"
	"github.com/brettbedarf/fsnode/config"
	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/spf13/afero"
)

// FileSystem is the node factory of one platform variant. It is immutable and
// shared by every node it creates.
type FileSystem struct {
	platform string
	backend  afero.Fs
	style    pathStyle
	volumes  VolumeSource // nil for single-rooted platforms
	root     *VolumeNode  // pseudo-root; nil for single-rooted platforms
	access   accessChecker
	hidden   hiddenFunc
	baseDir  string
	atomic   bool
}

var _ fsnode.FileSystem = (*FileSystem)(nil)

func newFileSystem(cfg *config.Config, platform string, backend afero.Fs, style pathStyle, volumes VolumeSource, hidden hiddenFunc) *FileSystem {
	if backend == nil {
		backend = afero.NewOsFs()
	}
	fsys := &FileSystem{
		platform: platform,
		backend:  backend,
		style:    style,
		volumes:  volumes,
		access:   newAccessChecker(backend),
		hidden:   hidden,
		atomic:   cfg.AtomicWrites,
	}
	if volumes != nil {
		fsys.root = newPseudoRoot(fsys)
	}
	fsys.baseDir = fsys.resolveBaseDir(cfg.BaseDir)
	return fsys
}

// resolveBaseDir falls back to the process working directory and finally to
// the native root when neither is usable on this platform
func (fsys *FileSystem) resolveBaseDir(base string) string {
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			logger := util.GetLogger("FileSystem")
			logger.Debug().Err(err).Msg("No working directory")
		}
		base = wd
	}
	if !fsys.style.isAbs(base) {
		return fsys.style.separator()
	}
	return fsys.style.clean(base)
}

// NewPosix builds the single-rooted variant: root "/", case-sensitive names,
// dot files hidden.
func NewPosix(cfg *config.Config, backend afero.Fs) (*FileSystem, error) {
	return newFileSystem(cfg, config.PlatformPosix, backend, posixStyle, nil, dotHidden), nil
}

// NewDrives builds the drive-letter variant over the native drives
func NewDrives(cfg *config.Config, backend afero.Fs) (*FileSystem, error) {
	src, err := NativeDrives()
	if err != nil {
		return nil, err
	}
	return newFileSystem(cfg, config.PlatformDrives, backend, driveStyle, src, nativeHidden), nil
}

// NewMounts builds the pseudo-root variant over the configured mount table
func NewMounts(cfg *config.Config, backend afero.Fs) (*FileSystem, error) {
	if backend == nil {
		backend = afero.NewOsFs()
	}
	table, err := NewMountTable(backend, cfg)
	if err != nil {
		return nil, err
	}
	return newFileSystem(cfg, config.PlatformMounts, backend, table.style, table, dotHidden), nil
}

// NewWithVolumes builds a pseudo-root variant over an arbitrary VolumeSource
// using the separator and case rules of cfg.
func NewWithVolumes(cfg *config.Config, backend afero.Fs, src VolumeSource) *FileSystem {
	style := newPathStyle(cfg.Separator, cfg.CaseInsensitive)
	return newFileSystem(cfg, config.PlatformMounts, backend, style, src, dotHidden)
}

// Platform returns the variant name
func (fsys *FileSystem) Platform() string {
	return fsys.platform
}

// Separator returns the native path separator
func (fsys *FileSystem) Separator() string {
	return fsys.style.separator()
}

func (fsys *FileSystem) HasPseudoRoot() bool {
	return fsys.root != nil
}

func (fsys *FileSystem) Root() fsnode.Node {
	if fsys.root != nil {
		return fsys.root
	}
	return fsys.posixNode(fsys.style.separator())
}

func (fsys *FileSystem) CurrentDirectory() fsnode.Node {
	return fsys.nodeAt(fsys.baseDir)
}

func (fsys *FileSystem) NodeAt(p string) (fsnode.Node, error) {
	const op = "resolve"
	if strings.IndexByte(p, 0) >= 0 {
		return nil, fsnode.NewError(op, p, fsnode.KindNotFound, nil)
	}
	if p == "" {
		if fsys.root != nil {
			return fsys.root, nil
		}
		return nil, fsnode.NewError(op, p, fsnode.KindNotFound, nil)
	}
	if !fsys.style.isAbs(p) {
		p = fsys.style.join(fsys.baseDir, p)
	}
	return fsys.nodeAt(fsys.style.clean(p)), nil
}

// nodeAt takes a clean absolute path
func (fsys *FileSystem) nodeAt(p string) fsnode.Node {
	if fsys.root == nil {
		return fsys.posixNode(p)
	}
	return fsys.volumeNode(p, fsys.listVolumes())
}

// Volumes lists the volumes currently under the pseudo-root; nil on
// single-rooted platforms
func (fsys *FileSystem) Volumes() []Volume {
	if fsys.volumes == nil {
		return nil
	}
	return fsys.listVolumes()
}

// listVolumes queries the source with roots cleaned; errors degrade to no
// volumes
func (fsys *FileSystem) listVolumes() []Volume {
	vols, err := fsys.volumes.Volumes()
	if err != nil {
		logger := util.GetLogger("FileSystem.Volumes")
		logger.Debug().Err(err).Msg("Volume enumeration failed")
		return nil
	}
	cleaned := make([]Volume, len(vols))
	for i, v := range vols {
		if fsys.style.isAbs(v.Root) {
			v.Root = fsys.style.clean(v.Root)
		}
		cleaned[i] = v
	}
	return cleaned
}
