package filesystem

import (
	"fmt"

	"github.com/brettbedarf/fsnode/config"
	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/spf13/afero"
)

// Volume is one top-level entry of the pseudo-root
type Volume struct {
	Name  string // node name, e.g. "C:" or "A"
	Label string // display name; falls back to Name
	Root  string // native root path of the volume
}

func (v Volume) displayName() string {
	if v.Label != "" {
		return v.Label
	}
	return v.Name
}

// VolumeSource enumerates the volumes currently available. It is queried on
// every pseudo-root listing and must not cache removable media state.
type VolumeSource interface {
	Volumes() ([]Volume, error)
}

// VolumeSourceFunc adapts a function to VolumeSource
type VolumeSourceFunc func() ([]Volume, error)

func (f VolumeSourceFunc) Volumes() ([]Volume, error) {
	return f()
}

// MountTable is a fixed list of mount points of which only the ones whose
// root is currently a directory on the backend are reported.
type MountTable struct {
	backend afero.Fs
	style   pathStyle
	mounts  []Volume
}

// NewMountTable builds a MountTable from cfg.Volumes using the separator and
// case rules of cfg. Roots are cleaned; a root inside another root is
// rejected since its nodes would belong to two volumes.
func NewMountTable(backend afero.Fs, cfg *config.Config) (*MountTable, error) {
	style := newPathStyle(cfg.Separator, cfg.CaseInsensitive)
	mounts := make([]Volume, 0, len(cfg.Volumes))
	for _, v := range cfg.Volumes {
		root := style.clean(v.Root)
		for _, m := range mounts {
			if style.within(root, m.Root) || style.within(m.Root, root) {
				return nil, fmt.Errorf("volume %q root %s overlaps volume %q root %s", v.Name, root, m.Name, m.Root)
			}
		}
		mounts = append(mounts, Volume{
			Name:  v.Name,
			Label: v.Label,
			Root:  root,
		})
	}
	return &MountTable{backend: backend, style: style, mounts: mounts}, nil
}

// Volumes stats every mount root and returns the present ones in table order
func (m *MountTable) Volumes() ([]Volume, error) {
	logger := util.GetLogger("MountTable.Volumes")
	present := make([]Volume, 0, len(m.mounts))
	for _, v := range m.mounts {
		info, err := m.backend.Stat(v.Root)
		if err != nil || !info.IsDir() {
			logger.Trace().Str("name", v.Name).Str("root", v.Root).Err(err).Msg("Mount not present")
			continue
		}
		present = append(present, v)
	}
	return present, nil
}
