package config

// MountOptions holds high-level settings for the FUSE mirror.
// No go-fuse types are exposed here.
type MountOptions struct {
	Debug  bool   // fuse debug logs
	FsName string // mount's FsName
	Name   string // mount's Name
}

// VolumeConfig describes one entry of the mount table used by the "mounts"
// platform. Only volumes whose Root currently exists are listed under the
// pseudo-root.
type VolumeConfig struct {
	Name  string `yaml:"name" json:"name"`                       // node name, e.g. "A" or "C:"
	Label string `yaml:"label,omitempty" json:"label,omitempty"` // display name; defaults to Name
	Root  string `yaml:"root" json:"root"`                       // native root path of the volume
}
