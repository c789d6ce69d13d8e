package filesystem

import (
	"fmt"
	"os"

	"github.com/brettbedarf/fsnode"
)

// VolumeNode is a node of a filesystem without a single native root. The
// synthesized pseudo-root lists the volumes of a VolumeSource; below it the
// node behaves like any native node.
type VolumeNode struct {
	nativeNode
	pseudo     bool
	volumeRoot bool // path is the root of a volume at construction time
}

var _ fsnode.Node = (*VolumeNode)(nil)

func newPseudoRoot(fsys *FileSystem) *VolumeNode {
	return &VolumeNode{
		nativeNode: nativeNode{
			fsys:        fsys,
			name:        fsnode.PseudoRootName,
			displayName: fsnode.PseudoRootName,
			isDir:       true,
			isValid:     true,
		},
		pseudo: true,
	}
}

// volumeNode stats p and names it after its volume when p is a volume root
func (fsys *FileSystem) volumeNode(p string, vols []Volume) *VolumeNode {
	n := &VolumeNode{nativeNode: fsys.snapshot(p)}
	fsys.markVolumeRoot(n, vols)
	return n
}

func (fsys *FileSystem) markVolumeRoot(n *VolumeNode, vols []Volume) {
	for _, v := range vols {
		if fsys.style.equal(v.Root, n.path) {
			n.name = v.Name
			n.displayName = v.displayName()
			n.volumeRoot = true
			return
		}
	}
}

// labelVolumeRoot only borrows the volume label. Nodes reached from a native
// directory keep that directory as their parent.
func (fsys *FileSystem) labelVolumeRoot(n *VolumeNode, vols []Volume) {
	for _, v := range vols {
		if fsys.style.equal(v.Root, n.path) {
			n.displayName = v.displayName()
			return
		}
	}
}

// volumeRootNode is a volume as listed by the pseudo-root. It is always a
// directory; Exists is false for drives without media.
func (fsys *FileSystem) volumeRootNode(v Volume) *VolumeNode {
	n := &VolumeNode{nativeNode: fsys.snapshot(v.Root), volumeRoot: true}
	n.name = v.Name
	n.displayName = v.displayName()
	n.isDir = true
	return n
}

func (n *VolumeNode) IsPseudoRoot() bool {
	return n.pseudo
}

func (n *VolumeNode) IsReadable() bool {
	if n.pseudo {
		return true
	}
	return n.nativeNode.IsReadable()
}

func (n *VolumeNode) IsWritable() bool {
	if n.pseudo {
		return false
	}
	return n.nativeNode.IsWritable()
}

func (n *VolumeNode) Stat() (os.FileInfo, error) {
	if n.pseudo {
		return nil, fsnode.NewError("stat", "", fsnode.KindNotFound, errPseudoRoot)
	}
	return n.nativeNode.Stat()
}

// Child on the pseudo-root matches a current volume name
func (n *VolumeNode) Child(name string) (fsnode.Node, error) {
	if n.pseudo {
		for _, v := range n.fsys.listVolumes() {
			if n.fsys.style.equal(v.Name, name) {
				return n.fsys.volumeRootNode(v), nil
			}
		}
		return nil, fsnode.NewError("child", "", fsnode.KindNotFound, fmt.Errorf("no volume %q", name))
	}

	p, err := n.childPath(name)
	if err != nil {
		return nil, err
	}
	child := &VolumeNode{nativeNode: n.fsys.snapshot(p)}
	n.fsys.labelVolumeRoot(child, n.fsys.listVolumes())
	return child, nil
}

func (n *VolumeNode) Children(mode fsnode.ListMode, hidden bool) []fsnode.Node {
	vols := n.fsys.listVolumes()
	if n.pseudo {
		if mode == fsnode.ListFilesOnly {
			return []fsnode.Node{}
		}
		nodes := make([]fsnode.Node, 0, len(vols))
		for _, v := range vols {
			nodes = append(nodes, n.fsys.volumeRootNode(v))
		}
		return nodes
	}

	entries := n.scan(mode, hidden)
	nodes := make([]fsnode.Node, 0, len(entries))
	for i := range entries {
		child := &VolumeNode{nativeNode: entries[i]}
		n.fsys.labelVolumeRoot(child, vols)
		nodes = append(nodes, child)
	}
	return nodes
}

// Parent of a volume root or of a native top-level path is the pseudo-root
func (n *VolumeNode) Parent() fsnode.Node {
	if n.pseudo || n.volumeRoot {
		return n.fsys.root
	}
	dir := n.fsys.style.dir(n.path)
	if dir == n.path {
		return n.fsys.root
	}
	parent := n.fsys.volumeNode(dir, n.fsys.listVolumes())
	if !parent.volumeRoot && n.fsys.style.isRoot(dir) {
		return n.fsys.root
	}
	return parent
}

func (n *VolumeNode) OpenRead() (fsnode.ReadStream, error) {
	if n.pseudo {
		return nil, fsnode.NewError("open", "", fsnode.KindOpenFailure, errPseudoRoot)
	}
	return n.nativeNode.OpenRead()
}

func (n *VolumeNode) OpenWrite() (fsnode.WriteStream, error) {
	if n.pseudo {
		return nil, fsnode.NewError("create", "", fsnode.KindOpenFailure, errPseudoRoot)
	}
	return n.nativeNode.OpenWrite()
}

// CreateDirectory on the pseudo-root reports it as already existing
func (n *VolumeNode) CreateDirectory() error {
	if n.pseudo {
		return fsnode.NewError("mkdir", "", fsnode.KindAlreadyExists, nil)
	}
	return n.nativeNode.CreateDirectory()
}
