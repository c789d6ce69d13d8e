package filesystem

import (
	"github.com/brettbedarf/fsnode"
)

// PosixNode is a node of a filesystem with a single native root
type PosixNode struct {
	nativeNode
}

var _ fsnode.Node = (*PosixNode)(nil)

func (fsys *FileSystem) posixNode(p string) *PosixNode {
	return &PosixNode{nativeNode: fsys.snapshot(p)}
}

func (n *PosixNode) IsPseudoRoot() bool {
	return false
}

func (n *PosixNode) Child(name string) (fsnode.Node, error) {
	p, err := n.childPath(name)
	if err != nil {
		return nil, err
	}
	return n.fsys.posixNode(p), nil
}

func (n *PosixNode) Children(mode fsnode.ListMode, hidden bool) []fsnode.Node {
	entries := n.scan(mode, hidden)
	nodes := make([]fsnode.Node, 0, len(entries))
	for i := range entries {
		nodes = append(nodes, &PosixNode{nativeNode: entries[i]})
	}
	return nodes
}

// Parent of the root is the root
func (n *PosixNode) Parent() fsnode.Node {
	if n.fsys.style.isRoot(n.path) {
		return n
	}
	return n.fsys.posixNode(n.fsys.style.dir(n.path))
}
