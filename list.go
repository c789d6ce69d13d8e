package fsnode

import (
	"sort"
	"strings"
)

// SortNodes orders nodes in place: directories first, then by display name
// ignoring case. Nodes whose names only differ in case keep a stable order.
func SortNodes(nodes []Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsDirectory() != nodes[j].IsDirectory() {
			return nodes[i].IsDirectory()
		}
		return strings.ToLower(nodes[i].DisplayName()) < strings.ToLower(nodes[j].DisplayName())
	})
}

// LookupChild resolves name inside dir, falling back to a case-insensitive
// match among the existing children when the exact name is absent. Useful
// for data shipped on media that does not preserve case.
func LookupChild(dir Node, name string) (Node, bool) {
	child, err := dir.Child(name)
	if err != nil {
		return nil, false
	}
	if child.Exists() {
		return child, true
	}
	for _, c := range dir.Children(ListAll, true) {
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
	}
	return nil, false
}

// PrintablePath returns a path suitable for messages; the pseudo-root has no
// native path so its display name is used instead.
func PrintablePath(n Node) string {
	if n.IsPseudoRoot() {
		return n.DisplayName()
	}
	return n.Path()
}
