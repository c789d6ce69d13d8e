// Package fsnode contains the platform-neutral filesystem node contract.
//
// A [Node] is an immutable snapshot of one location in a native filesystem:
// a file, a directory, or the synthesized pseudo-root that platforms without a
// single native root use to list their volumes. Concrete variants live in the
// filesystem package; upper layers (browsers, loaders, the CLI) only ever see
// this contract.
package fsnode

// PseudoRootName is the display name of the synthesized top-level node.
const PseudoRootName = "Root"

// ListMode selects which kinds of entries [Node.Children] returns
type ListMode int

const (
	ListFilesOnly ListMode = iota
	ListDirectoriesOnly
	ListAll
)

func (m ListMode) String() string {
	switch m {
	case ListFilesOnly:
		return "files"
	case ListDirectoriesOnly:
		return "dirs"
	case ListAll:
		return "all"
	default:
		return "unknown"
	}
}

// Node is one location in a native filesystem.
//
// IsDirectory and Exists are fixed when the node is constructed and are never
// re-queried; a caller that needs to observe a change on disk must construct
// a new node (e.g. through [FileSystem.NodeAt] or [Node.Parent]). IsReadable
// and IsWritable are live checks.
//
// Nodes hold no open handles and no references to other nodes. Every
// navigation call returns new, independently owned values.
type Node interface {
	// Exists reports whether the path resolved to an existing entry when the
	// node was constructed. Always true for the pseudo-root.
	Exists() bool

	// DisplayName returns the label shown in listings
	DisplayName() string

	// Name returns the last path component, the volume name, or
	// [PseudoRootName] for the pseudo-root. Never empty.
	Name() string

	// Path returns the canonical native path. The pseudo-root returns "" which
	// must never be handed to a native call.
	Path() string

	IsDirectory() bool
	IsReadable() bool
	IsWritable() bool
	IsPseudoRoot() bool

	// Child returns the node for name inside this directory. The child does
	// not need to exist. Fails with ErrNotADirectory if this node is not a
	// directory and with ErrNotFound if name is not a single path component.
	Child(name string) (Node, error)

	// Children lists the entries of this directory filtered by mode. Hidden
	// entries are only included when hidden is true. Files and unreadable
	// directories yield an empty result. Order is unspecified; see [SortNodes].
	Children(mode ListMode, hidden bool) []Node

	// Parent returns the enclosing directory. Top-level volumes return the
	// pseudo-root; the pseudo-root and the native root return themselves.
	Parent() Node

	// OpenRead opens the file for reading. The caller owns the stream and must
	// close it.
	OpenRead() (ReadStream, error)

	// OpenWrite creates or truncates the file. The caller owns the stream and
	// must close it.
	OpenWrite() (WriteStream, error)

	// CreateDirectory creates exactly this directory; parents are not created.
	CreateDirectory() error
}

// FileSystem is the per-platform node factory.
type FileSystem interface {
	// Root returns the native root or, on platforms without one, the
	// pseudo-root.
	Root() Node

	// CurrentDirectory returns the node for the configured base directory.
	CurrentDirectory() Node

	// NodeAt returns the node for an absolute path or a path relative to the
	// base directory. The node may not exist.
	NodeAt(path string) (Node, error)
}
