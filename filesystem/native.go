package filesystem

import (
	"errors"
	"fmt"
	"os"

	"github.com/brettbedarf/fsnode"
	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var (
	errIsDirectory = errors.New("is a directory")
	errPseudoRoot  = errors.New("pseudo-root has no native path")
)

// nativeNode holds the snapshot and the native operations shared by every
// node variant. It is immutable after construction.
type nativeNode struct {
	fsys        *FileSystem
	path        string
	name        string
	displayName string
	isDir       bool
	isValid     bool
}

// snapshot stats p once and freezes the result
func (fsys *FileSystem) snapshot(p string) nativeNode {
	info, err := fsys.backend.Stat(p)
	if err != nil {
		n := nativeNode{fsys: fsys, path: p, name: fsys.style.base(p)}
		n.displayName = n.name
		return n
	}
	return fsys.snapshotFromInfo(p, info)
}

func (fsys *FileSystem) snapshotFromInfo(p string, info os.FileInfo) nativeNode {
	name := fsys.style.base(p)
	return nativeNode{
		fsys:        fsys,
		path:        p,
		name:        name,
		displayName: name,
		isDir:       info.IsDir(),
		isValid:     true,
	}
}

func (n *nativeNode) Exists() bool {
	return n.isValid
}

func (n *nativeNode) DisplayName() string {
	return n.displayName
}

func (n *nativeNode) Name() string {
	return n.name
}

func (n *nativeNode) Path() string {
	return n.path
}

func (n *nativeNode) IsDirectory() bool {
	return n.isDir
}

func (n *nativeNode) IsReadable() bool {
	return n.fsys.access.readable(n.path)
}

func (n *nativeNode) IsWritable() bool {
	return n.fsys.access.writable(n.path)
}

// Stat returns fresh backend metadata. Unlike Exists and IsDirectory it is
// not a snapshot.
func (n *nativeNode) Stat() (os.FileInfo, error) {
	info, err := n.fsys.backend.Stat(n.path)
	if err != nil {
		if kind, ok := fsnode.KindOf(err); ok {
			return nil, fsnode.NewError("stat", n.path, kind, err)
		}
		return nil, err
	}
	return info, nil
}

// childPath validates name and joins it onto this directory
func (n *nativeNode) childPath(name string) (string, error) {
	const op = "child"
	if !n.isValid {
		return "", fsnode.NewError(op, n.path, fsnode.KindNotFound, nil)
	}
	if !n.isDir {
		return "", fsnode.NewError(op, n.path, fsnode.KindNotADirectory, nil)
	}
	if !n.fsys.style.validName(name) {
		return "", fsnode.NewError(op, n.path, fsnode.KindNotFound, fmt.Errorf("invalid name %q", name))
	}
	return n.fsys.style.join(n.path, name), nil
}

// scan lists the directory. Failures degrade to an empty result.
func (n *nativeNode) scan(mode fsnode.ListMode, hidden bool) []nativeNode {
	logger := util.GetLogger("Node.Children")
	if !n.isDir {
		logger.Debug().Str("path", n.path).Msg("Not a directory")
		return nil
	}

	entries, err := afero.ReadDir(n.fsys.backend, n.path)
	if err != nil {
		logger.Debug().Str("path", n.path).Err(err).Msg("Failed to read directory")
		return nil
	}

	nodes := make([]nativeNode, 0, len(entries))
	for _, entry := range entries {
		if !hidden && n.fsys.hidden(entry) {
			continue
		}
		p := n.fsys.style.join(n.path, entry.Name())
		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			// Listings report the link itself; classify by its target
			if info, err = n.fsys.backend.Stat(p); err != nil {
				logger.Trace().Str("path", p).Err(err).Msg("Skipping entry")
				continue
			}
		}
		switch {
		case mode == fsnode.ListFilesOnly && info.IsDir():
			continue
		case mode == fsnode.ListDirectoriesOnly && !info.IsDir():
			continue
		}
		nodes = append(nodes, n.fsys.snapshotFromInfo(p, info))
	}
	return nodes
}

// openFailure wraps err in an open_failure, keeping its own kind reachable
// through errors.Is
func openFailure(op, path string, err error) error {
	if kind, ok := fsnode.KindOf(err); ok {
		err = fsnode.NewError("", "", kind, err)
	}
	return fsnode.NewError(op, path, fsnode.KindOpenFailure, err)
}

func (n *nativeNode) OpenRead() (fsnode.ReadStream, error) {
	const op = "open"
	f, err := n.fsys.backend.Open(n.path)
	if err != nil {
		return nil, openFailure(op, n.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, openFailure(op, n.path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fsnode.NewError(op, n.path, fsnode.KindOpenFailure, errIsDirectory)
	}
	return &readStream{file: f, size: info.Size()}, nil
}

func (n *nativeNode) OpenWrite() (fsnode.WriteStream, error) {
	const op = "create"
	backend := n.fsys.backend

	perm := os.FileMode(0o644)
	exists := false
	if info, err := backend.Stat(n.path); err == nil {
		if info.IsDir() {
			return nil, fsnode.NewError(op, n.path, fsnode.KindOpenFailure, errIsDirectory)
		}
		perm = info.Mode().Perm()
		exists = true
	}

	// Backends such as MemMapFs create missing parents implicitly
	dir := n.fsys.style.dir(n.path)
	if info, err := backend.Stat(dir); err != nil || !info.IsDir() {
		return nil, fsnode.NewError(op, n.path, fsnode.KindOpenFailure,
			fsnode.NewError("", dir, fsnode.KindParentMissing, err))
	}

	if !n.fsys.atomic {
		f, err := backend.OpenFile(n.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
		if err != nil {
			return nil, openFailure(op, n.path, err)
		}
		return newWriteStream(f), nil
	}

	// The rename only needs a writable directory, so check the target itself
	if exists && !n.fsys.access.writable(n.path) {
		return nil, fsnode.NewError(op, n.path, fsnode.KindOpenFailure,
			fsnode.NewError("", n.path, fsnode.KindPermissionDenied, nil))
	}

	tmp := n.fsys.style.join(dir, "."+n.name+"."+uuid.NewString()+".tmp")
	f, err := backend.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, openFailure(op, n.path, err)
	}
	ws := newWriteStream(f)
	ws.commit = func() error {
		if err := backend.Rename(tmp, n.path); err != nil {
			return fmt.Errorf("failed to commit %s: %w", n.path, err)
		}
		return nil
	}
	ws.abort = func() { removeQuietly(backend, tmp) }
	return ws, nil
}

func (n *nativeNode) CreateDirectory() error {
	const op = "mkdir"
	backend := n.fsys.backend

	if _, err := backend.Stat(n.path); err == nil {
		return fsnode.NewError(op, n.path, fsnode.KindAlreadyExists, nil)
	}
	dir := n.fsys.style.dir(n.path)
	if info, err := backend.Stat(dir); dir == n.path || err != nil || !info.IsDir() {
		return fsnode.NewError(op, n.path, fsnode.KindParentMissing, err)
	}
	if err := backend.Mkdir(n.path, 0o755); err != nil {
		if kind, ok := fsnode.KindOf(err); ok {
			return fsnode.NewError(op, n.path, kind, err)
		}
		return fmt.Errorf("%s %s: %w", op, n.path, err)
	}
	return nil
}
