//go:build linux || darwin

// Package server exposes a node tree as a read-only FUSE filesystem
package server

import (
	"context"
	"os"
	"syscall"
	"time"

	"github.com/brettbedarf/fsnode"
	"github.com/brettbedarf/fsnode/config"
	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
)

// Mirror mounts the tree below fsys.Root(). On platforms with a pseudo-root
// every volume shows up as a top-level directory.
type Mirror struct {
	fsys   fsnode.FileSystem
	cfg    *config.Config
	server *fuse.Server
}

// New creates a Mirror instance given your config.
func New(cfg *config.Config, fsys fsnode.FileSystem) *Mirror {
	return &Mirror{
		fsys: fsys,
		cfg:  cfg,
	}
}

// Serve mounts and serves the mirror at the given mountPoint. It returns once
// the kernel has completed the mount.
func (m *Mirror) Serve(mountPoint string) error {
	logger := util.GetLogger("Mirror.Serve")

	attrTimeout := secondsToDuration(m.cfg.AttrTimeout)
	entryTimeout := secondsToDuration(m.cfg.EntryTimeout)
	opts := m.cfg.MountOptions
	root := &mirrorNode{node: m.fsys.Root(), mirror: m}

	raw := fs.NewNodeFS(root, &fs.Options{
		AttrTimeout:  &attrTimeout,
		EntryTimeout: &entryTimeout,
		Logger:       util.NewLogLogger("FuseBridge", util.DebugLevel),
	})
	srv, err := fuse.NewServer(raw, mountPoint, &fuse.MountOptions{
		Name:    opts.Name,
		FsName:  opts.FsName,
		Debug:   opts.Debug || m.cfg.LogLvl == util.TraceLevel,
		Logger:  util.NewLogLogger("FuseServer", util.TraceLevel),
		Options: []string{"ro"},
	})
	if err != nil {
		return err
	}
	m.server = srv

	go srv.Serve()
	if err := srv.WaitMount(); err != nil {
		return err
	}
	logger.Info().Str("mountpoint", mountPoint).Str("root", fsnode.PrintablePath(root.node)).Msg("Mirror mounted")
	return nil
}

func (m *Mirror) ServeAsync(mountPoint string) <-chan error {
	done := make(chan error, 1)

	go func() {
		done <- m.Serve(mountPoint)
		close(done)
	}()

	return done
}

// Wait blocks until the mirror is unmounted
func (m *Mirror) Wait() {
	if m.server != nil {
		m.server.Wait()
	}
}

// Unmount cleanly unmounts the filesystem.
func (m *Mirror) Unmount() error {
	if m.server == nil {
		return nil
	}
	return m.server.Unmount()
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// mirrorNode is the FUSE inode for one fsnode.Node
type mirrorNode struct {
	fs.Inode
	node   fsnode.Node
	mirror *Mirror
}

var (
	_ = (fs.NodeLookuper)((*mirrorNode)(nil))
	_ = (fs.NodeReaddirer)((*mirrorNode)(nil))
	_ = (fs.NodeGetattrer)((*mirrorNode)(nil))
	_ = (fs.NodeOpener)((*mirrorNode)(nil))
)

func (n *mirrorNode) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*fs.Inode, syscall.Errno) {
	logger := util.GetLogger("Mirror.Lookup")
	child, err := n.node.Child(name)
	if err != nil {
		logger.Trace().Str("parent", fsnode.PrintablePath(n.node)).Str("name", name).Err(err).Msg("Lookup failed")
		return nil, toErrno(err)
	}
	if !child.Exists() {
		return nil, syscall.ENOENT
	}
	fillAttr(child, &out.Attr)
	return n.NewInode(ctx, &mirrorNode{node: child, mirror: n.mirror}, fs.StableAttr{Mode: fileType(child)}), fs.OK
}

func (n *mirrorNode) Readdir(ctx context.Context) (fs.DirStream, syscall.Errno) {
	if !n.node.IsDirectory() {
		return nil, syscall.ENOTDIR
	}
	children := n.node.Children(fsnode.ListAll, n.mirror.cfg.ShowHidden)
	fsnode.SortNodes(children)

	entries := make([]fuse.DirEntry, 0, len(children))
	for _, c := range children {
		entries = append(entries, fuse.DirEntry{Name: c.Name(), Mode: fileType(c)})
	}
	return fs.NewListDirStream(entries), fs.OK
}

func (n *mirrorNode) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	fillAttr(n.node, &out.Attr)
	return fs.OK
}

func (n *mirrorNode) Open(ctx context.Context, flags uint32) (fs.FileHandle, uint32, syscall.Errno) {
	if flags&(syscall.O_WRONLY|syscall.O_RDWR|syscall.O_APPEND|syscall.O_TRUNC) != 0 {
		return nil, 0, syscall.EROFS
	}
	stream, err := n.node.OpenRead()
	if err != nil {
		logger := util.GetLogger("Mirror.Open")
		logger.Debug().Str("path", n.node.Path()).Err(err).Msg("Open failed")
		return nil, 0, toErrno(err)
	}
	return &mirrorHandle{stream: stream}, fuse.FOPEN_KEEP_CACHE, fs.OK
}

// mirrorHandle serves reads from a ReadStream until released
type mirrorHandle struct {
	stream fsnode.ReadStream
}

var (
	_ = (fs.FileReader)((*mirrorHandle)(nil))
	_ = (fs.FileReleaser)((*mirrorHandle)(nil))
)

func (h *mirrorHandle) Read(ctx context.Context, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	n, err := h.stream.ReadAt(dest, off)
	if n == 0 && err != nil && off < h.stream.Size() {
		return nil, syscall.EIO
	}
	return fuse.ReadResultData(dest[:n]), fs.OK
}

func (h *mirrorHandle) Release(ctx context.Context) syscall.Errno {
	if err := h.stream.Close(); err != nil {
		return syscall.EIO
	}
	return fs.OK
}

func fileType(n fsnode.Node) uint32 {
	if n.IsDirectory() {
		return fuse.S_IFDIR
	}
	return fuse.S_IFREG
}

// fillAttr reports directories as r-x and files as r-- for everyone, with
// size and mtime from a fresh stat when the node supports it
func fillAttr(n fsnode.Node, attr *fuse.Attr) {
	if n.IsDirectory() {
		attr.Mode = fuse.S_IFDIR | 0o555
	} else {
		attr.Mode = fuse.S_IFREG | 0o444
	}
	st, ok := n.(interface{ Stat() (os.FileInfo, error) })
	if !ok {
		return
	}
	info, err := st.Stat()
	if err != nil {
		return
	}
	if !n.IsDirectory() {
		attr.Size = uint64(info.Size())
	}
	mtime := info.ModTime()
	attr.SetTimes(nil, &mtime, nil)
}
