package filesystem

import (
	"bufio"
	"errors"
	"io/fs"

	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/spf13/afero"
)

// readStream adapts an open afero.File to fsnode.ReadStream
type readStream struct {
	file afero.File
	size int64
}

func (r *readStream) Read(p []byte) (int, error) {
	return r.file.Read(p)
}

func (r *readStream) ReadAt(p []byte, off int64) (int, error) {
	return r.file.ReadAt(p, off)
}

func (r *readStream) Seek(offset int64, whence int) (int64, error) {
	return r.file.Seek(offset, whence)
}

func (r *readStream) Size() int64 {
	return r.size
}

func (r *readStream) Close() error {
	return r.file.Close()
}

// writeStream buffers writes to an open afero.File. When commit is set the
// file is a temporary sibling which commit moves into place on Close; if
// anything fails before that, abort removes it.
type writeStream struct {
	file    afero.File
	buf     *bufio.Writer
	written int64
	closed  bool
	commit  func() error
	abort   func()
}

func newWriteStream(file afero.File) *writeStream {
	return &writeStream{file: file, buf: bufio.NewWriter(file)}
}

func (w *writeStream) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	n, err := w.buf.Write(p)
	w.written += int64(n)
	return n, err
}

func (w *writeStream) Flush() error {
	if w.closed {
		return fs.ErrClosed
	}
	return w.buf.Flush()
}

func (w *writeStream) Size() int64 {
	return w.written
}

// Close flushes, closes and, for atomic streams, renames the temp file over
// the target. Closing twice is a no-op.
func (w *writeStream) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := errors.Join(w.buf.Flush(), w.file.Close())
	if w.commit == nil {
		return err
	}
	if err == nil {
		err = w.commit()
	}
	if err != nil && w.abort != nil {
		w.abort()
	}
	return err
}

// Abort drops buffered data and the temp file of an atomic stream
func (w *writeStream) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.file.Close()
	if w.abort != nil {
		w.abort()
	}
	return err
}

// removeQuietly is used to drop temp files; failures are only logged
func removeQuietly(backend afero.Fs, path string) {
	if err := backend.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger := util.GetLogger("removeQuietly")
		logger.Debug().Str("path", path).Err(err).Msg("Failed to remove temp file")
	}
}
