package fsnode

import "io"

// ReadStream is a seekable byte stream over a file opened with
// [Node.OpenRead]. Its lifetime is independent of the node that created it.
type ReadStream interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer

	// Size returns the file size at open time
	Size() int64
}

// WriteStream is a byte stream over a file opened with [Node.OpenWrite].
// Data is only guaranteed to be on disk after a successful Close.
type WriteStream interface {
	io.Writer
	io.Closer

	// Flush commits buffered data to the native file
	Flush() error

	// Size returns the number of bytes written so far
	Size() int64

	// Abort closes the stream without committing. With atomic writes the
	// target is left untouched; otherwise it keeps whatever was already
	// flushed. Abort after Close is a no-op.
	Abort() error
}
