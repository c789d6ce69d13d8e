//go:build linux || darwin

package server

import (
	"errors"
	"syscall"

	"github.com/brettbedarf/fsnode"
)

// toErrno maps node errors onto the errno the kernel expects. The cause of an
// open failure takes precedence over the failure itself.
func toErrno(err error) syscall.Errno {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, fsnode.ErrNotFound), errors.Is(err, fsnode.ErrParentMissing):
		return syscall.ENOENT
	case errors.Is(err, fsnode.ErrPermissionDenied):
		return syscall.EACCES
	case errors.Is(err, fsnode.ErrNotADirectory):
		return syscall.ENOTDIR
	case errors.Is(err, fsnode.ErrAlreadyExists):
		return syscall.EEXIST
	default:
		return syscall.EIO
	}
}
