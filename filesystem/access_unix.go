//go:build unix

package filesystem

import "golang.org/x/sys/unix"

type nativeAccess struct{}

func (nativeAccess) readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

func (nativeAccess) writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
