//go:build windows

package filesystem

import (
	"os"
	"syscall"
)

// nativeHidden honours FILE_ATTRIBUTE_HIDDEN as well as the dot convention
func nativeHidden(info os.FileInfo) bool {
	if dotHidden(info) {
		return true
	}
	if attrs, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return attrs.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0
	}
	return false
}
