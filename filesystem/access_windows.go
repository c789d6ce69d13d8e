//go:build windows

package filesystem

import (
	"os"

	"golang.org/x/sys/windows"
)

type nativeAccess struct{}

func (nativeAccess) readable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return true
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// writable checks FILE_ATTRIBUTE_READONLY, which Windows ignores on directories
func (nativeAccess) writable(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	if attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		return true
	}
	return attrs&windows.FILE_ATTRIBUTE_READONLY == 0
}
