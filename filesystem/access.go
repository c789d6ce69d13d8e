package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

// accessChecker answers the live IsReadable/IsWritable queries
type accessChecker interface {
	readable(path string) bool
	writable(path string) bool
}

// newAccessChecker uses the OS access checks for the real filesystem and
// falls back to trial opens for everything else (memory and read-only
// backends).
func newAccessChecker(backend afero.Fs) accessChecker {
	if _, ok := backend.(*afero.OsFs); ok {
		return nativeAccess{}
	}
	return backendAccess{backend: backend}
}

// backendAccess checks by opening. Directories are judged by their mode bits
// since they cannot be opened for writing.
type backendAccess struct {
	backend afero.Fs
}

func (p backendAccess) readable(path string) bool {
	info, err := p.backend.Stat(path)
	if err != nil || info.Mode().Perm()&0o444 == 0 {
		return false
	}
	f, err := p.backend.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

func (p backendAccess) writable(path string) bool {
	if _, ok := p.backend.(*afero.ReadOnlyFs); ok {
		return false
	}
	info, err := p.backend.Stat(path)
	if err != nil || info.Mode().Perm()&0o222 == 0 {
		return false
	}
	if info.IsDir() {
		return true
	}
	// no O_TRUNC: the check must not modify the file
	f, err := p.backend.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
