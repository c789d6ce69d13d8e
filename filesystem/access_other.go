//go:build !unix && !windows

package filesystem

import "github.com/spf13/afero"

type nativeAccess struct{}

func (nativeAccess) readable(path string) bool {
	return backendAccess{backend: afero.NewOsFs()}.readable(path)
}

func (nativeAccess) writable(path string) bool {
	return backendAccess{backend: afero.NewOsFs()}.writable(path)
}
