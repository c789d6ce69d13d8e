//go:build !windows

package filesystem

import "os"

func nativeHidden(info os.FileInfo) bool {
	return dotHidden(info)
}
