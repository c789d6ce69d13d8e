//go:build !windows

package filesystem

import (
	"fmt"
	"runtime"
)

// NativeDrives returns the VolumeSource over the logical drives of this
// machine. Only Windows has drive letters.
func NativeDrives() (VolumeSource, error) {
	return nil, fmt.Errorf("drive letters are not available on %s", runtime.GOOS)
}
