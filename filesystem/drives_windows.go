//go:build windows

package filesystem

import (
	"fmt"

	"github.com/brettbedarf/fsnode/internal/util"
	"golang.org/x/sys/windows"
)

// NativeDrives returns the VolumeSource over the logical drives of this machine
func NativeDrives() (VolumeSource, error) {
	return VolumeSourceFunc(logicalDrives), nil
}

func logicalDrives() ([]Volume, error) {
	bits, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, fmt.Errorf("GetLogicalDrives: %w", err)
	}
	drives := bitsToDrives(bits)
	for i := range drives {
		drives[i].Label = driveLabel(volumeLabel(drives[i].Root), drives[i].Name)
	}
	return drives, nil
}

// volumeLabel returns "" for drives without media or without a label
func volumeLabel(root string) string {
	rootPtr, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return ""
	}
	// Don't pop up "insert disk" dialogs for empty removable drives
	prev := windows.SetErrorMode(windows.SEM_FAILCRITICALERRORS)
	defer windows.SetErrorMode(prev)

	buf := make([]uint16, windows.MAX_PATH+1)
	err = windows.GetVolumeInformation(rootPtr, &buf[0], uint32(len(buf)), nil, nil, nil, nil, 0)
	if err != nil {
		logger := util.GetLogger("volumeLabel")
		logger.Trace().Str("root", root).Err(err).Msg("No volume information")
		return ""
	}
	return windows.UTF16ToString(buf)
}
