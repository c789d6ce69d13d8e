//go:build !linux && !darwin

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newMountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mount mountpoint",
		Short: "Mirror the node tree read-only through FUSE (Linux and macOS only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("mount is not supported on %s", runtime.GOOS)
		},
	}
}
