//go:build linux || darwin

package cli

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/brettbedarf/fsnode/server"
	"github.com/spf13/cobra"
)

func newMountCommand(a *app) *cobra.Command {
	var umount bool
	cmd := &cobra.Command{
		Use:   "mount mountpoint",
		Short: "Mirror the node tree read-only through FUSE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := util.GetLogger("mount")
			mnt := args[0]

			// Try unmount if requested
			if umount {
				// we ignore error here if not already mounted
				exec.Command("fusermount", "-u", mnt).Run() // nolint:errcheck
			}

			mirror := server.New(a.cfg, a.fsys)
			if err := mirror.Serve(mnt); err != nil {
				return err
			}

			// Setup signal handling for graceful shutdown
			signalChan := make(chan os.Signal, 1)
			signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
			defer signal.Stop(signalChan)

			unmounted := make(chan struct{})
			go func() {
				mirror.Wait()
				close(unmounted)
			}()

			select {
			case sig := <-signalChan:
				logger.Info().Str("signal", sig.String()).Msg("Received signal, unmounting filesystem")
				if err := mirror.Unmount(); err != nil {
					return err
				}
				logger.Info().Msg("Filesystem unmounted successfully")
			case <-unmounted:
				logger.Info().Msg("Filesystem unmounted externally")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&umount, "umount", "u", false,
		"Unmount the mountpoint first if needed. Useful for debuggers that don't exit properly.")
	return cmd
}
