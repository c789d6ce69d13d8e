package cli

import (
	"errors"
	"fmt"

	"github.com/brettbedarf/fsnode/internal/tui"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("browse needs an interactive terminal")

func newBrowseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [path]",
		Short: "Pick a file interactively and print its path",
		Long: `Opens a file dialog at path (the base directory by default). The chosen file's
path is printed on stdout; cancelling prints nothing and exits with status 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.IsInteractive() {
				return errNotInteractive
			}
			start := a.fsys.CurrentDirectory()
			if len(args) > 0 {
				n, err := a.existing(args)
				if err != nil {
					return err
				}
				start = n
			}

			b, err := tui.Run(tui.NewBrowser(start, a.cfg.ShowHidden))
			if err != nil {
				return err
			}
			if b.Selected() == nil {
				return errCancelled
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.Selected().Path())
			return nil
		},
	}
}
