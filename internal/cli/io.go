package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/brettbedarf/fsnode"
	"github.com/brettbedarf/fsnode/internal/util"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newCatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat path",
		Short: "Write a file to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.node(args)
			if err != nil {
				return err
			}
			stream, err := n.OpenRead()
			if err != nil {
				return err
			}
			defer stream.Close()

			if _, err := io.Copy(cmd.OutOrStdout(), stream); err != nil {
				return fmt.Errorf("failed to read %s: %w", n.Path(), err)
			}
			return nil
		},
	}
}

func newPutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put path",
		Short: "Write stdin to a file, creating or truncating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.node(args)
			if err != nil {
				return err
			}
			stream, err := n.OpenWrite()
			if err != nil {
				return err
			}

			if _, err := io.Copy(stream, cmd.InOrStdin()); err != nil {
				return fmt.Errorf("failed to write %s: %w", n.Path(), errors.Join(err, stream.Abort()))
			}
			if err := stream.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", n.Path(), err)
			}
			logger := util.GetLogger("put")
			logger.Info().
				Str("path", n.Path()).
				Str("size", humanize.Bytes(uint64(stream.Size()))).
				Msg("File written")
			return nil
		},
	}
}

func newMkdirCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir path",
		Short: "Create a single directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.node(args)
			if err != nil {
				return err
			}
			if err := n.CreateDirectory(); err != nil {
				if errors.Is(err, fsnode.ErrParentMissing) {
					return fmt.Errorf("%w (parents are not created)", err)
				}
				return err
			}
			return nil
		},
	}
}
