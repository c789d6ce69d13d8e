package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/brettbedarf/fsnode"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newLsCommand(a *app) *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.existing(args)
			if err != nil {
				return err
			}
			entries := []fsnode.Node{n}
			if n.IsDirectory() {
				entries = n.Children(fsnode.ListAll, a.cfg.ShowHidden)
				fsnode.SortNodes(entries)
			}
			if long {
				return writeLong(cmd.OutOrStdout(), entries)
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), entryName(e))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Long listing with capabilities, size and age")
	return cmd
}

func entryName(n fsnode.Node) string {
	if n.IsDirectory() {
		return n.Name() + "/"
	}
	return n.Name()
}

// capabilities renders "drw" style flags from the live access checks
func capabilities(n fsnode.Node) string {
	b := []byte("---")
	if n.IsDirectory() {
		b[0] = 'd'
	}
	if n.IsReadable() {
		b[1] = 'r'
	}
	if n.IsWritable() {
		b[2] = 'w'
	}
	return string(b)
}

type statter interface {
	Stat() (os.FileInfo, error)
}

func writeLong(w io.Writer, entries []fsnode.Node) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		size, age := "-", "-"
		if st, ok := e.(statter); ok {
			if info, err := st.Stat(); err == nil {
				if !e.IsDirectory() {
					size = humanize.Bytes(uint64(info.Size()))
				}
				age = humanize.Time(info.ModTime())
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", capabilities(e), size, age, entryName(e))
	}
	return tw.Flush()
}
