package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/brettbedarf/fsnode"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"
)

func newStatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat [path]",
		Short: "Show what the node layer knows about a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.node(args)
			if err != nil {
				return err
			}
			return writeStat(cmd.OutOrStdout(), n)
		},
	}
}

func nodeKind(n fsnode.Node) string {
	switch {
	case n.IsPseudoRoot():
		return "pseudo-root"
	case !n.Exists():
		return "missing"
	case n.IsDirectory():
		return "directory"
	default:
		return "file"
	}
}

func writeStat(w io.Writer, n fsnode.Node) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Path:\t%s\n", fsnode.PrintablePath(n))
	fmt.Fprintf(tw, "Name:\t%s\n", n.Name())
	fmt.Fprintf(tw, "Display:\t%s\n", n.DisplayName())
	fmt.Fprintf(tw, "Type:\t%s\n", nodeKind(n))
	fmt.Fprintf(tw, "Exists:\t%t\n", n.Exists())
	fmt.Fprintf(tw, "Readable:\t%t\n", n.IsReadable())
	fmt.Fprintf(tw, "Writable:\t%t\n", n.IsWritable())

	if st, ok := n.(statter); ok && n.Exists() && !n.IsPseudoRoot() {
		if info, err := st.Stat(); err == nil {
			if !n.IsDirectory() {
				fmt.Fprintf(tw, "Size:\t%s (%d bytes)\n", humanize.Bytes(uint64(info.Size())), info.Size())
			}
			fmt.Fprintf(tw, "Modified:\t%s\n", humanize.Time(info.ModTime()))
		}
	}
	if n.Exists() && !n.IsDirectory() {
		if mime, err := detectMime(n); err == nil {
			fmt.Fprintf(tw, "MIME:\t%s\n", mime)
		}
	}
	return tw.Flush()
}

// detectMime sniffs the content type through a read stream
func detectMime(n fsnode.Node) (string, error) {
	stream, err := n.OpenRead()
	if err != nil {
		return "", err
	}
	defer stream.Close()

	mime, err := mimetype.DetectReader(stream)
	if err != nil {
		return "", err
	}
	return mime.String(), nil
}
