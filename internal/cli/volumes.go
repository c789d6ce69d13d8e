package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newVolumesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "volumes",
		Short: "List the volumes under the pseudo-root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.fsys.HasPseudoRoot() {
				return fmt.Errorf("platform %s has a single native root", a.fsys.Platform())
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tLABEL\tROOT")
			for _, v := range a.fsys.Volumes() {
				label := v.Label
				if label == "" {
					label = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, label, v.Root)
			}
			return tw.Flush()
		},
	}
}
