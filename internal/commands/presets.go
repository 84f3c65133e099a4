package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/idelchi/bananapeel/internal/peel"
)

// NewPresetsCommand creates a new cobra command listing the chunk presets.
func NewPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List chunk presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "NAME\tLENGTH\tMIN DATA\tSKIP CHANCE")

			for _, name := range peel.Presets() {
				opts, _ := peel.Preset(name)

				marker := ""
				if name == peel.DefaultPreset {
					marker = " (default)"
				}

				fmt.Fprintf(w, "%s%s\t%d\t%d\t%.2f\n",
					name, marker, opts.OutputLen, opts.MinDataInChunk, opts.MaxValueSkipChance)
			}

			return w.Flush()
		},
	}
}
