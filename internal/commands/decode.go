package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/idelchi/bananapeel/internal/logic"
)

// defaultTimeout bounds the order-prefix search of a decode.
const defaultTimeout = time.Minute

// NewDecodeCommand creates a new cobra command for the decode subcommand.
func NewDecodeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decode [flags] [file]",
		Aliases: []string{"dec"},
		Short:   "Decode chunks back into text",
		Long: `Decode reads newline-separated chunks from standard input or the given file.
A wrong key does not fail fast: the search runs until --timeout expires.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			a.cfg.Decode = true

			return a.validate(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunDecode(cmd.Context(), a.cfg, streams(cmd), a.logger)
		},
	}

	cmd.Flags().StringP("key", "k", "", "Key printed at encode time (base64)")
	cmd.Flags().StringP("key-file", "f", "", "Path to a file containing the key")
	cmd.Flags().DurationP("timeout", "t", defaultTimeout, "Give up decoding after this long, 0 disables")

	return cmd
}
