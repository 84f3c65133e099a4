package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/bananapeel/internal/logic"
	"github.com/idelchi/bananapeel/internal/peel"
)

// NewEncodeCommand creates a new cobra command for the encode subcommand.
func NewEncodeCommand(a *app) *cobra.Command {
	defaults := peel.SHA256()

	cmd := &cobra.Command{
		Use:     "encode [flags] [files...]",
		Aliases: []string{"enc"},
		Short:   "Encode text into hash-like chunks",
		Long: `Encode reads standard input, or the given files, and writes one chunk per line.
A single input is written to --output or standard output and its key to standard error.
Several inputs are encoded concurrently into <file><suffix>, each with its own key.`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyPreset(cmd); err != nil {
				return err
			}

			return a.validate(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunEncode(a.cfg, streams(cmd), a.logger)
		},
	}

	cmd.Flags().StringP("preset", "p", "", "Chunk preset: md5, sha1, sha256 or sha512")
	cmd.Flags().Uint32P("length", "l", defaults.OutputLen, "Number of hex characters per chunk")
	cmd.Flags().Uint32("min-data", defaults.MinDataInChunk,
		"Minimum data characters per chunk; must be less than the length minus 8")
	cmd.Flags().Float64P("skip-chance", "s", defaults.MaxValueSkipChance,
		"Maximum chance of skipping an order prefix; higher values slow decoding")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().String("suffix", ".peel", "Suffix appended to encoded files when encoding several inputs")

	return cmd
}

// applyPreset fills chunk options from --preset unless they were set explicitly.
// An unknown preset is left for validation to report.
func applyPreset(cmd *cobra.Command) error {
	opts, ok := peel.Preset(viper.GetString("preset"))
	if !ok {
		return nil
	}

	values := map[string]any{
		"length":      opts.OutputLen,
		"min-data":    opts.MinDataInChunk,
		"skip-chance": opts.MaxValueSkipChance,
	}

	for flag, value := range values {
		if explicit(cmd, flag) {
			continue
		}

		if err := cmd.Flags().Set(flag, fmt.Sprint(value)); err != nil {
			return fmt.Errorf("applying preset to --%s: %w", flag, err)
		}
	}

	return nil
}
