package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/bananapeel/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	a := &app{cfg: cfg, logger: zap.NewNop()}

	root := cobraext.NewDefaultRootCommand(version, a.initLogger)

	root.Use = "bananapeel [flags] command [flags]"
	root.Short = "Reversible text obfuscation into hash-like lines"
	root.Long = `Encodes text into shuffled, fixed-length hex chunks that read like a list of digests,
and decodes them again with the key printed at encode time.

This is obfuscation, not encryption.`
	root.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = a.logger.Sync()
	}

	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().Bool("stats", false, "Print statistics after processing")
	root.PersistentFlags().Bool("show", false, "Show the configuration and exit")
	root.PersistentFlags().StringP("output", "o", "", "Output file for a single input (default: stdout)")

	root.AddCommand(NewEncodeCommand(a), NewDecodeCommand(a), NewPresetsCommand())

	return root
}
