// Package commands provides the command-line interface for the bananapeel tool.
//
// It implements commands for:
//   - encoding
//   - decoding
//   - listing presets
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/bananapeel/internal/config"
	"github.com/idelchi/bananapeel/internal/logic"
)

// envPrefix is the environment prefix viper derives from the root command name.
const envPrefix = "BANANAPEEL"

// app is the state shared by the commands of one invocation.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

// streams returns the command's standard streams.
func streams(cmd *cobra.Command) logic.Streams {
	return logic.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}

// envName returns the environment variable bound to the flag.
func envName(flag string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// explicit reports whether the flag was given on the command line or in the environment.
func explicit(cmd *cobra.Command, flag string) bool {
	if cmd.Flags().Changed(flag) {
		return true
	}

	_, ok := os.LookupEnv(envName(flag))

	return ok
}

// initLogger builds the logger once flags and environment are bound.
func (a *app) initLogger(_ *cobra.Command, _ []string) error {
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if viper.GetBool("verbose") {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := logCfg.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	a.logger = logger

	return nil
}

// validate resolves positional args into cfg.Files, then unmarshals and validates the configuration.
// With --show the configuration is printed instead and cobraext.ErrExitGracefully is returned.
func (a *app) validate(args []string) error {
	a.cfg.Files = args

	if err := cobraext.Validate(a.cfg, a.cfg); err != nil {
		return err //nolint:wrapcheck
	}

	a.logger.Debug("configuration resolved", zap.Strings("files", a.cfg.Files), zap.Bool("decode", a.cfg.Decode))

	return nil
}
