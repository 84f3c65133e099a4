// Command bananapeel obfuscates text into shuffled, hash-like hex lines and restores it with a key.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/bananapeel/internal/commands"
	"github.com/idelchi/bananapeel/internal/config"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown" //nolint:gochecknoglobals

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		os.Exit(1)
	}
}

// execute runs the root command until it finishes or the process is interrupted.
func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := &config.Config{}
	root := commands.NewRootCommand(cfg, version)

	switch err := root.ExecuteContext(ctx); {
	case errors.Is(err, cobraext.ErrExitGracefully):
		return nil
	case err != nil:
		return fmt.Errorf("executing command: %w", err)
	default:
		return nil
	}
}
