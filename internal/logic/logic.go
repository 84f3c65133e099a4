// Package logic implements the encode and decode workflows behind the commands.
package logic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/bananapeel/internal/config"
	"github.com/idelchi/bananapeel/internal/fileutil"
)

// Streams are the standard streams a run reads from and reports to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// stats accumulates what a run processed.
type stats struct {
	inputs    int
	errored   int
	chunks    int
	inputSize int64
	outSize   int64
	start     time.Time
}

// readInput returns the display name and content of the single configured input.
func readInput(cfg *config.Config, streams Streams) (string, []byte, error) {
	if cfg.Stdin() {
		data, err := io.ReadAll(streams.In)
		if err != nil {
			return "", nil, fmt.Errorf("reading standard input: %w", err)
		}

		return "<stdin>", data, nil
	}

	name := cfg.Files[0]

	data, err := os.ReadFile(filepath.Clean(name))
	if err != nil {
		return "", nil, fmt.Errorf("reading input: %w", err)
	}

	return name, data, nil
}

// writeOutput writes content to cfg.Output, or to standard output when it is unset.
func writeOutput(cfg *config.Config, streams Streams, content string) (int64, error) {
	if cfg.Output == "" {
		n, err := io.WriteString(streams.Out, content)
		if err != nil {
			return 0, fmt.Errorf("writing standard output: %w", err)
		}

		return int64(n), nil
	}

	size, err := fileutil.WriteAtomic(cfg.Output, func(w io.Writer) error {
		_, err := io.WriteString(w, content)

		return err
	})
	if err != nil {
		return 0, fmt.Errorf("writing %q: %w", cfg.Output, err)
	}

	return size, nil
}

// printStats writes the summary of a run, sizes in human-readable units.
func printStats(w io.Writer, s stats) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Inputs:    %d\n", s.inputs)
	fmt.Fprintf(w, "  Errors:    %d\n", s.errored)
	fmt.Fprintf(w, "  Chunks:    %d\n", s.chunks)
	//nolint:gosec // sizes are sums of non-negative lengths
	fmt.Fprintf(w, "  Read:      %s\n", humanize.IBytes(uint64(max(0, s.inputSize))))
	//nolint:gosec // sizes are sums of non-negative lengths
	fmt.Fprintf(w, "  Written:   %s\n", humanize.IBytes(uint64(max(0, s.outSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", time.Since(s.start).Round(time.Millisecond))
}
