package logic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/bananapeel/internal/config"
	"github.com/idelchi/bananapeel/internal/fileutil"
	"github.com/idelchi/bananapeel/internal/keytext"
	"github.com/idelchi/bananapeel/internal/peel"
)

// result is the outcome of encoding one file.
type result struct {
	input     string
	output    string
	key       string
	chunks    int
	inputSize int64
	outSize   int64
	err       error
}

// RunEncode encodes the configured inputs. A single input goes to --output or
// standard output with its key on standard error; several inputs are encoded
// concurrently into <file><suffix>.
func RunEncode(cfg *config.Config, streams Streams, log *zap.Logger) error {
	st := stats{start: time.Now()}

	var err error

	if len(cfg.Files) > 1 {
		err = encodeFiles(cfg, streams, log, &st)
	} else {
		err = encodeSingle(cfg, streams, log, &st)
	}

	if cfg.Stats {
		printStats(streams.Err, st)
	}

	return err
}

func encodeSingle(cfg *config.Config, streams Streams, log *zap.Logger, st *stats) error {
	name, data, err := readInput(cfg, streams)
	if err != nil {
		return err
	}

	st.inputs = 1
	st.inputSize = int64(len(data))

	chunks, key, err := peel.Encode(string(data), cfg.Options())
	if err != nil {
		st.errored++

		return fmt.Errorf("encoding %s: %w", name, err)
	}

	log.Debug("encoded input", zap.String("input", name), zap.Int("chunks", len(chunks)))

	text, err := keytext.Format(key)
	if err != nil {
		return err
	}

	size, err := writeOutput(cfg, streams, joinChunks(chunks))
	if err != nil {
		return err
	}

	st.chunks = len(chunks)
	st.outSize = size

	fmt.Fprintf(streams.Err, "Key: %s\n", text)

	return nil
}

//nolint:cyclop // parallel processing pipeline with printer goroutine
func encodeFiles(cfg *config.Config, streams Streams, log *zap.Logger, st *stats) error {
	results := make(chan result, len(cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	go func() {
		defer close(printed)

		for res := range results {
			st.inputs++
			st.inputSize += res.inputSize

			if res.err != nil {
				st.errored++

				fmt.Fprintf(streams.Err, "Error processing %q: %v\n", res.input, res.err)

				continue
			}

			st.chunks += res.chunks
			st.outSize += res.outSize

			if !cfg.Quiet {
				fmt.Fprintf(streams.Out, "Processed %q -> %q\n", res.input, res.output)
			}

			fmt.Fprintf(streams.Err, "%s: %s\n", res.output, res.key)
		}
	}()

	for _, file := range cfg.Files {
		group.Go(func() error {
			res := encodeFile(file, file+cfg.Suffix, cfg.Options())
			results <- res

			if res.err != nil {
				log.Debug("encoding failed", zap.String("input", file), zap.Error(res.err))
			}

			return res.err
		})
	}

	err := group.Wait()

	close(results)

	<-printed

	if err != nil {
		return fmt.Errorf("encoding files: %w", err)
	}

	return nil
}

// encodeFile encodes one file into outPath with a key of its own.
func encodeFile(input, outPath string, opts peel.Options) result {
	res := result{input: input, output: outPath}

	data, err := os.ReadFile(filepath.Clean(input))
	if err != nil {
		res.err = fmt.Errorf("reading input: %w", err)

		return res
	}

	res.inputSize = int64(len(data))

	chunks, key, err := peel.Encode(string(data), opts)
	if err != nil {
		res.err = fmt.Errorf("encoding: %w", err)

		return res
	}

	if res.key, err = keytext.Format(key); err != nil {
		res.err = err

		return res
	}

	res.chunks = len(chunks)

	res.outSize, err = fileutil.WriteAtomic(outPath, func(w io.Writer) error {
		_, err := io.WriteString(w, joinChunks(chunks))

		return err
	})
	if err != nil {
		res.err = fmt.Errorf("writing output: %w", err)
	}

	return res
}

// joinChunks renders chunks one per line.
func joinChunks(chunks []string) string {
	return strings.Join(chunks, "\n") + "\n"
}
