package logic

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/idelchi/bananapeel/internal/config"
	"github.com/idelchi/bananapeel/internal/keytext"
	"github.com/idelchi/bananapeel/internal/peel"
)

// RunDecode restores the plaintext of a single chunk file or standard input.
// The search is abandoned after cfg.Timeout unless it is zero.
func RunDecode(ctx context.Context, cfg *config.Config, streams Streams, log *zap.Logger) error {
	st := stats{start: time.Now()}

	err := decode(ctx, cfg, streams, log, &st)
	if err != nil {
		st.errored++
	}

	if cfg.Stats {
		printStats(streams.Err, st)
	}

	return err
}

func decode(ctx context.Context, cfg *config.Config, streams Streams, log *zap.Logger, st *stats) error {
	key, err := loadKey(cfg)
	if err != nil {
		return err
	}

	name, data, err := readInput(cfg, streams)
	if err != nil {
		return err
	}

	chunks := strings.Fields(string(data))

	st.inputs = 1
	st.inputSize = int64(len(data))
	st.chunks = len(chunks)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	log.Debug("decoding", zap.String("input", name), zap.Int("chunks", len(chunks)), zap.Duration("timeout", cfg.Timeout))

	plaintext, err := peel.Decode(ctx, chunks, key)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("decoding %s: no result within %s, the key is likely wrong: %w",
			name, cfg.Timeout, err)
	case err != nil:
		return fmt.Errorf("decoding %s: %w", name, err)
	}

	log.Debug("decoded", zap.String("input", name), zap.Duration("elapsed", time.Since(st.start)))

	st.outSize, err = writeOutput(cfg, streams, plaintext)

	return err
}

// loadKey parses the key from --key or the contents of --key-file.
func loadKey(cfg *config.Config) (peel.Key, error) {
	text := cfg.Key

	if cfg.KeyFile != "" {
		data, err := os.ReadFile(filepath.Clean(cfg.KeyFile))
		if err != nil {
			return peel.Key{}, fmt.Errorf("reading key file: %w", err)
		}

		text = string(data)
	}

	key, err := keytext.Parse(text)
	if err != nil {
		return peel.Key{}, fmt.Errorf("reading key: %w", err)
	}

	return key, nil
}
