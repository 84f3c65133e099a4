package peel

import (
	"fmt"
	"math"
	"slices"
)

// prefixLen is the number of hex characters in an order prefix (one uint32).
const prefixLen = 8

// Options controls the shape of encoded chunks.
// OutputLen and MinDataInChunk must be identical on both sides of a round-trip;
// they are not stored in the Key.
type Options struct {
	// OutputLen is the total number of hex characters per chunk.
	OutputLen uint32
	// MinDataInChunk is the floor on data characters per chunk.
	// The noise length is drawn below OutputLen - MinDataInChunk - 8.
	MinDataInChunk uint32
	// MaxValueSkipChance is the ceiling, in [0, 1], on the probability that a
	// candidate order prefix is discarded. Only the encoder needs it.
	MaxValueSkipChance float64
}

// Validate reports whether the options leave room for a prefix, at least one
// noise slot and data in every chunk.
func (o Options) Validate() error {
	if uint64(o.OutputLen) <= uint64(o.MinDataInChunk)+prefixLen {
		return fmt.Errorf(
			"%w: output length %d must exceed min data %d + %d",
			ErrInvalidOptions, o.OutputLen, o.MinDataInChunk, prefixLen,
		)
	}

	if math.IsNaN(o.MaxValueSkipChance) || o.MaxValueSkipChance < 0 || o.MaxValueSkipChance > 1 {
		return fmt.Errorf("%w: skip chance %v must be within [0, 1]", ErrInvalidOptions, o.MaxValueSkipChance)
	}

	return nil
}

// maxNoiseLen is the exclusive upper bound on the noise length.
func (o Options) maxNoiseLen() uint32 {
	return o.OutputLen - o.MinDataInChunk - prefixLen
}

// skipLimit is floor(MaxUint32 * MaxValueSkipChance).
func (o Options) skipLimit() uint32 {
	return uint32(float64(math.MaxUint32) * o.MaxValueSkipChance)
}

// defaultSkipChance is shared by all presets.
const defaultSkipChance = 0.75

// DefaultPreset names the preset used when none is requested.
const DefaultPreset = "sha256"

//nolint:gochecknoglobals // read-only lookup table
var presets = map[string]Options{
	"md5":    {OutputLen: 32, MinDataInChunk: 16, MaxValueSkipChance: defaultSkipChance},
	"sha1":   {OutputLen: 40, MinDataInChunk: 20, MaxValueSkipChance: defaultSkipChance},
	"sha256": {OutputLen: 64, MinDataInChunk: 32, MaxValueSkipChance: defaultSkipChance},
	"sha512": {OutputLen: 128, MinDataInChunk: 64, MaxValueSkipChance: defaultSkipChance},
}

// SHA256 returns options whose chunks look like SHA-256 hex digests.
func SHA256() Options {
	return presets["sha256"]
}

// Preset returns the named preset.
func Preset(name string) (Options, bool) {
	opts, ok := presets[name]

	return opts, ok
}

// Presets returns the preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
