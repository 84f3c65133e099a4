// Package pcg implements the PCG-XSH-RR 32-bit generator (pcg32) with the
// reference seeding procedure, so sequences are reproducible across any
// conforming implementation.
package pcg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
)

// multiplier is the 64-bit LCG multiplier from the reference implementation.
const multiplier = 6364136223846793005

// seedSize is the number of entropy bytes consumed by NewSeed.
const seedSize = 16

// ErrEntropy is returned when the randomness source cannot supply a full seed.
var ErrEntropy = errors.New("reading entropy")

// Seed is the pair of values a generator is constructed from.
type Seed struct {
	// State is added into the generator state during seeding.
	State uint64
	// Sequence selects the output stream; only its low 63 bits matter.
	Sequence uint64
}

// PCG is an infinite pseudo-random stream of 32-bit values.
// It is not safe for concurrent use.
type PCG struct {
	state uint64
	inc   uint64
}

// New returns a generator seeded exactly like pcg32_srandom_r.
func New(initState, initSeq uint64) *PCG {
	pcg := &PCG{inc: initSeq<<1 | 1}

	pcg.Next()
	pcg.state += initState
	pcg.Next()

	return pcg
}

// NewSeed reads a seed from r: the state then the sequence, each a little-endian uint64.
func NewSeed(r io.Reader) (Seed, error) {
	var buf [seedSize]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Seed{}, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	return Seed{
		State:    binary.LittleEndian.Uint64(buf[:8]),
		Sequence: binary.LittleEndian.Uint64(buf[8:]),
	}, nil
}

// FromEntropy draws a fresh seed from r and returns the generator built from it.
func FromEntropy(r io.Reader) (*PCG, Seed, error) {
	seed, err := NewSeed(r)
	if err != nil {
		return nil, Seed{}, err
	}

	return New(seed.State, seed.Sequence), seed, nil
}

// Next advances the generator and returns the next value.
func (p *PCG) Next() uint32 {
	old := p.state
	p.state = old*multiplier + (p.inc | 1)

	xorshifted := uint32(((old >> 18) ^ old) >> 27) //nolint:gosec // truncation is part of the output function
	rot := int(old >> 59)

	return bits.RotateLeft32(xorshifted, -rot)
}
