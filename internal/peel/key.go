package peel

import (
	"encoding/binary"
	"fmt"
)

// KeySize is the length of the portable binary key layout.
const KeySize = 8 + 8 + 8 + 4

// Key holds everything besides Options that Decode needs.
type Key struct {
	// RNGInitState and RNGInitSeq rebuild the ordering generator.
	RNGInitState uint64
	RNGInitSeq   uint64
	// Base64Len is the length of the unpadded base64 text, used to strip padding.
	Base64Len uint64
	// NoiseLen is the number of noise characters after each order prefix.
	NoiseLen uint32
}

// MarshalBinary encodes the key as little-endian
// state (u64) | sequence (u64) | base64 length (u64) | noise length (u32).
func (k Key) MarshalBinary() ([]byte, error) {
	buf := make([]byte, KeySize)

	binary.LittleEndian.PutUint64(buf[0:], k.RNGInitState)
	binary.LittleEndian.PutUint64(buf[8:], k.RNGInitSeq)
	binary.LittleEndian.PutUint64(buf[16:], k.Base64Len)
	binary.LittleEndian.PutUint32(buf[24:], k.NoiseLen)

	return buf, nil
}

// UnmarshalBinary decodes the layout written by MarshalBinary.
func (k *Key) UnmarshalBinary(data []byte) error {
	if len(data) != KeySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrKeyFormat, len(data), KeySize)
	}

	*k = Key{
		RNGInitState: binary.LittleEndian.Uint64(data[0:]),
		RNGInitSeq:   binary.LittleEndian.Uint64(data[8:]),
		Base64Len:    binary.LittleEndian.Uint64(data[16:]),
		NoiseLen:     binary.LittleEndian.Uint32(data[24:]),
	}

	return nil
}
