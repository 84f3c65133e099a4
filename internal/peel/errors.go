package peel

import "errors"

var (
	// ErrInvalidOptions is returned when chunk geometry or the skip chance is unusable.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrHexDecode is returned when the reassembled payload is not valid hexadecimal.
	ErrHexDecode = errors.New("decoding hex payload")
	// ErrBase64Decode is returned when the recovered payload is not valid base64.
	ErrBase64Decode = errors.New("decoding base64 payload")
	// ErrChunkFormat is returned when a matched chunk is too short to hold its prefix and noise.
	ErrChunkFormat = errors.New("malformed chunk")
	// ErrKeyFormat is returned when a serialized key has the wrong layout.
	ErrKeyFormat = errors.New("malformed key")
)
