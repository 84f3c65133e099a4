// Package keytext converts keys to and from the base64 text handed to users.
package keytext

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/idelchi/bananapeel/internal/peel"
)

// Format returns the standard base64 form of the key's binary layout.
func Format(key peel.Key) (string, error) {
	data, err := key.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("marshaling key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// Parse reads a key produced by Format. Surrounding whitespace is ignored.
func Parse(text string) (peel.Key, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return peel.Key{}, fmt.Errorf("%w: %w", peel.ErrKeyFormat, err)
	}

	var key peel.Key
	if err := key.UnmarshalBinary(data); err != nil {
		return peel.Key{}, err
	}

	return key, nil
}
