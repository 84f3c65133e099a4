package peel

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/idelchi/bananapeel/internal/pcg"
)

// pollInterval is how many ordering values are drawn between context checks.
const pollInterval = 1 << 12

// Decode restores the text encoded into chunks. chunks may be in any order;
// it is reordered and stripped in place.
//
// Decode only stops searching once every chunk has been matched or ctx is done,
// so a wrong key typically ends with ctx.Err().
func Decode(ctx context.Context, chunks []string, key Key) (string, error) {
	order := pcg.New(key.RNGInitState, key.RNGInitSeq)
	strip := prefixLen + int(key.NoiseLen)

	var draws uint64

	for next := 0; next < len(chunks); {
		draws++
		if draws%pollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return "", fmt.Errorf("searching order prefixes (%d of %d chunks placed): %w", next, len(chunks), err)
			}
		}

		prefix := formatPrefix(order.Next())

		for i := next; i < len(chunks); i++ {
			if !strings.HasPrefix(chunks[i], prefix) {
				continue
			}

			if len(chunks[i]) < strip {
				return "", fmt.Errorf("%w: chunk of length %d cannot hold %d prefix and noise characters",
					ErrChunkFormat, len(chunks[i]), strip)
			}

			chunks[i] = chunks[i][strip:]
			chunks[i], chunks[next] = chunks[next], chunks[i]
			next++

			break
		}
	}

	payload := strings.Join(chunks, "")
	if len(payload)%2 != 0 {
		payload = payload[:len(payload)-1]
	}

	encoded, err := hex.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHexDecode, err)
	}

	if uint64(len(encoded)) < key.Base64Len {
		return "", fmt.Errorf("%w: payload holds %d characters, key expects %d",
			ErrBase64Decode, len(encoded), key.Base64Len)
	}

	decoded, err := base64.RawURLEncoding.DecodeString(string(encoded[:key.Base64Len]))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBase64Decode, err)
	}

	return string(decoded), nil
}

// formatPrefix renders v as 8 lowercase hex digits.
func formatPrefix(v uint32) string {
	s := strconv.FormatUint(uint64(v), 16)

	return strings.Repeat("0", prefixLen-len(s)) + s
}
