package peel

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/bananapeel/internal/pcg"
)

const hexDigits = "0123456789abcdef"

// Encoder turns text into shuffled chunks.
type Encoder struct {
	// Options shapes the chunks.
	Options Options

	// Entropy seeds both generators. Nil means crypto/rand.Reader.
	Entropy io.Reader
}

// Encode encodes text with opts using operating system entropy.
func Encode(text string, opts Options) ([]string, Key, error) {
	return (&Encoder{Options: opts}).Encode(text)
}

// Encode returns the shuffled chunks for text together with the key that reverses them.
// Every call draws a fresh key.
func (e *Encoder) Encode(text string) ([]string, Key, error) {
	if err := e.Options.Validate(); err != nil {
		return nil, Key{}, err
	}

	entropy := e.Entropy
	if entropy == nil {
		entropy = rand.Reader
	}

	// aux drives noise, padding, skips and the shuffle. It is never persisted.
	aux, _, err := pcg.FromEntropy(entropy)
	if err != nil {
		return nil, Key{}, fmt.Errorf("seeding auxiliary generator: %w", err)
	}

	noiseLen := aux.Next() % e.Options.maxNoiseLen()

	var threshold uint32
	if limit := e.Options.skipLimit(); limit > 0 {
		threshold = aux.Next() % limit
	}

	encoded := base64.RawURLEncoding.EncodeToString([]byte(text))
	partitions := partition(hex.EncodeToString([]byte(encoded)), int(e.Options.OutputLen-noiseLen-prefixLen), aux)

	order, seed, err := pcg.FromEntropy(entropy)
	if err != nil {
		return nil, Key{}, fmt.Errorf("seeding ordering generator: %w", err)
	}

	chunks := make([]string, len(partitions))

	for i, data := range partitions {
		prefix := order.Next()
		for aux.Next() < threshold {
			prefix = order.Next()
		}

		var chunk strings.Builder

		chunk.Grow(int(e.Options.OutputLen))
		fmt.Fprintf(&chunk, "%08x", prefix)
		writeNoise(&chunk, aux, int(noiseLen))
		chunk.WriteString(data)

		chunks[i] = chunk.String()
	}

	shuffle(chunks, aux)

	return chunks, Key{
		RNGInitState: seed.State,
		RNGInitSeq:   seed.Sequence,
		Base64Len:    uint64(len(encoded)),
		NoiseLen:     noiseLen,
	}, nil
}

// partition pads payload with random hex digits up to a non-zero multiple of size
// and splits it into consecutive slices.
func partition(payload string, size int, rng *pcg.PCG) []string {
	count := max(1, (len(payload)+size-1)/size)

	var padded strings.Builder

	padded.Grow(count * size)
	padded.WriteString(payload)
	writeNoise(&padded, rng, count*size-len(payload))

	full := padded.String()
	parts := make([]string, count)

	for i := range parts {
		parts[i] = full[i*size : (i+1)*size]
	}

	return parts
}

// writeNoise appends n random lowercase hex digits.
func writeNoise(b *strings.Builder, rng *pcg.PCG, n int) {
	for range n {
		b.WriteByte(hexDigits[rng.Next()%16])
	}
}

// shuffle permutes chunks uniformly, walking down from the last index.
func shuffle(chunks []string, rng *pcg.PCG) {
	for i := len(chunks) - 1; i > 0; i-- {
		j := uint64(rng.Next()) % uint64(i+1)
		chunks[i], chunks[j] = chunks[j], chunks[i]
	}
}
