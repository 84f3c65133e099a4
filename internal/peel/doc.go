// Package peel implements the BANANAPEEL transform: text is base64 and hex
// encoded, partitioned into fixed-length chunks, tagged with order prefixes
// drawn from a seeded PCG stream, padded with noise and shuffled so the
// output reads like a list of digests. The Key is the only state needed to
// reverse it.
//
// This is obfuscation, not encryption. A wrong key usually makes Decode
// search forever, so callers must bound it with a context deadline.
package peel
