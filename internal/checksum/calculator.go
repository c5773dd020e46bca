package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"unicode"
)

// Calculator is an interface for computing content checksums.
// This abstraction allows for different checksum strategies and algorithms.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
// Normalization strips insignificant whitespace so that reindenting a
// metadata file does not change its fingerprint.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// normalize strips whitespace outside JSON string literals. JSON never needs
// whitespace between tokens, so dropping it all keeps the fingerprint stable
// across reformatting. Whitespace inside string literals is significant and
// kept.
func (c SHA256) normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	inString := false
	escaped := false

	for _, r := range content {
		if inString {
			b.WriteRune(r)
			if escaped {
				escaped = false
			} else if r == '\\' {
				escaped = true
			} else if r == '"' {
				inString = false
			}
			continue
		}

		switch {
		case r == '"':
			inString = true
			b.WriteRune(r)
		case unicode.IsSpace(r):
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// CorpusFingerprint combines per-file normalized checksums into one stable
// corpus-level fingerprint. Entries are sorted by path first, so the result
// is independent of walk order.
func CorpusFingerprint(c Calculator, files map[string][]byte) string {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	h := sha256.New()
	for _, p := range paths {
		h.Write([]byte(p))
		h.Write([]byte{0})
		h.Write([]byte(c.CalculateNormalized(files[p])))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
