// Package digest provides the checksum algorithms a datafile can declare in
// its settings block. Negotiation looks an algorithm up by its declared name
// and binds it for the remainder of the decode.
package digest

import (
	"crypto/sha256"
	"errors"
	"fmt"
)

// ErrUnsupported indicates a checksum algorithm name this decoder cannot
// interpret.
var ErrUnsupported = errors.New("digest: unsupported checksum algorithm")

// Algorithm computes block checksums.
type Algorithm interface {
	// Name returns the name the format declares the algorithm under.
	Name() string
	// Size returns the digest length in bytes.
	Size() int
	// Sum returns the digest of data. len(Sum(data)) == Size().
	Sum(data []byte) []byte
}

type sha256Algorithm struct{}

func (sha256Algorithm) Name() string { return "sha256" }
func (sha256Algorithm) Size() int    { return sha256.Size }
func (sha256Algorithm) Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Lookup returns the algorithm registered under name. Unknown names fail
// with ErrUnsupported; there is no default algorithm.
func Lookup(name string) (Algorithm, error) {
	switch name {
	case "sha256":
		return sha256Algorithm{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}
