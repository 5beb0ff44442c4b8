// Package blockio reads the fixed-size, checksummed blocks of an ebakup
// datafile. Negotiate determines the block geometry and checksum algorithm
// from the raw head of the stream; Reader then returns one validated payload
// per block.
package blockio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ebakup/edbdump/internal/digest"
	"github.com/ebakup/edbdump/internal/format"
)

// Params is the negotiated block geometry. The values are fixed once for the
// whole stream; every block is BlockSize bytes on disk, of which the first
// DataSize carry payload and the last SumSize the checksum.
type Params struct {
	BlockSize int
	DataSize  int
	SumSize   int
	Algorithm digest.Algorithm
}

// Negotiate scans the head of the stream for the blocksize and checksum
// settings and returns the resulting geometry. The reader is left at an
// unspecified position; callers seek before reading blocks.
func Negotiate(r io.ReadSeeker) (Params, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Params{}, fmt.Errorf("blockio: seek to head: %w", err)
	}
	head := make([]byte, format.NegotiationWindow)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Params{}, fmt.Errorf("blockio: read head: %w", err)
	}
	head = head[:n]

	sizeVal, sizePos, err := settingValue(head, format.MarkerBlockSize)
	if err != nil {
		return Params{}, fmt.Errorf("blocksize: %w", err)
	}
	blockSize, err := parseDecimal(sizeVal)
	if err != nil {
		return Params{}, fmt.Errorf("blocksize: %w", err)
	}
	if sizePos > blockSize {
		return Params{}, fmt.Errorf("blocksize setting outside first block: %w", format.ErrNoBlockSize)
	}

	sumVal, sumPos, err := settingValue(head, format.MarkerBlockSum)
	if err != nil {
		return Params{}, fmt.Errorf("blocksum: %w", err)
	}
	if sumPos > blockSize {
		return Params{}, fmt.Errorf("blocksum setting outside first block: %w", format.ErrNoBlockSum)
	}
	algo, err := digest.Lookup(string(sumVal))
	if err != nil {
		return Params{}, err
	}

	p := Params{
		BlockSize: blockSize,
		SumSize:   algo.Size(),
		DataSize:  blockSize - algo.Size(),
		Algorithm: algo,
	}
	if p.DataSize <= 0 {
		return Params{}, fmt.Errorf("blockio: block size %d leaves no room for a %d-byte %s checksum",
			p.BlockSize, p.SumSize, algo.Name())
	}
	return p, nil
}

// settingValue locates marker in head and returns the value bytes up to the
// next newline along with the marker's offset, which must lie inside the
// first block for the negotiation to be trusted.
func settingValue(head []byte, marker string) ([]byte, int, error) {
	i := bytes.Index(head, []byte(marker))
	if i < 0 {
		if marker == format.MarkerBlockSum {
			return nil, 0, format.ErrNoBlockSum
		}
		return nil, 0, format.ErrNoBlockSize
	}
	start := i + len(marker)
	end := bytes.IndexByte(head[start:], '\n')
	if end < 0 {
		return nil, 0, format.ErrUnterminatedValue
	}
	return head[start : start+end], i, nil
}

// parseDecimal converts s to a non-negative int. Every byte must be an ASCII
// digit; anything else fails rather than being skipped.
func parseDecimal(s []byte) (int, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty value", format.ErrBadNumber)
	}
	value := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", format.ErrBadNumber, s)
		}
		value = value*10 + int(c-'0')
	}
	return value, nil
}
