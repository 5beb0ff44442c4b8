package blockio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ebakup/edbdump/internal/buf"
	"github.com/ebakup/edbdump/internal/format"
)

// Reader returns validated block payloads from src in stream order.
type Reader struct {
	src    io.Reader
	params Params
}

// NewReader returns a Reader decoding blocks of the negotiated geometry.
func NewReader(src io.Reader, params Params) *Reader {
	return &Reader{src: src, params: params}
}

// Params returns the negotiated geometry the reader decodes with.
func (r *Reader) Params() Params { return r.params }

// Next reads one block, verifies its checksum, and returns the payload with
// the checksum bytes stripped and the cursor at the start. It returns io.EOF
// once the stream has no further blocks. Any other shortfall, and any
// checksum disagreement, is fatal.
func (r *Reader) Next() (*buf.Buffer, error) {
	block := buf.New(r.params.BlockSize)
	n, err := block.ReadFrom(r.src, r.params.BlockSize)
	if n == 0 {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("blockio: %w (%v)", format.ErrNoData, err)
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("blockio: read block: %w", err)
	}
	if n < r.params.BlockSize {
		return nil, fmt.Errorf("%w (%d octets instead of %d)",
			format.ErrShortBlock, n, r.params.BlockSize)
	}

	data := block.Bytes()
	sum := r.params.Algorithm.Sum(data[:r.params.DataSize])
	if len(sum) != r.params.SumSize {
		return nil, fmt.Errorf("%w (%d vs %d)",
			format.ErrChecksumSize, len(sum), r.params.SumSize)
	}
	if !bytes.Equal(sum, data[r.params.DataSize:]) {
		return nil, format.ErrChecksumMismatch
	}

	block.Resize(r.params.DataSize)
	return block, nil
}
