// Package buf provides the owned byte buffer and read cursor used by the
// block decoders, plus bounds and endian helpers.
package buf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrCursorRange indicates a cursor operation left the read position
	// outside the buffer's live region.
	ErrCursorRange = errors.New("buf: cursor position out of range")
	// ErrVaruintUnterminated indicates a varuint ran past the end of the
	// available data without a terminating byte.
	ErrVaruintUnterminated = errors.New("buf: varuint didn't end before the buffer")
)

// Buffer is a growable byte buffer with a read cursor. The live region is the
// logical size, tracked separately from storage capacity: ReadFrom appends to
// the live region, Resize truncates or extends it, and all cursor operations
// are bounds-checked against it.
type Buffer struct {
	data []byte // live region; cap(data) is storage capacity
	pos  int
}

// New returns a Buffer with capacity for at least capacity bytes.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]byte, 0, capacity)}
}

// ReadFrom appends up to n bytes read from src to the live region, growing
// storage as needed. It returns the number of bytes appended, which is less
// than n only at end of stream. The returned error is nil on a full read,
// io.EOF when nothing could be read, io.ErrUnexpectedEOF on a partial read,
// or the underlying read error.
func (b *Buffer) ReadFrom(src io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	b.Reserve(len(b.data) + n)
	off := len(b.data)
	b.data = b.data[:off+n]
	m, err := io.ReadFull(src, b.data[off:])
	b.data = b.data[:off+m]
	return m, err
}

// Reserve grows storage capacity to at least n bytes, preserving content.
// No-op when capacity is already sufficient.
func (b *Buffer) Reserve(n int) {
	if n <= cap(b.data) {
		return
	}
	grown := make([]byte, len(b.data), n)
	copy(grown, b.data)
	b.data = grown
}

// Resize sets the logical size to n, growing storage if needed. Negative n is
// clamped to 0. Bytes exposed by growing are zero.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(b.data) {
		b.data = b.data[:n]
		return
	}
	b.Reserve(n)
	for len(b.data) < n {
		b.data = append(b.data, 0)
	}
}

// Find scans [start, end) for the first occurrence of c and returns its
// index, or -1 when absent. end < 0 means the logical size; both bounds are
// clamped to the live region.
func (b *Buffer) Find(c byte, start, end int) int {
	if start < 0 {
		start = 0
	}
	if end < 0 || end > len(b.data) {
		end = len(b.data)
	}
	if start >= end {
		return -1
	}
	i := bytes.IndexByte(b.data[start:end], c)
	if i < 0 {
		return -1
	}
	return start + i
}

// Bytes returns the live region. The slice aliases the buffer's storage.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the logical size.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the storage capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// checkPos validates the cursor after an advancing operation. The cursor may
// sit exactly at the logical size (end of data) but never beyond it.
func (b *Buffer) checkPos() error {
	if b.pos < 0 || b.pos > len(b.data) {
		return fmt.Errorf("%w: %d of %d", ErrCursorRange, b.pos, len(b.data))
	}
	return nil
}

// Seek sets the read cursor to pos.
func (b *Buffer) Seek(pos int) error {
	b.pos = pos
	return b.checkPos()
}

// AtEnd reports whether the cursor has reached the end of the live region.
func (b *Buffer) AtEnd() bool { return b.pos >= len(b.data) }

// CurrentByte returns the byte at the cursor without advancing, or 0 when
// the cursor is at the end of the data.
func (b *Buffer) CurrentByte() byte {
	if b.pos >= len(b.data) {
		return 0
	}
	return b.data[b.pos]
}

// ReadByte returns the byte at the cursor and advances past it.
func (b *Buffer) ReadByte() (byte, error) {
	b.pos++
	if err := b.checkPos(); err != nil {
		return 0, err
	}
	return b.data[b.pos-1], nil
}

// ReadVarUint decodes a variable-length unsigned integer at the cursor.
// Each byte contributes 7 bits, accumulated most-significant group first;
// the first byte with the high bit clear terminates the value.
func (b *Buffer) ReadVarUint() (int64, error) {
	var value int64
	for b.pos < len(b.data) {
		c := b.data[b.pos]
		b.pos++
		value = value<<7 | int64(c&0x7f)
		if c < 0x80 {
			return value, nil
		}
	}
	return 0, ErrVaruintUnterminated
}

// CurrentSlice returns the live region from the cursor onward, aliasing the
// buffer's storage.
func (b *Buffer) CurrentSlice() []byte { return b.data[b.pos:] }

// Remaining returns the number of bytes between the cursor and the end of
// the live region.
func (b *Buffer) Remaining() int { return len(b.data) - b.pos }

// Skip advances the cursor by n bytes.
func (b *Buffer) Skip(n int) error {
	b.pos += n
	return b.checkPos()
}

// ReadU32LE reads a little-endian uint32 at the cursor and advances by 4.
func (b *Buffer) ReadU32LE() (uint32, error) {
	start := b.pos
	b.pos += 4
	if err := b.checkPos(); err != nil {
		return 0, err
	}
	return U32LE(b.data[start:]), nil
}
