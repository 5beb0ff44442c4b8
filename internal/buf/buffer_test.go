package buf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// encodeVarUint produces the 7-bit continuation encoding the cursor decodes:
// most-significant group first, high bit set on every byte but the last.
func encodeVarUint(v int64) []byte {
	out := []byte{byte(v & 0x7f)}
	v >>= 7
	for v > 0 {
		out = append([]byte{byte(v&0x7f) | 0x80}, out...)
		v >>= 7
	}
	return out
}

func TestReadFromAppends(t *testing.T) {
	b := New(0)
	src := strings.NewReader("hello world")

	n, err := b.ReadFrom(src, 5)
	if err != nil || n != 5 {
		t.Fatalf("ReadFrom = %d, %v, want 5, nil", n, err)
	}
	n, err = b.ReadFrom(src, 100)
	if err != io.ErrUnexpectedEOF || n != 6 {
		t.Fatalf("partial ReadFrom = %d, %v, want 6, ErrUnexpectedEOF", n, err)
	}
	if got := string(b.Bytes()); got != "hello world" {
		t.Fatalf("buffer content = %q", got)
	}
	n, err = b.ReadFrom(src, 1)
	if err != io.EOF || n != 0 {
		t.Fatalf("ReadFrom at end = %d, %v, want 0, EOF", n, err)
	}
}

func TestReserveAndResize(t *testing.T) {
	b := New(4)
	if _, err := b.ReadFrom(bytes.NewReader([]byte{1, 2, 3}), 3); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	b.Reserve(2) // already sufficient, must preserve content
	if b.Len() != 3 || b.Cap() < 4 {
		t.Fatalf("Reserve shrank buffer: len=%d cap=%d", b.Len(), b.Cap())
	}
	b.Reserve(64)
	if b.Cap() < 64 || !bytes.Equal(b.Bytes(), []byte{1, 2, 3}) {
		t.Fatalf("Reserve lost content: cap=%d data=%v", b.Cap(), b.Bytes())
	}

	b.Resize(1)
	if !bytes.Equal(b.Bytes(), []byte{1}) {
		t.Fatalf("Resize(1) = %v", b.Bytes())
	}
	b.Resize(-5)
	if b.Len() != 0 {
		t.Fatalf("Resize(-5) should clamp to 0, got %d", b.Len())
	}
	b.Resize(3)
	if !bytes.Equal(b.Bytes(), []byte{0, 0, 0}) {
		t.Fatalf("Resize growth should expose zeros, got %v", b.Bytes())
	}
}

func TestFind(t *testing.T) {
	b := New(0)
	if _, err := b.ReadFrom(strings.NewReader("abcabc"), 6); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	if i := b.Find('b', 0, -1); i != 1 {
		t.Fatalf("Find(b) = %d, want 1", i)
	}
	if i := b.Find('b', 2, -1); i != 4 {
		t.Fatalf("Find(b, 2) = %d, want 4", i)
	}
	if i := b.Find('b', 2, 4); i != -1 {
		t.Fatalf("Find(b, 2, 4) = %d, want -1", i)
	}
	if i := b.Find('z', 0, -1); i != -1 {
		t.Fatalf("Find(z) = %d, want -1", i)
	}
	if i := b.Find('a', -3, 100); i != 0 {
		t.Fatalf("Find with clamped bounds = %d, want 0", i)
	}
}

func TestCursorOps(t *testing.T) {
	b := New(0)
	if _, err := b.ReadFrom(bytes.NewReader([]byte{0x10, 0x20, 0x30, 0x40, 0x50}), 5); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	if b.CurrentByte() != 0x10 || b.AtEnd() {
		t.Fatalf("fresh cursor state wrong")
	}
	c, err := b.ReadByte()
	if err != nil || c != 0x10 {
		t.Fatalf("ReadByte = %#x, %v", c, err)
	}
	if b.Remaining() != 4 || !bytes.Equal(b.CurrentSlice(), []byte{0x20, 0x30, 0x40, 0x50}) {
		t.Fatalf("cursor view wrong after ReadByte")
	}
	if err := b.Skip(3); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if b.CurrentByte() != 0x50 {
		t.Fatalf("CurrentByte after Skip = %#x", b.CurrentByte())
	}
	if err := b.Skip(1); err != nil || !b.AtEnd() {
		t.Fatalf("Skip to end: %v, atEnd=%v", err, b.AtEnd())
	}
	if b.CurrentByte() != 0 {
		t.Fatalf("CurrentByte at end should be 0")
	}
	if _, err := b.ReadByte(); !errors.Is(err, ErrCursorRange) {
		t.Fatalf("ReadByte past end = %v, want ErrCursorRange", err)
	}

	if err := b.Seek(2); err != nil {
		t.Fatalf("Seek(2): %v", err)
	}
	if b.CurrentByte() != 0x30 {
		t.Fatalf("CurrentByte after Seek = %#x", b.CurrentByte())
	}
	if err := b.Seek(-1); !errors.Is(err, ErrCursorRange) {
		t.Fatalf("Seek(-1) = %v, want ErrCursorRange", err)
	}
	if err := b.Seek(99); !errors.Is(err, ErrCursorRange) {
		t.Fatalf("Seek(99) = %v, want ErrCursorRange", err)
	}
}

func TestReadU32LE(t *testing.T) {
	b := New(0)
	if _, err := b.ReadFrom(bytes.NewReader([]byte{0x01, 0x23, 0x45, 0x67, 0xff}), 5); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	v, err := b.ReadU32LE()
	if err != nil || v != 0x67452301 {
		t.Fatalf("ReadU32LE = %#x, %v", v, err)
	}
	if b.Remaining() != 1 {
		t.Fatalf("cursor should have advanced by 4")
	}
	if _, err := b.ReadU32LE(); !errors.Is(err, ErrCursorRange) {
		t.Fatalf("short ReadU32LE = %v, want ErrCursorRange", err)
	}
}

func TestReadVarUintRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 127, 128, 16384, 1 << 35} {
		b := New(0)
		if _, err := b.ReadFrom(bytes.NewReader(encodeVarUint(v)), 16); err != io.ErrUnexpectedEOF && err != nil {
			t.Fatalf("ReadFrom: %v", err)
		}
		got, err := b.ReadVarUint()
		if err != nil {
			t.Fatalf("ReadVarUint(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("ReadVarUint = %d, want %d", got, v)
		}
		if !b.AtEnd() {
			t.Fatalf("varuint for %d left %d trailing bytes", v, b.Remaining())
		}
	}
}

func TestReadVarUintUnterminated(t *testing.T) {
	b := New(0)
	if _, err := b.ReadFrom(bytes.NewReader([]byte{0x81, 0x82, 0x83}), 3); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if _, err := b.ReadVarUint(); !errors.Is(err, ErrVaruintUnterminated) {
		t.Fatalf("unterminated varuint = %v, want ErrVaruintUnterminated", err)
	}
}
