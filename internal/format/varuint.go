package format

// ParseVarUint decodes the variable-length unsigned integer at data[off] and
// returns the value and the offset of the first byte after it. Each byte
// contributes 7 bits, least significant group first (the writer's canonical
// encoding, used by database and backup files); the first byte with the high
// bit clear terminates the value.
//
// Content data files accumulate their varuint groups most significant first
// instead; that decoder lives on the cursor buffer.
func ParseVarUint(data []byte, off int) (int64, int, error) {
	var value int64
	var shift uint
	for off < len(data) {
		c := data[off]
		off++
		value |= int64(c&0x7f) << shift
		if c < 0x80 {
			return value, off, nil
		}
		shift += 7
	}
	return 0, off, ErrVaruintUnterminated
}

// AppendVarUint appends the canonical least-significant-first encoding of v
// to dst. v must be non-negative.
func AppendVarUint(dst []byte, v int64) []byte {
	if v < 0 {
		panic("format: cannot encode negative varuint")
	}
	for v > 0x7f {
		dst = append(dst, byte(v&0x7f)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}
