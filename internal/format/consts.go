// Package format houses the low-level definitions of the ebakup datafile
// container: magic strings, settings markers, record tags, the varuint and
// mtime codecs, and the epoch calendar formatter. The goal is to keep the
// byte-level knowledge in one place so the decoders above it can stay focused
// on orchestration.
package format

// Magic prefixes identifying the datafile kind. Content data files carry the
// newline in their magic; the database and backup magics are matched without
// it because the settings renderer verifies the full type line separately.
const (
	MagicContentData = "ebakup content data\n"
	MagicDatabaseV1  = "ebakup database v1"
	MagicBackupData  = "ebakup backup data"
)

// Settings markers located textually in the raw head of the stream during
// negotiation. Both include the preceding newline so a key at the start of a
// later line cannot be confused with the tail of another value.
const (
	MarkerBlockSize = "\nedb-blocksize:"
	MarkerBlockSum  = "\nedb-blocksum:"
)

// NegotiationWindow is how many bytes of the raw stream head are scanned for
// the settings markers.
const NegotiationWindow = 10000

// Record tags. Content data blocks use the 0xdd/0xa1/0xa0 family; backup
// data blocks use 0x90/0x91. A zero tag starts the padding region in both.
const (
	TagPadding      = 0x00
	TagContentEntry = 0xdd
	TagChanged      = 0xa1
	TagRestored     = 0xa0
	TagDir          = 0x90
	TagFile         = 0x91
)

// ChecksumSHA256 is the only checksum algorithm name the formats declare.
const ChecksumSHA256 = "sha256"
