package format

import "errors"

var (
	// ErrNoBlockSize indicates the blocksize setting was missing or not
	// positioned inside the first block.
	ErrNoBlockSize = errors.New("format: no blocksize specified")
	// ErrNoBlockSum indicates the block checksum setting was missing or not
	// positioned inside the first block.
	ErrNoBlockSum = errors.New("format: no block checksum specified")
	// ErrUnterminatedValue indicates a settings value had no closing newline
	// within the negotiation window.
	ErrUnterminatedValue = errors.New("format: failed to find end of value")
	// ErrBadNumber indicates a value expected to be decimal digits was not.
	ErrBadNumber = errors.New("format: could not parse as value")
	// ErrVaruintUnterminated indicates a varuint ran past the end of the
	// available data without a terminating byte.
	ErrVaruintUnterminated = errors.New("format: varuint didn't end before the buffer")

	// ErrNoData indicates a block read returned nothing although the stream
	// had not reached its end.
	ErrNoData = errors.New("format: no data even though not at end of stream")
	// ErrShortBlock indicates a block read returned fewer bytes than the
	// negotiated block size.
	ErrShortBlock = errors.New("format: incomplete block")
	// ErrChecksumSize indicates the configured digest produced output of a
	// length other than the negotiated checksum size.
	ErrChecksumSize = errors.New("format: block checksum did not have expected size")
	// ErrChecksumMismatch indicates a block's stored checksum did not match
	// the digest computed over its payload.
	ErrChecksumMismatch = errors.New("format: block checksum mismatch")

	// ErrTrailingGarbage indicates a non-zero byte inside a padding region.
	ErrTrailingGarbage = errors.New("format: trailing garbage")
	// ErrNoSettingEnd indicates a settings line had no terminating newline.
	ErrNoSettingEnd = errors.New("format: failed to find end of setting")
	// ErrBadSettingLine indicates a settings line without a ':' separator.
	ErrBadSettingLine = errors.New("format: no ':' in setting line")
	// ErrWrongType indicates the type line did not match the file magic.
	ErrWrongType = errors.New("format: wrong type line for file magic")
	// ErrUnknownTag indicates an unrecognized record tag byte.
	ErrUnknownTag = errors.New("format: unknown data type")

	// ErrNotSingleBlock indicates a main database file that was not exactly
	// one block long.
	ErrNotSingleBlock = errors.New("format: main file did not contain exactly 1 data block")
	// ErrNameNewline indicates a directory or file name containing a
	// newline, which the dump format cannot represent.
	ErrNameNewline = errors.New("format: LF in file names not implemented")

	// ErrNegativeTime indicates a negative seconds-after-epoch value, which
	// the calendar formatter deliberately does not handle.
	ErrNegativeTime = errors.New("format: negative timestamps are not correctly handled")
	// ErrBadMtime indicates a packed mtime field with impossible contents.
	ErrBadMtime = errors.New("format: invalid mtime field")

	// ErrUnrecognizedFile indicates no decoder matched the file's leading
	// bytes.
	ErrUnrecognizedFile = errors.New("format: failed to recognize the file type")
)
