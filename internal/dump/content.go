package dump

import (
	"fmt"
	"io"

	"github.com/ebakup/edbdump/internal/blockio"
	"github.com/ebakup/edbdump/internal/buf"
	"github.com/ebakup/edbdump/internal/format"
)

// dumpContentFile renders a content data file: the settings block followed
// by any number of content blocks.
func dumpContentFile(r io.ReadSeeker, w io.Writer) error {
	params, err := blockio.Negotiate(r)
	if err != nil {
		return err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("dump: seek to first block: %w", err)
	}
	blocks := blockio.NewReader(r, params)

	settings, err := blocks.Next()
	if err != nil {
		return err
	}
	p := &printer{w: w}
	if err := renderSettingsBlock(settings, p, ""); err != nil {
		return err
	}
	for {
		block, err := blocks.Next()
		if err == io.EOF {
			return p.err
		}
		if err != nil {
			return err
		}
		if err := dumpContentBlock(block, p); err != nil {
			return err
		}
	}
}

// contentState drives the per-block record machine. A block is a run of
// entries, each optionally followed by change/restore sub-entries, ended by
// a zero-padding region or the block boundary.
type contentState int

const (
	stateEntryOrEnd contentState = iota
	stateSubEntries
	statePadding
)

// dumpContentBlock renders one validated content block payload.
func dumpContentBlock(block *buf.Buffer, p *printer) error {
	if err := block.Seek(0); err != nil {
		return err
	}
	var sumLen int64
	state := stateEntryOrEnd
	for {
		switch state {
		case stateEntryOrEnd:
			if block.AtEnd() {
				return p.err
			}
			switch tag := block.CurrentByte(); tag {
			case format.TagContentEntry:
				var err error
				sumLen, err = dumpContentEntry(block, p)
				if err != nil {
					return err
				}
				state = stateSubEntries
			case format.TagPadding:
				state = statePadding
			default:
				return fmt.Errorf("%w: %d", format.ErrUnknownTag, tag)
			}
		case stateSubEntries:
			switch block.CurrentByte() {
			case format.TagChanged:
				if err := dumpChangedEntry(block, p, sumLen); err != nil {
					return err
				}
			case format.TagRestored:
				if err := dumpRestoredEntry(block, p); err != nil {
					return err
				}
			default:
				state = stateEntryOrEnd
			}
		case statePadding:
			for !block.AtEnd() {
				c, err := block.ReadByte()
				if err != nil {
					return err
				}
				if c != 0 {
					return fmt.Errorf("content block: %w", format.ErrTrailingGarbage)
				}
			}
			return p.err
		}
	}
}

// dumpContentEntry renders a 0xdd entry and returns its checksum length,
// which the following change sub-entries reuse. The content identifier and
// checksum share a single region of max(cidlen, sumlen) bytes; when the
// lengths are equal the checksum is the identifier and is rendered as "*".
func dumpContentEntry(block *buf.Buffer, p *printer) (int64, error) {
	if err := block.Skip(1); err != nil {
		return 0, err
	}
	cidLen, err := block.ReadVarUint()
	if err != nil {
		return 0, err
	}
	sumLen, err := block.ReadVarUint()
	if err != nil {
		return 0, err
	}
	regionLen := cidLen
	if sumLen > regionLen {
		regionLen = sumLen
	}
	region, ok := buf.Slice(block.CurrentSlice(), 0, int(regionLen))
	if !ok {
		return 0, fmt.Errorf("%w: %d-byte cid/checksum region", buf.ErrCursorRange, regionLen)
	}
	p.printf("cid: %x\n", region[:cidLen])
	if cidLen == sumLen {
		p.printf("checksum: *\n")
	} else {
		p.printf("checksum: %x\n", region[:sumLen])
	}
	if err := block.Skip(int(regionLen)); err != nil {
		return 0, err
	}
	if err := dumpTimeRange(block, p); err != nil {
		return 0, err
	}
	return sumLen, nil
}

// dumpChangedEntry renders a 0xa1 sub-entry: a new checksum of the entry's
// sumlen plus the time range it was observed.
func dumpChangedEntry(block *buf.Buffer, p *printer, sumLen int64) error {
	if err := block.Skip(1); err != nil {
		return err
	}
	sum, ok := buf.Slice(block.CurrentSlice(), 0, int(sumLen))
	if !ok {
		return fmt.Errorf("%w: %d-byte changed checksum", buf.ErrCursorRange, sumLen)
	}
	p.printf("changed: %x\n", sum)
	if err := block.Skip(int(sumLen)); err != nil {
		return err
	}
	return dumpTimeRange(block, p)
}

// dumpRestoredEntry renders a 0xa0 sub-entry: a time range only.
func dumpRestoredEntry(block *buf.Buffer, p *printer) error {
	if err := block.Skip(1); err != nil {
		return err
	}
	p.printf("restored\n")
	return dumpTimeRange(block, p)
}

// dumpTimeRange renders the first/last timestamp pair at the cursor.
func dumpTimeRange(block *buf.Buffer, p *printer) error {
	first, err := block.ReadU32LE()
	if err != nil {
		return err
	}
	last, err := block.ReadU32LE()
	if err != nil {
		return err
	}
	firstText, err := format.FormatSecondsAfterEpoch(int64(first))
	if err != nil {
		return err
	}
	lastText, err := format.FormatSecondsAfterEpoch(int64(last))
	if err != nil {
		return err
	}
	p.printf("first: %s\nlast: %s\n", firstText, lastText)
	return p.err
}
