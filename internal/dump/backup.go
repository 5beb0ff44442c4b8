package dump

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ebakup/edbdump/internal/blockio"
	"github.com/ebakup/edbdump/internal/buf"
	"github.com/ebakup/edbdump/internal/format"
)

// dumpBackupFile renders a backup data file: the settings block (whose type
// line must match the magic) followed by blocks of directory and file
// records.
func dumpBackupFile(r io.ReadSeeker, w io.Writer) error {
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
	if err := renderSettingsBlock(settings, p, format.MagicBackupData); err != nil {
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
		if err := dumpBackupBlock(block, p); err != nil {
			return err
		}
	}
}

// dumpBackupBlock renders one validated backup block payload. Backup records
// use the writer's canonical least-significant-first varuint encoding.
func dumpBackupBlock(block *buf.Buffer, p *printer) error {
	data := block.Bytes()
	done := 0
	for done < len(data) {
		switch tag := data[done]; tag {
		case format.TagPadding:
			for ; done < len(data); done++ {
				if data[done] != 0 {
					return fmt.Errorf("backup block: %w", format.ErrTrailingGarbage)
				}
			}
			return p.err
		case format.TagDir:
			var err error
			done, err = dumpDirRecord(data, done+1, p)
			if err != nil {
				return err
			}
		case format.TagFile:
			var err error
			done, err = dumpFileRecord(data, done+1, p)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("backup block: %w: %d", format.ErrUnknownTag, tag)
		}
	}
	return p.err
}

// dumpDirRecord renders a 0x90 record: directory id, parent id, and name.
func dumpDirRecord(data []byte, done int, p *printer) (int, error) {
	dirID, done, err := format.ParseVarUint(data, done)
	if err != nil {
		return done, err
	}
	parent, done, err := format.ParseVarUint(data, done)
	if err != nil {
		return done, err
	}
	name, done, err := readName(data, done)
	if err != nil {
		return done, err
	}
	p.printf("dir: (%d-%d)", parent, dirID)
	p.write(name)
	p.printf("\n")
	return done, p.err
}

// dumpFileRecord renders a 0x91 record: parent id, name, content id, size,
// and last-modified time.
func dumpFileRecord(data []byte, done int, p *printer) (int, error) {
	parent, done, err := format.ParseVarUint(data, done)
	if err != nil {
		return done, err
	}
	name, done, err := readName(data, done)
	if err != nil {
		return done, err
	}
	cidLen, done, err := format.ParseVarUint(data, done)
	if err != nil {
		return done, err
	}
	cid, ok := buf.Slice(data, done, int(cidLen))
	if !ok {
		return done, fmt.Errorf("%w: %d-byte cid", buf.ErrCursorRange, cidLen)
	}
	done += int(cidLen)
	size, done, err := format.ParseVarUint(data, done)
	if err != nil {
		return done, err
	}
	mtime, done, err := format.ParseMtime(data, done)
	if err != nil {
		return done, err
	}
	p.printf("file: (%d)", parent)
	p.write(name)
	p.printf("\ncid: %x\nsize: %d\nmtime: %s\n", cid, size, mtime)
	return done, p.err
}

// readName reads a varuint-prefixed name. Names containing a newline cannot
// be represented in the line-oriented dump and are rejected.
func readName(data []byte, done int) ([]byte, int, error) {
	nameLen, done, err := format.ParseVarUint(data, done)
	if err != nil {
		return nil, done, err
	}
	name, ok := buf.Slice(data, done, int(nameLen))
	if !ok {
		return nil, done, fmt.Errorf("%w: %d-byte name", buf.ErrCursorRange, nameLen)
	}
	if bytes.IndexByte(name, '\n') >= 0 {
		return nil, done, format.ErrNameNewline
	}
	return name, done + int(nameLen), nil
}
