// Package dump renders ebakup datafiles as human-readable text. The leading
// magic string selects one of three dumpers (content data, backup data, main
// database); each negotiates the block geometry, validates every block
// through blockio, and writes one "key: value" line per decoded field,
// framed by dump start/complete events. Any integrity violation aborts the
// whole dump.
package dump

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ebakup/edbdump/internal/format"
)

// headProbe is how many leading bytes are examined to recognize the file
// type.
const headProbe = 100

// Dumper decodes one datafile kind from r and renders it to w.
type Dumper func(r io.ReadSeeker, w io.Writer) error

// Dispatch returns the dumper matching the file's leading magic string.
func Dispatch(r io.ReadSeeker) (Dumper, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("dump: seek to head: %w", err)
	}
	head := make([]byte, headProbe)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("dump: read head: %w", err)
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, []byte(format.MagicContentData)):
		return dumpContentFile, nil
	case bytes.HasPrefix(head, []byte(format.MagicDatabaseV1)):
		return dumpMainFile, nil
	case bytes.HasPrefix(head, []byte(format.MagicBackupData)):
		return dumpBackupFile, nil
	}
	return nil, format.ErrUnrecognizedFile
}

// Dump recognizes the datafile in r and renders it to w between the dump
// start and dump complete events.
func Dump(r io.ReadSeeker, w io.Writer) error {
	dumper, err := Dispatch(r)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "event: dump start\n"); err != nil {
		return err
	}
	if err := dumper(r, w); err != nil {
		return err
	}
	_, err = io.WriteString(w, "event: dump complete\n")
	return err
}

// printer accumulates the first write error so rendering code can stay
// linear; callers check err once per block.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) write(b []byte) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.Write(b)
}
