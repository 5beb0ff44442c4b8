// Package edb is the public entry point for dumping ebakup datafiles.
//
// An ebakup datafile is a sequence of equal-sized blocks, each carrying a
// payload followed by a checksum of that payload. The first block holds the
// file's type line and the settings that define the block geometry. The
// functions here recognize the file kind from its magic string, verify every
// block checksum, and render the decoded contents as text, one "key: value"
// line per field.
package edb

import (
	"bytes"
	"io"

	"github.com/ebakup/edbdump/internal/dump"
	"github.com/ebakup/edbdump/internal/mmfile"
)

// Dump decodes the datafile in r and writes its rendered form to w. The
// output is framed by "event: dump start" and "event: dump complete" lines;
// an incomplete dump means the file failed validation partway through.
func Dump(r io.ReadSeeker, w io.Writer) error {
	return dump.Dump(r, w)
}

// DumpFile memory-maps the datafile at path and renders it to w.
func DumpFile(path string, w io.Writer) error {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return err
	}
	dumpErr := dump.Dump(bytes.NewReader(data), w)
	if cleanupErr := cleanup(); dumpErr == nil {
		dumpErr = cleanupErr
	}
	return dumpErr
}
