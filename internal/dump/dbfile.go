package dump

import (
	"fmt"
	"io"

	"github.com/ebakup/edbdump/internal/blockio"
	"github.com/ebakup/edbdump/internal/format"
)

// dumpMainFile renders a main database file, which consists of exactly one
// block: the settings block. Anything beyond it is a structural error.
func dumpMainFile(r io.ReadSeeker, w io.Writer) error {
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
	var trailing [1]byte
	if n, _ := r.Read(trailing[:]); n > 0 {
		return format.ErrNotSingleBlock
	}
	p := &printer{w: w}
	return renderSettingsBlock(settings, p, format.MagicDatabaseV1)
}
