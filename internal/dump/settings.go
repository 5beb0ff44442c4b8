package dump

import (
	"fmt"

	"github.com/ebakup/edbdump/internal/buf"
	"github.com/ebakup/edbdump/internal/format"
)

// renderSettingsBlock writes the settings block's lines: the first line as
// "type: ...", every later line as "setting: ...". A zero byte at the start
// of a line begins the padding region, which must be all zeros to the end of
// the block. When wantType is non-empty the first line must match it.
func renderSettingsBlock(block *buf.Buffer, p *printer, wantType string) error {
	data := block.Bytes()
	done := 0
	for done < len(data) {
		if data[done] == 0 {
			for ; done < len(data); done++ {
				if data[done] != 0 {
					return fmt.Errorf("settings block: %w", format.ErrTrailingGarbage)
				}
			}
			return p.err
		}
		end := block.Find('\n', done, -1)
		if end < 0 {
			return format.ErrNoSettingEnd
		}
		if done == 0 {
			if wantType != "" && string(data[:end]) != wantType {
				return fmt.Errorf("%w: %q vs %q", format.ErrWrongType, data[:end], wantType)
			}
			p.printf("type: ")
		} else {
			if block.Find(':', done, end) < 0 {
				return format.ErrBadSettingLine
			}
			p.printf("setting: ")
		}
		p.write(data[done : end+1])
		done = end + 1
	}
	return p.err
}
