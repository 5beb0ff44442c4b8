package format

import (
	"errors"
	"testing"
)

func TestParseMtimeKnownFields(t *testing.T) {
	cases := []struct {
		name  string
		field []byte
		want  string
	}{
		{
			name:  "with nanoseconds",
			field: []byte{0xdf, 0x07, 0x42, 0xa0, 0x42, 0x30, 0x23, 0x7e, 0xb6},
			want:  "2015-02-20 12:53:22.765430000",
		},
		{
			name:  "whole second",
			field: []byte{0xdd, 0x07, 0xa0, 0xdb, 0x0a, 0x80, 0x00, 0x00, 0x00},
			want:  "2013-07-22 10:00:00",
		},
	}
	for _, tc := range cases {
		m, next, err := ParseMtime(tc.field, 0)
		if err != nil {
			t.Fatalf("%s: ParseMtime: %v", tc.name, err)
		}
		if next != MtimeSize {
			t.Fatalf("%s: next = %d, want %d", tc.name, next, MtimeSize)
		}
		if got := m.String(); got != tc.want {
			t.Fatalf("%s: Mtime = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseMtimeLeapDay(t *testing.T) {
	// 2016-02-29 00:00:00: day-of-year 59 in a leap year.
	field := []byte{0xe0, 0x07, 0x00, 0xd4, 0x4d, 0x00, 0x00, 0x00, 0x00}
	m, _, err := ParseMtime(field, 0)
	if err != nil {
		t.Fatalf("ParseMtime: %v", err)
	}
	if got := m.String(); got != "2016-02-29 00:00:00" {
		t.Fatalf("Mtime = %q, want 2016-02-29 00:00:00", got)
	}
}

func TestParseMtimeErrors(t *testing.T) {
	if _, _, err := ParseMtime([]byte{1, 2, 3}, 0); !errors.Is(err, ErrBadMtime) {
		t.Fatalf("truncated field = %v, want ErrBadMtime", err)
	}
	zeroYear := []byte{0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if _, _, err := ParseMtime(zeroYear, 0); !errors.Is(err, ErrBadMtime) {
		t.Fatalf("zero year with time = %v, want ErrBadMtime", err)
	}
}

func TestParseMtimeUnset(t *testing.T) {
	// A zero year with no seconds and no nanoseconds marks an unset mtime.
	m, _, err := ParseMtime(make([]byte, MtimeSize), 0)
	if err != nil {
		t.Fatalf("ParseMtime: %v", err)
	}
	if m.Year != 0 || m.Nanosecond != 0 {
		t.Fatalf("unset mtime decoded as %+v", m)
	}
}
