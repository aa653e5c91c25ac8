package resumark

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports source bytes that are not UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports source bytes that look like a binary file.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	// Sources shorter than this are only rejected for NUL bytes.
	minControlSample = 64
	// Percentage of control bytes at which a source counts as binary.
	maxControlPct = 2
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ValidateSource reports whether src can be ResuMarkup source text. Tabs,
// carriage returns and form feeds are text; NUL bytes and a high share of
// other control bytes are not.
func ValidateSource(src []byte) error {
	if !utf8.Valid(src) {
		for off := 0; off < len(src); {
			r, size := utf8.DecodeRune(src[off:])
			if r == utf8.RuneError && size == 1 {
				return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, off)
			}
			off += size
		}
		return ErrInvalidUTF8
	}
	if off := bytes.IndexByte(src, 0x00); off >= 0 {
		return fmt.Errorf("%w: NUL at byte %d", ErrBinaryInput, off)
	}
	if len(src) < minControlSample {
		return nil
	}
	control := 0
	for _, b := range src {
		if isControlByte(b) {
			control++
		}
	}
	if control*100 >= len(src)*maxControlPct {
		return fmt.Errorf("%w: %d of %d bytes are control characters", ErrBinaryInput, control, len(src))
	}
	return nil
}

// SourceText validates src and returns it as a string without a leading
// UTF-8 byte order mark.
func SourceText(src []byte) (string, error) {
	src = bytes.TrimPrefix(src, utf8BOM)
	if err := ValidateSource(src); err != nil {
		return "", err
	}
	return string(src), nil
}

func isControlByte(b byte) bool {
	switch {
	case b == '\t', b == '\n', b == '\v', b == '\f', b == '\r':
		return false
	case b < 0x20:
		return true
	default:
		return b == 0x7F
	}
}
