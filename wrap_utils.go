package resumark

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrapText word-wraps text to limit columns. With softWrap, words longer than
// limit are broken as well. A limit below one disables wrapping.
func wrapText(text string, limit int, softWrap bool) string {
	if limit < 1 {
		return text
	}
	wrapped := wordwrap.String(text, limit)
	if softWrap {
		wrapped = wrap.String(wrapped, limit)
	}
	return wrapped
}

// centerLine pads line on the left so it sits in the middle of width columns.
func centerLine(line string, width int) string {
	if width < 1 {
		return line
	}
	pad := (width - ansi.PrintableRuneWidth(line)) / 2
	if pad <= 0 {
		return line
	}
	return strings.Repeat(" ", pad) + line
}

// clipLine cuts line to width columns without an ellipsis.
func clipLine(line string, width int) string {
	if width < 1 || ansi.PrintableRuneWidth(line) <= width {
		return line
	}
	return truncate.String(line, uint(width))
}

// indentLines indents every line of text by n spaces.
func indentLines(text string, n int) string {
	if n <= 0 {
		return text
	}
	return indent.String(text, uint(n))
}
