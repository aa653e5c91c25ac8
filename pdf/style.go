package pdf

import (
	"strings"

	"pkt.systems/resumark"
)

const (
	ptToMM = 25.4 / 72
	// spacerGlyph is drawn in the background color once per indent step.
	spacerGlyph   = "    "
	bulletIndent  = 4.0
	bulletGap     = 2.0
	minLineHeight = 0.1
)

func fontStyle(st resumark.Style) string {
	var b strings.Builder
	if st.Bold {
		b.WriteByte('B')
	}
	if st.Italic {
		b.WriteByte('I')
	}
	return b.String()
}

func alignString(a resumark.Alignment) string {
	switch a {
	case resumark.AlignCenter:
		return "C"
	case resumark.AlignRight:
		return "R"
	default:
		return "L"
	}
}
