package resumark

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m|\x1b\]8;;[^\x1b]*\x1b\\`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func previewLines(t *testing.T, width int, theme Theme, lines ...string) string {
	t.Helper()
	doc, err := Compile(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var out bytes.Buffer
	if err := Preview(PreviewRequest{
		Document: doc,
		Writer:   &out,
		Width:    width,
		Theme:    theme,
		Options:  []RenderOption{WithOSC8(false)},
	}); err != nil {
		t.Fatalf("preview: %v", err)
	}
	return out.String()
}
