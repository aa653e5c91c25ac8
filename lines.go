package resumark

import "strings"

// Line is one raw source line with its 1-based line number.
type Line struct {
	Text   string
	Number int
}

// SplitLines splits source text into raw lines. Empty lines are kept and a
// trailing carriage return is dropped from every line.
func SplitLines(src string) []string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func numberLines(raw []string) []Line {
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Text: text, Number: i + 1}
	}
	return lines
}
