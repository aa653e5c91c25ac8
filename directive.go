package resumark

import "strings"

// DirectiveSentinel starts every directive line.
const DirectiveSentinel = "#+"

// Directive keys understood by the compiler.
const (
	KeyTitleSize      = "TITLESIZE"
	KeySubtitleSize   = "SUBTITLESIZE"
	KeyItemSize       = "ITEMSIZE"
	KeySectionSize    = "SECTIONSIZE"
	KeyDefaultSize    = "DEFAULTSIZE"
	KeyMargins        = "MARGINS"
	KeyFontPath       = "FONTPATH"
	KeyFontName       = "FONTNAME"
	KeyAuthor         = "AUTHOR"
	KeyInfo           = "INFO"
	KeySubtitle       = "SUBTITLE"
	KeyPoint          = "POINT"
	KeyExperience     = "EXPERIENCE"
	KeySpecialization = "SPECIALIZATION"
	KeyStart          = "START"
	KeyEnd            = "END"
	KeyStartSection   = "STARTSECTION"
	KeyEndSection     = "ENDSECTION"
	KeyBreak          = "BREAK"
	// KeyBareBreak is the empty key of a bare "#+:" line.
	KeyBareBreak = ""
)

// endPrefix is matched literally when START looks ahead for its END line.
const endPrefix = DirectiveSentinel + KeyEnd + ":"

// Directive is a parsed "#+KEY: value" line.
type Directive struct {
	Key   string
	Value string
	Line  int
}

func isDirective(text string) bool {
	return strings.HasPrefix(text, DirectiveSentinel)
}

// splitDirective splits text at the first colon and trims both halves. The
// key keeps its sentinel.
func splitDirective(text string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(text, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// parseDirective reports whether line is a directive and, if so, its key and
// value. A directive line without a colon is an error.
func parseDirective(line Line) (Directive, bool, error) {
	if !isDirective(line.Text) {
		return Directive{}, false, nil
	}
	key, value, ok := splitDirective(line.Text)
	if !ok {
		return Directive{}, false, &DirectiveError{
			Kind:  ErrMalformedDirective,
			Line:  line.Number,
			Value: line.Text,
		}
	}
	return Directive{
		Key:   strings.TrimPrefix(key, DirectiveSentinel),
		Value: value,
		Line:  line.Number,
	}, true, nil
}
