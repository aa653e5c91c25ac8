package resumark

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInputPath reports that no source file was given.
	ErrMissingInputPath = errors.New("missing input path")
	// ErrUnreadableSource reports a source that could not be read or is not text.
	ErrUnreadableSource = errors.New("unreadable source")
	// ErrMalformedDirective reports a directive line without a colon.
	ErrMalformedDirective = errors.New("malformed directive")
	// ErrInvalidNumericValue reports a size, margin or dash count that does not parse.
	ErrInvalidNumericValue = errors.New("invalid numeric value")
	// ErrUnloadableFont reports a font family that cannot be loaded.
	ErrUnloadableFont = errors.New("unloadable font")
)

// DirectiveError ties a compile failure to the directive line that caused it.
type DirectiveError struct {
	Kind  error
	Key   string
	Line  int
	Value string
}

func (e *DirectiveError) Error() string {
	switch {
	case e.Key != "" && e.Line > 0:
		return fmt.Sprintf("line %d: #+%s: %v %q", e.Line, e.Key, e.Kind, e.Value)
	case e.Key != "":
		return fmt.Sprintf("#+%s: %v %q", e.Key, e.Kind, e.Value)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Kind, e.Value)
	default:
		return e.Kind.Error()
	}
}

// Unwrap returns the error kind so callers can use errors.Is.
func (e *DirectiveError) Unwrap() error {
	return e.Kind
}
