package resumark

// DefaultColonEscape is replaced by a literal colon in INFO values.
const DefaultColonEscape = '¦'

// CompileOption configures compilation.
type CompileOption func(*compileConfig)

type compileConfig struct {
	colonEscape rune
}

// WithColonEscape sets the placeholder rune that INFO values use for a
// literal colon. Zero disables the substitution.
func WithColonEscape(r rune) CompileOption {
	return func(cfg *compileConfig) {
		cfg.colonEscape = r
	}
}
