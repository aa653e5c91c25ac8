package resumark

import (
	"fmt"
	"io"
)

// Document is the compiled form of a ResuMarkup source: the resolved
// configuration and the blocks in source order.
type Document struct {
	Config Configuration
	Blocks []Block
}

// Compile compiles ResuMarkup source text. On error no document is returned.
func Compile(src string, opts ...CompileOption) (*Document, error) {
	cfg := compileConfig{colonEscape: DefaultColonEscape}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	raw := SplitLines(src)
	conf, err := ScanConfiguration(raw)
	if err != nil {
		return nil, err
	}
	b := &builder{cfg: conf, colonEscape: cfg.colonEscape}
	blocks, err := b.build(numberLines(raw))
	if err != nil {
		return nil, err
	}
	return &Document{Config: conf, Blocks: blocks}, nil
}

// CompileReader reads all of r and compiles it. Input that cannot be read or
// is not text fails with ErrUnreadableSource.
func CompileReader(r io.Reader, opts ...CompileOption) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("compile: reader is nil: %w", ErrUnreadableSource)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compile: read source: %w: %w", ErrUnreadableSource, err)
	}
	src, err := SourceText(raw)
	if err != nil {
		return nil, fmt.Errorf("compile: %w: %w", ErrUnreadableSource, err)
	}
	return Compile(src, opts...)
}
