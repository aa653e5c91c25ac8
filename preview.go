package resumark

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	resetSeq = "\x1b[0m"
	// previewSpacer stands in for one invisible indent glyph.
	previewSpacer = "    "
)

// PreviewRequest configures Preview.
type PreviewRequest struct {
	Document *Document
	Writer   io.Writer
	Width    int
	Theme    Theme
	Options  []RenderOption
}

// Preview renders a compiled document as styled terminal text. A Width below
// one disables wrapping and centering.
func Preview(req PreviewRequest) error {
	if req.Document == nil {
		return fmt.Errorf("preview: document is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("preview: writer is nil")
	}
	cfg := renderConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	p := previewer{
		width:  req.Width,
		cfg:    cfg,
		styles: theme.Styles(),
	}
	for _, block := range req.Document.Blocks {
		p.block(block)
	}
	if _, err := io.WriteString(req.Writer, p.out.String()); err != nil {
		return fmt.Errorf("preview: write: %w", err)
	}
	return nil
}

type previewer struct {
	width  int
	cfg    renderConfig
	styles Styles
	out    strings.Builder
}

func (p *previewer) block(b Block) {
	switch b.Kind {
	case BlockLineBreak:
		n := int(math.Round(b.Spacing))
		if n < 1 {
			n = 1
		}
		p.out.WriteString(strings.Repeat("\n", n))
	case BlockBulletPoint:
		p.bullet(b)
	case BlockSectionDivider:
		p.line(centerLine(clipLine(b.Text, p.width), p.width), p.styles.Divider, false)
	default:
		p.paragraph(b, p.styleFor(b.Kind))
	}
}

func (p *previewer) styleFor(kind BlockKind) TermStyle {
	switch kind {
	case BlockTitle:
		return p.styles.Title
	case BlockSubtitle:
		return p.styles.Subtitle
	case BlockInfo:
		return p.styles.Info
	case BlockExperience:
		return p.styles.Experience
	case BlockSpecialization:
		return p.styles.Specialization
	case BlockDateRange, BlockEnd:
		return p.styles.Date
	case BlockSectionHeader:
		return p.styles.Section
	default:
		return p.styles.Text
	}
}

func (p *previewer) paragraph(b Block, st TermStyle) {
	indent := b.Indent * len(previewSpacer)
	text := wrapText(b.Text, p.width-indent, p.cfg.softWrap)
	links := p.cfg.osc8 && b.Kind == BlockInfo
	for _, line := range strings.Split(text, "\n") {
		switch {
		case b.Style.Align == AlignCenter:
			line = centerLine(line, p.width)
		case indent > 0:
			line = indentLines(line, indent)
		}
		p.line(line, st, links)
	}
}

func (p *previewer) bullet(b Block) {
	marker := b.Marker + " "
	text := wrapText(b.Text, p.width-len(marker), p.cfg.softWrap)
	lines := strings.Split(text, "\n")
	p.out.WriteString(p.styles.BulletMarker.Prefix + b.Marker + resetSeqIf(p.styles.BulletMarker) + " ")
	p.line(lines[0], p.styles.Text, false)
	if len(lines) > 1 {
		rest := indentLines(strings.Join(lines[1:], "\n"), len(marker))
		for _, line := range strings.Split(rest, "\n") {
			p.line(line, p.styles.Text, false)
		}
	}
}

func (p *previewer) line(text string, st TermStyle, links bool) {
	if links {
		text = linkify(text, p.styles.Link, st)
	}
	if st.Prefix == "" || text == "" {
		p.out.WriteString(text)
	} else {
		p.out.WriteString(st.Prefix + text + resetSeq)
	}
	p.out.WriteByte('\n')
}

func resetSeqIf(st TermStyle) string {
	if st.Prefix == "" {
		return ""
	}
	return resetSeq
}
