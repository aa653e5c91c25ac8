package resumark

import (
	"math"
	"strconv"
	"strings"
)

// builder turns directive lines into blocks. It never changes cfg.
type builder struct {
	cfg         Configuration
	colonEscape rune
	blocks      []Block
}

func (b *builder) build(lines []Line) ([]Block, error) {
	cur := newLineCursor(lines)
	for {
		line, ok := cur.next()
		if !ok {
			return b.blocks, nil
		}
		d, ok, err := parseDirective(line)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if d.Key == KeyStart {
			b.dateRange(d.Value, cur)
			continue
		}
		if err := b.directive(d); err != nil {
			return nil, err
		}
	}
}

// dateRange consumes the line after START when it is an END directive.
// Any other line goes back to the cursor and is processed on its own.
func (b *builder) dateRange(start string, cur *lineCursor) {
	end := presentLabel
	if next, ok := cur.next(); ok {
		if strings.HasPrefix(next.Text, endPrefix) {
			_, end, _ = splitDirective(next.Text)
		} else {
			cur.pushBack()
		}
	}
	b.emit(Block{
		Kind:   BlockDateRange,
		Text:   start + " - " + end,
		Style:  b.body(),
		Indent: dateIndent,
	})
}

func (b *builder) directive(d Directive) error {
	switch d.Key {
	case KeyAuthor:
		b.emit(Block{
			Kind:  BlockTitle,
			Text:  d.Value,
			Style: Style{Size: b.cfg.TitleSize, Bold: true, Align: AlignCenter},
		})
	case KeyInfo:
		b.emit(Block{
			Kind:  BlockInfo,
			Text:  b.unescapeColons(d.Value),
			Style: Style{Size: b.cfg.DefaultSize, Align: AlignCenter},
		})
	case KeySubtitle:
		b.emit(Block{
			Kind:  BlockSubtitle,
			Text:  d.Value,
			Style: Style{Size: b.cfg.SubtitleSize, Italic: true, Align: AlignCenter},
		})
	case KeyPoint:
		b.emit(Block{
			Kind:   BlockBulletPoint,
			Text:   d.Value,
			Style:  b.body(),
			Marker: bulletMarker,
		})
	case KeyExperience:
		b.emit(Block{
			Kind:  BlockExperience,
			Text:  d.Value,
			Style: Style{Size: b.cfg.ItemSize, Align: AlignLeft},
		})
	case KeySpecialization:
		style := b.body()
		style.Italic = true
		b.emit(Block{
			Kind:   BlockSpecialization,
			Text:   d.Value,
			Style:  style,
			Indent: specializationIndent,
		})
	case KeyEnd:
		b.emit(Block{
			Kind:   BlockEnd,
			Text:   d.Value,
			Style:  b.body(),
			Indent: dateIndent,
		})
	case KeyStartSection:
		b.emit(Block{
			Kind:  BlockSectionHeader,
			Text:  d.Value,
			Style: Style{Size: b.cfg.SectionSize, Bold: true, Align: AlignLeft},
		})
	case KeyEndSection:
		n, err := strconv.Atoi(d.Value)
		if err != nil || n < 0 {
			return &DirectiveError{Kind: ErrInvalidNumericValue, Key: d.Key, Line: d.Line, Value: d.Value}
		}
		b.emit(Block{
			Kind:  BlockSectionDivider,
			Text:  strings.Repeat(dividerGlyph, n),
			Style: Style{Size: b.cfg.TitleSize, Bold: true, Align: AlignCenter},
		})
	case KeyBreak, KeyBareBreak:
		spacing, err := strconv.ParseFloat(d.Value, 64)
		if err != nil || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
			spacing = defaultBreakSpacing
		}
		b.emit(Block{Kind: BlockLineBreak, Spacing: spacing})
	}
	return nil
}

func (b *builder) body() Style {
	return Style{Size: b.cfg.DefaultSize, Align: AlignLeft}
}

func (b *builder) unescapeColons(value string) string {
	if b.colonEscape == 0 {
		return value
	}
	return strings.ReplaceAll(value, string(b.colonEscape), ":")
}

func (b *builder) emit(block Block) {
	b.blocks = append(b.blocks, block)
}
