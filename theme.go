package resumark

import (
	"sort"
	"strings"

	"pkt.systems/resumark/internal/palette"
)

// TermStyle describes a terminal style as an ANSI prefix sequence.
type TermStyle struct {
	Prefix string
}

// Styles groups the styles used by the terminal preview, one per block role.
type Styles struct {
	Text           TermStyle
	Title          TermStyle
	Subtitle       TermStyle
	Info           TermStyle
	Experience     TermStyle
	Specialization TermStyle
	Date           TermStyle
	Section        TermStyle
	Divider        TermStyle
	BulletMarker   TermStyle
	Link           TermStyle
}

// Theme provides named styles for the terminal preview.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) TermStyle {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return TermStyle{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:           style(p.Text),
		Title:          style(palette.Bold, p.Title),
		Subtitle:       style(palette.Italic, p.Subtitle),
		Info:           style(p.Info),
		Experience:     style(palette.Bold, p.Experience),
		Specialization: style(palette.Italic, p.Specialization),
		Date:           style(palette.Faint, p.Date),
		Section:        style(palette.Bold, palette.Underline, p.Section),
		Divider:        style(p.Divider),
		BulletMarker:   style(p.BulletMarker),
		Link:           style(palette.Underline, p.Link),
	}
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"boring":          theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme without any ANSI styling.
func BoringTheme() Theme {
	return builtinThemes["boring"]
}
