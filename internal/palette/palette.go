// Package palette holds the ANSI color palettes behind the built-in preview themes.
package palette

import "strconv"

// SGR attribute prefixes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Faint     = "\x1b[2m"
)

// Palette maps each block role to a foreground color prefix.
type Palette struct {
	Text           string
	Title          string
	Subtitle       string
	Info           string
	Experience     string
	Specialization string
	Date           string
	Section        string
	Divider        string
	BulletMarker   string
	Link           string
}

// FG256 returns the xterm 256-color foreground prefix for idx.
func FG256(idx int) string {
	return "\x1b[38;5;" + strconv.Itoa(idx) + "m"
}

var (
	PaletteDefault = Palette{
		Text:           FG256(252),
		Title:          FG256(231),
		Subtitle:       FG256(110),
		Info:           FG256(246),
		Experience:     FG256(180),
		Specialization: FG256(146),
		Date:           FG256(244),
		Section:        FG256(75),
		Divider:        FG256(239),
		BulletMarker:   FG256(75),
		Link:           FG256(117),
	}
	PaletteGruvbox = Palette{
		Text:           FG256(223),
		Title:          FG256(214),
		Subtitle:       FG256(109),
		Info:           FG256(246),
		Experience:     FG256(142),
		Specialization: FG256(175),
		Date:           FG256(245),
		Section:        FG256(208),
		Divider:        FG256(239),
		BulletMarker:   FG256(167),
		Link:           FG256(108),
	}
	PaletteNord = Palette{
		Text:           FG256(254),
		Title:          FG256(110),
		Subtitle:       FG256(109),
		Info:           FG256(103),
		Experience:     FG256(152),
		Specialization: FG256(139),
		Date:           FG256(60),
		Section:        FG256(67),
		Divider:        FG256(59),
		BulletMarker:   FG256(110),
		Link:           FG256(116),
	}
	PaletteSolarizedLight = Palette{
		Text:           FG256(240),
		Title:          FG256(235),
		Subtitle:       FG256(33),
		Info:           FG256(245),
		Experience:     FG256(136),
		Specialization: FG256(125),
		Date:           FG256(245),
		Section:        FG256(166),
		Divider:        FG256(250),
		BulletMarker:   FG256(37),
		Link:           FG256(33),
	}
)
