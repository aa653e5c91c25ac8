package resumark

import (
	"strconv"
	"strings"
)

// Default document settings used when no directive overrides them.
const (
	DefaultTitleSize    uint8 = 28
	DefaultSubtitleSize uint8 = 18
	DefaultItemSize     uint8 = 16
	DefaultSectionSize  uint8 = 18
	DefaultBodySize     uint8 = 15
	DefaultMargins      uint8 = 20
	DefaultFontPath           = "/usr/share/fonts/vollkorn"
	DefaultFontName           = "Vollkorn"
)

// Configuration holds the document-wide style settings resolved from
// configuration directives. Sizes are in points, Margins in millimetres.
type Configuration struct {
	TitleSize    uint8
	SubtitleSize uint8
	ItemSize     uint8
	SectionSize  uint8
	DefaultSize  uint8
	Margins      uint8
	FontPath     string
	FontName     string
}

// DefaultConfiguration returns the settings used for a document without
// configuration directives.
func DefaultConfiguration() Configuration {
	return Configuration{
		TitleSize:    DefaultTitleSize,
		SubtitleSize: DefaultSubtitleSize,
		ItemSize:     DefaultItemSize,
		SectionSize:  DefaultSectionSize,
		DefaultSize:  DefaultBodySize,
		Margins:      DefaultMargins,
		FontPath:     DefaultFontPath,
		FontName:     DefaultFontName,
	}
}

// ScanConfiguration resolves the document configuration from lines.
//
// Lines are visited from last to first and every match overwrites the value
// seen before it, so when a key is repeated the occurrence nearest the top of
// the file wins.
func ScanConfiguration(lines []string) (Configuration, error) {
	cfg := DefaultConfiguration()
	for i := len(lines) - 1; i >= 0; i-- {
		key, value, ok := splitDirective(lines[i])
		if !ok || !isDirective(key) {
			continue
		}
		if err := cfg.apply(strings.TrimPrefix(key, DirectiveSentinel), value, i+1); err != nil {
			return Configuration{}, err
		}
	}
	return cfg, nil
}

func (c *Configuration) apply(key, value string, line int) error {
	var field *uint8
	switch key {
	case KeyTitleSize:
		field = &c.TitleSize
	case KeySubtitleSize:
		field = &c.SubtitleSize
	case KeyItemSize:
		field = &c.ItemSize
	case KeySectionSize:
		field = &c.SectionSize
	case KeyDefaultSize:
		field = &c.DefaultSize
	case KeyMargins:
		field = &c.Margins
	case KeyFontPath:
		c.FontPath = value
		return nil
	case KeyFontName:
		c.FontName = value
		return nil
	default:
		return nil
	}
	n, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return &DirectiveError{Kind: ErrInvalidNumericValue, Key: key, Line: line, Value: value}
	}
	*field = uint8(n)
	return nil
}
