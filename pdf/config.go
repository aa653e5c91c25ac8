package pdf

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pkt.systems/resumark"
)

// Config holds PDF rendering settings. Margin is in millimetres, FontSize in
// points and LineHeight is a multiplier of the font size.
type Config struct {
	PageSize      string
	Margin        float64
	FontDir       string
	FontFamily    string
	CoreFont      string
	FontSize      float64
	LineHeight    float64
	Title         string
	TextRGB       [3]int
	BackgroundRGB [3]int
	CreationDate  time.Time
	// MarginSet marks Margin as explicit so a zero margin survives applyConfig.
	MarginSet bool
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:      "A4",
		Margin:        float64(resumark.DefaultMargins),
		FontDir:       resumark.DefaultFontPath,
		FontFamily:    resumark.DefaultFontName,
		FontSize:      float64(resumark.DefaultBodySize),
		LineHeight:    1.2,
		Title:         "Resume",
		TextRGB:       [3]int{0, 0, 0},
		BackgroundRGB: [3]int{255, 255, 255},
	}
}

// ConfigFromDocument returns the render settings a compiled document asks
// for: margins, body font size and font family.
func ConfigFromDocument(conf resumark.Configuration) Config {
	cfg := DefaultConfig()
	cfg.Margin = float64(conf.Margins)
	cfg.MarginSet = true
	cfg.FontSize = float64(conf.DefaultSize)
	cfg.FontDir = conf.FontPath
	cfg.FontFamily = conf.FontName
	return cfg
}

// Validate reports configuration values the renderer cannot use.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.PageSize, validation.Required, validation.In("A3", "A4", "A5", "Letter", "Legal")),
		validation.Field(&c.Margin, validation.Min(0.0)),
		validation.Field(&c.FontSize, validation.Required, validation.Min(1.0)),
		validation.Field(&c.LineHeight, validation.Required, validation.Min(1.0)),
		validation.Field(&c.CoreFont, validation.In("Courier", "Helvetica", "Times")),
		validation.Field(&c.FontFamily, validation.When(c.CoreFont == "", validation.Required)),
		validation.Field(&c.FontDir, validation.When(c.CoreFont == "", validation.Required)),
	)
	if err != nil {
		return fmt.Errorf("pdf config: %w", err)
	}
	return nil
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 || src.MarginSet {
		dst.Margin = src.Margin
	}
	if src.FontDir != "" {
		dst.FontDir = src.FontDir
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.CoreFont != "" {
		dst.CoreFont = src.CoreFont
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.TextRGB != [3]int{} {
		dst.TextRGB = src.TextRGB
	}
	if src.BackgroundRGB != [3]int{} {
		dst.BackgroundRGB = src.BackgroundRGB
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
}
