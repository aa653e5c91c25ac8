package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/sfnt"

	"pkt.systems/resumark"
)

// FontVariant is one style of a font family on disk.
type FontVariant struct {
	// Style is the gofpdf style string: "", "B", "I" or "BI".
	Style string
	Path  string
}

// FontFamily is a complete set of regular, bold, italic and bold-italic
// TrueType files sharing one directory.
type FontFamily struct {
	Name     string
	Dir      string
	Variants []FontVariant
}

var fontVariantSuffixes = []struct {
	style  string
	suffix string
}{
	{"", "Regular"},
	{"B", "Bold"},
	{"I", "Italic"},
	{"BI", "BoldItalic"},
}

// ResolveFontFamily locates <name>-Regular.ttf, <name>-Bold.ttf,
// <name>-Italic.ttf and <name>-BoldItalic.ttf in dir and checks that each
// one parses as a font. Failures wrap resumark.ErrUnloadableFont.
func ResolveFontFamily(dir, name string) (FontFamily, error) {
	if dir == "" || name == "" {
		return FontFamily{}, fmt.Errorf("font %q in %q: %w: empty font path or name", name, dir, resumark.ErrUnloadableFont)
	}
	family := FontFamily{Name: name, Dir: dir}
	for _, v := range fontVariantSuffixes {
		path := filepath.Join(dir, name+"-"+v.suffix+".ttf")
		if err := ensureFont(path); err != nil {
			return FontFamily{}, fmt.Errorf("font %s: %w: %w", path, resumark.ErrUnloadableFont, err)
		}
		family.Variants = append(family.Variants, FontVariant{Style: v.style, Path: path})
	}
	return family, nil
}

func ensureFont(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	if _, err := sfnt.ReadFile(path); err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	return nil
}
