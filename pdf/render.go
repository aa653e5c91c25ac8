package pdf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pkt.systems/resumark"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Document *resumark.Document
	Writer   io.Writer
	Config   Config
}

// Render draws a compiled document to a PDF written to req.Writer. Page
// breaks are left to gofpdf.
func Render(req RenderRequest) error {
	if req.Document == nil {
		return fmt.Errorf("pdf render: document is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}

	pdf := gofpdf.New("P", "mm", cfg.PageSize, "")
	family, translate, err := setupFonts(pdf, cfg)
	if err != nil {
		return err
	}
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(true, cfg.Margin)
	pdf.SetTitle(cfg.Title, true)
	pdf.SetCreator("resumark", true)
	pdf.SetCatalogSort(true)
	if author := documentAuthor(req.Document); author != "" {
		pdf.SetAuthor(author, true)
	}
	if !cfg.CreationDate.IsZero() {
		pdf.SetCreationDate(cfg.CreationDate)
	}
	pdf.SetFont(family, "", cfg.FontSize)
	pdf.SetTextColor(cfg.TextRGB[0], cfg.TextRGB[1], cfg.TextRGB[2])
	pdf.AddPage()
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: font setup failed: %w", err)
	}

	w := &blockWriter{pdf: pdf, cfg: cfg, family: family, translate: translate}
	for _, b := range req.Document.Blocks {
		w.block(b)
		if !pdf.Ok() {
			break
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := pdf.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

// setupFonts registers the configured font family and returns its name and
// the text translation to apply before drawing.
func setupFonts(pdf *gofpdf.Fpdf, cfg Config) (string, func(string) string, error) {
	if cfg.CoreFont != "" {
		return cfg.CoreFont, pdf.UnicodeTranslatorFromDescriptor(""), nil
	}
	family, err := ResolveFontFamily(cfg.FontDir, cfg.FontFamily)
	if err != nil {
		return "", nil, fmt.Errorf("pdf render: %w", err)
	}
	pdf.SetFontLocation(family.Dir)
	for _, v := range family.Variants {
		pdf.AddUTF8Font(family.Name, v.Style, filepath.Base(v.Path))
	}
	if err := pdf.Error(); err != nil {
		return "", nil, fmt.Errorf("pdf render: %w: %w", resumark.ErrUnloadableFont, err)
	}
	return family.Name, func(s string) string { return s }, nil
}

func documentAuthor(doc *resumark.Document) string {
	for _, b := range doc.Blocks {
		if b.Kind == resumark.BlockTitle {
			return b.Text
		}
	}
	return ""
}

type blockWriter struct {
	pdf       *gofpdf.Fpdf
	cfg       Config
	family    string
	translate func(string) string
}

func (w *blockWriter) block(b resumark.Block) {
	switch b.Kind {
	case resumark.BlockLineBreak:
		w.lineBreak(b.Spacing)
	case resumark.BlockBulletPoint:
		w.bullet(b)
	default:
		if b.Indent > 0 {
			w.indented(b)
			return
		}
		h := w.setStyle(b.Style)
		w.pdf.MultiCell(0, h, w.translate(b.Text), "", alignString(b.Style.Align), false)
	}
}

// setStyle selects the font for st and returns the matching line height in
// millimetres.
func (w *blockWriter) setStyle(st resumark.Style) float64 {
	size := float64(st.Size)
	if size <= 0 {
		size = w.cfg.FontSize
	}
	w.pdf.SetFont(w.family, fontStyle(st), size)
	return w.lineHeight(size)
}

func (w *blockWriter) lineHeight(size float64) float64 {
	h := size * w.cfg.LineHeight * ptToMM
	if h < minLineHeight {
		return minLineHeight
	}
	return h
}

// indented draws Indent spacer glyphs in the background color ahead of the
// text, matching how the markup expresses indentation.
func (w *blockWriter) indented(b resumark.Block) {
	h := w.setStyle(b.Style)
	bg, fg := w.cfg.BackgroundRGB, w.cfg.TextRGB
	w.pdf.SetTextColor(bg[0], bg[1], bg[2])
	w.pdf.Write(h, strings.Repeat(spacerGlyph, b.Indent))
	w.pdf.SetTextColor(fg[0], fg[1], fg[2])
	w.pdf.Write(h, w.translate(b.Text))
	w.pdf.Ln(h)
}

func (w *blockWriter) bullet(b resumark.Block) {
	h := w.setStyle(b.Style)
	w.pdf.SetX(w.cfg.Margin + bulletIndent)
	markerW := w.pdf.GetStringWidth(b.Marker) + bulletGap
	w.pdf.CellFormat(markerW, h, w.translate(b.Marker), "", 0, "L", false, 0, "")
	w.pdf.MultiCell(0, h, w.translate(b.Text), "", "L", false)
}

func (w *blockWriter) lineBreak(spacing float64) {
	if spacing <= 0 {
		return
	}
	w.pdf.Ln(spacing * w.lineHeight(w.cfg.FontSize))
}
