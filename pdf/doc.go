// Package pdf renders a compiled ResuMarkup document to PDF.
//
// The renderer draws the document's blocks in order with gofpdf and writes
// the finished PDF to an io.Writer. Fonts come either from a TrueType family
// on disk (the FONTPATH and FONTNAME directives) or from one of the PDF core
// fonts.
//
// Example:
//
//	doc, err := resumark.Compile(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	cfg := pdf.ConfigFromDocument(doc.Config)
//	err = pdf.Render(pdf.RenderRequest{
//		Document: doc,
//		Writer:   outFile,
//		Config:   cfg,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// A family named Vollkorn in /usr/share/fonts/vollkorn is read from
// Vollkorn-Regular.ttf, Vollkorn-Bold.ttf, Vollkorn-Italic.ttf and
// Vollkorn-BoldItalic.ttf.
package pdf
