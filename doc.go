// Package resumark compiles ResuMarkup, a line-oriented markup for resumes,
// into an ordered list of styled layout blocks.
//
// Every line that starts with "#+" is a directive of the form "#+KEY: value".
// Configuration directives (sizes, margins, font path and name) are collected
// in a first pass, with the topmost occurrence of a key winning. Content
// directives are then turned into blocks in source order; a START line
// followed by an END line merges into a single date range. Lines that are not
// directives are ignored.
//
// Core properties:
//   - Two passes over the source lines, no backtracking beyond one line
//   - Errors carry the offending key and line via DirectiveError
//   - Output is renderer-neutral; see the pdf subpackage and Preview
//
// Example:
//
//	doc, err := resumark.Compile("#+AUTHOR: Jane Doe\n#+POINT: Go\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = resumark.Preview(resumark.PreviewRequest{
//		Document: doc,
//		Writer:   os.Stdout,
//		Width:    80,
//		Theme:    resumark.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// In INFO values a broken bar (¦) stands for a literal colon, since the first
// colon on a directive line ends the key. WithColonEscape changes the
// placeholder.
package resumark
