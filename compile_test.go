package resumark

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func body(size uint8) Style {
	return Style{Size: size, Align: AlignLeft}
}

func compileLines(t *testing.T, lines ...string) *Document {
	t.Helper()
	doc, err := Compile(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return doc
}

func TestCompileAllDirectives(t *testing.T) {
	doc := compileLines(t,
		"#+AUTHOR: Jane Doe",
		"#+SUBTITLE: Systems Engineer",
		"#+INFO: jane@example.com | +46 70 123 45 67",
		"not a directive",
		"#+STARTSECTION: Experience",
		"#+EXPERIENCE: ACME Corp",
		"#+SPECIALIZATION: Backend",
		"#+START: 2020",
		"#+END: 2022",
		"#+POINT: Built things",
		"#+END: standalone",
		"#+ENDSECTION: 3",
		"#+BREAK: 2.5",
		"#+: x",
	)
	want := []Block{
		{Kind: BlockTitle, Text: "Jane Doe", Style: Style{Size: 28, Bold: true, Align: AlignCenter}},
		{Kind: BlockSubtitle, Text: "Systems Engineer", Style: Style{Size: 18, Italic: true, Align: AlignCenter}},
		{Kind: BlockInfo, Text: "jane@example.com | +46 70 123 45 67", Style: Style{Size: 15, Align: AlignCenter}},
		{Kind: BlockSectionHeader, Text: "Experience", Style: Style{Size: 18, Bold: true, Align: AlignLeft}},
		{Kind: BlockExperience, Text: "ACME Corp", Style: Style{Size: 16, Align: AlignLeft}},
		{Kind: BlockSpecialization, Text: "Backend", Style: Style{Size: 15, Italic: true, Align: AlignLeft}, Indent: 2},
		{Kind: BlockDateRange, Text: "2020 - 2022", Style: body(15), Indent: 1},
		{Kind: BlockBulletPoint, Text: "Built things", Style: body(15), Marker: "-"},
		{Kind: BlockEnd, Text: "standalone", Style: body(15), Indent: 1},
		{Kind: BlockSectionDivider, Text: "---", Style: Style{Size: 28, Bold: true, Align: AlignCenter}},
		{Kind: BlockLineBreak, Spacing: 2.5},
		{Kind: BlockLineBreak, Spacing: 1.0},
	}
	if diff := cmp.Diff(want, doc.Blocks); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultConfiguration(), doc.Config); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileIsIdempotent(t *testing.T) {
	src := strings.Join([]string{
		"#+TITLESIZE: 30",
		"#+AUTHOR: Jane",
		"#+START: 2019",
		"#+POINT: a",
		"#+START: 2020",
		"#+END: 2021",
	}, "\n")
	first, err := Compile(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := Compile(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("documents differ (-first +second):\n%s", diff)
	}
}

func TestCompilePreservesOrder(t *testing.T) {
	doc := compileLines(t,
		"#+POINT: one",
		"#+EXPERIENCE: two",
		"#+POINT: three",
		"#+STARTSECTION: four",
		"#+SUBTITLE: five",
	)
	var got []string
	for _, b := range doc.Blocks {
		got = append(got, b.Text)
	}
	want := []string{"one", "two", "three", "four", "five"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileDateRangeMerge(t *testing.T) {
	doc := compileLines(t, "#+START: 2020", "#+END: 2022")
	want := []Block{{Kind: BlockDateRange, Text: "2020 - 2022", Style: body(15), Indent: 1}}
	if diff := cmp.Diff(want, doc.Blocks); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileDateRangeFallback(t *testing.T) {
	doc := compileLines(t, "#+START: 2020", "#+POINT: did X")
	want := []Block{
		{Kind: BlockDateRange, Text: "2020 - Present", Style: body(15), Indent: 1},
		{Kind: BlockBulletPoint, Text: "did X", Style: body(15), Marker: "-"},
	}
	if diff := cmp.Diff(want, doc.Blocks); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileDateRangeEdges(t *testing.T) {
	cases := []struct {
		name string
		src  []string
		want []string
	}{
		{
			name: "start is last line",
			src:  []string{"#+START: 2020"},
			want: []string{"2020 - Present"},
		},
		{
			name: "blank line between start and end",
			src:  []string{"#+START: 2020", "", "#+END: 2022"},
			want: []string{"2020 - Present", "2022"},
		},
		{
			name: "end with space before colon is not merged",
			src:  []string{"#+START: 2020", "#+END : 2022"},
			want: []string{"2020 - Present", "2022"},
		},
		{
			name: "consecutive starts",
			src:  []string{"#+START: 2018", "#+START: 2019", "#+END: 2020"},
			want: []string{"2018 - Present", "2019 - 2020"},
		},
		{
			name: "end value keeps later colons",
			src:  []string{"#+START: 09:00", "#+END: 17:30"},
			want: []string{"09:00 - 17:30"},
		},
		{
			name: "trailing newline",
			src:  []string{"#+START: 2020", ""},
			want: []string{"2020 - Present"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := compileLines(t, tc.src...)
			var got []string
			for _, b := range doc.Blocks {
				got = append(got, b.Text)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("texts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileBreakSpacing(t *testing.T) {
	cases := map[string]float64{
		"#+BREAK: not-a-number": 1.0,
		"#+BREAK: 2.5":          2.5,
		"#+BREAK:":              1.0,
		"#+BREAK: NaN":          1.0,
		"#+: 0.5":               0.5,
		"#+ : 3":                3,
	}
	for line, want := range cases {
		doc := compileLines(t, line)
		if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != BlockLineBreak {
			t.Fatalf("%q: expected one line break, got %+v", line, doc.Blocks)
		}
		if got := doc.Blocks[0].Spacing; got != want {
			t.Fatalf("%q: spacing = %v, want %v", line, got, want)
		}
	}
}

func TestCompileEndSectionErrors(t *testing.T) {
	for _, value := range []string{"abc", "-1", "", "2.5"} {
		doc, err := Compile("#+AUTHOR: Jane\n#+ENDSECTION: " + value)
		if !errors.Is(err, ErrInvalidNumericValue) {
			t.Fatalf("%q: expected ErrInvalidNumericValue, got %v", value, err)
		}
		var derr *DirectiveError
		if !errors.As(err, &derr) {
			t.Fatalf("%q: expected *DirectiveError, got %T", value, err)
		}
		if derr.Key != "ENDSECTION" || derr.Line != 2 {
			t.Fatalf("%q: unexpected error details %+v", value, derr)
		}
		if doc != nil {
			t.Fatalf("%q: expected no document", value)
		}
	}
}

func TestCompileEndSectionZero(t *testing.T) {
	doc := compileLines(t, "#+ENDSECTION: 0")
	if len(doc.Blocks) != 1 || doc.Blocks[0].Text != "" {
		t.Fatalf("expected empty divider, got %+v", doc.Blocks)
	}
}

func TestCompileMalformedDirective(t *testing.T) {
	doc, err := Compile("#+AUTHOR: Jane\n#+POINT no colon here")
	if !errors.Is(err, ErrMalformedDirective) {
		t.Fatalf("expected ErrMalformedDirective, got %v", err)
	}
	var derr *DirectiveError
	if !errors.As(err, &derr) || derr.Line != 2 {
		t.Fatalf("expected line 2 in error, got %v", err)
	}
	if doc != nil {
		t.Fatalf("expected no document")
	}
}

func TestCompileUnknownDirective(t *testing.T) {
	doc := compileLines(t, "#+FOOBAR: xyz", "#+author: lower case", "  #+POINT: indented")
	if len(doc.Blocks) != 0 {
		t.Fatalf("expected no blocks, got %+v", doc.Blocks)
	}
	if diff := cmp.Diff(DefaultConfiguration(), doc.Config); diff != "" {
		t.Fatalf("config changed (-want +got):\n%s", diff)
	}
}

func TestCompileConfigurationDirectivesEmitNothing(t *testing.T) {
	doc := compileLines(t,
		"#+TITLESIZE: 40",
		"#+FONTNAME: Lato",
		"#+AUTHOR: Jane",
	)
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected only the title block, got %+v", doc.Blocks)
	}
	if doc.Blocks[0].Style.Size != 40 {
		t.Fatalf("expected title size 40, got %d", doc.Blocks[0].Style.Size)
	}
}

func TestCompileConfigurationErrorAbortsBeforeBuild(t *testing.T) {
	_, err := Compile("#+POINT missing colon\n#+MARGINS: wide")
	if !errors.Is(err, ErrInvalidNumericValue) {
		t.Fatalf("expected configuration error first, got %v", err)
	}
}

func TestCompileInfoColonEscape(t *testing.T) {
	doc := compileLines(t, "#+INFO: web¦ example.com", "#+POINT: ratio 1¦2")
	if got := doc.Blocks[0].Text; got != "web: example.com" {
		t.Fatalf("info text = %q", got)
	}
	if got := doc.Blocks[1].Text; got != "ratio 1¦2" {
		t.Fatalf("escape must only apply to INFO, got %q", got)
	}

	doc, err := Compile("#+INFO: a~b", WithColonEscape('~'))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := doc.Blocks[0].Text; got != "a:b" {
		t.Fatalf("custom escape text = %q", got)
	}

	doc, err = Compile("#+INFO: a¦b", WithColonEscape(0))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := doc.Blocks[0].Text; got != "a¦b" {
		t.Fatalf("disabled escape text = %q", got)
	}
}

func TestCompileInfoKeepsLiteralColons(t *testing.T) {
	doc := compileLines(t, "#+INFO: https://example.com")
	if got := doc.Blocks[0].Text; got != "https://example.com" {
		t.Fatalf("info text = %q", got)
	}
}

func TestCompileCRLF(t *testing.T) {
	lf, err := Compile("#+AUTHOR: Jane\n#+START: 2020\n#+END: 2022\n")
	if err != nil {
		t.Fatalf("compile lf: %v", err)
	}
	crlf, err := Compile("#+AUTHOR: Jane\r\n#+START: 2020\r\n#+END: 2022\r\n")
	if err != nil {
		t.Fatalf("compile crlf: %v", err)
	}
	if diff := cmp.Diff(lf, crlf); diff != "" {
		t.Fatalf("crlf differs (-lf +crlf):\n%s", diff)
	}
}

func TestCompileEmpty(t *testing.T) {
	doc := compileLines(t, "")
	if len(doc.Blocks) != 0 {
		t.Fatalf("expected no blocks, got %+v", doc.Blocks)
	}
}

func TestBlockKindString(t *testing.T) {
	if got := BlockDateRange.String(); got != "DateRange" {
		t.Fatalf("BlockDateRange.String() = %q", got)
	}
	if got := BlockKind(200).String(); got != "BlockKind(?)" {
		t.Fatalf("unknown kind string = %q", got)
	}
}
