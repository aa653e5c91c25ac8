package resumark

import "testing"

func TestLineCursorPushBack(t *testing.T) {
	cur := newLineCursor(numberLines([]string{"a", "b"}))
	first, ok := cur.next()
	if !ok || first.Text != "a" || first.Number != 1 {
		t.Fatalf("unexpected first line %+v", first)
	}
	second, _ := cur.next()
	cur.pushBack()
	again, ok := cur.next()
	if !ok || again != second {
		t.Fatalf("pushBack did not restore %+v, got %+v", second, again)
	}
	if _, ok := cur.next(); ok {
		t.Fatalf("expected end of input")
	}
}

func TestParseDirective(t *testing.T) {
	cases := []struct {
		line string
		key  string
		val  string
		ok   bool
	}{
		{line: "#+AUTHOR: Jane Doe ", key: "AUTHOR", val: "Jane Doe", ok: true},
		{line: "#+INFO: http://x.y:80", key: "INFO", val: "http://x.y:80", ok: true},
		{line: "#+:", key: "", val: "", ok: true},
		{line: "#+BREAK :1", key: "BREAK", val: "1", ok: true},
		{line: "plain", ok: false},
		{line: " #+AUTHOR: Jane", ok: false},
	}
	for _, tc := range cases {
		d, ok, err := parseDirective(Line{Text: tc.line, Number: 3})
		if err != nil {
			t.Fatalf("%q: %v", tc.line, err)
		}
		if ok != tc.ok {
			t.Fatalf("%q: ok = %v, want %v", tc.line, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if d.Key != tc.key || d.Value != tc.val || d.Line != 3 {
			t.Fatalf("%q: got %+v", tc.line, d)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\n\nb\n")
	want := []string{"a", "", "b", ""}
	if len(got) != len(want) {
		t.Fatalf("SplitLines = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SplitLines[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
