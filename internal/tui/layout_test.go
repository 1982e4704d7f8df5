package tui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"hello", 0, ""},
		{"hello", 1, "h"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q; want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestPadProducesExactWidth(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Fatalf("pad = %q", got)
	}
	if got := pad("abcdef", 4); got != "abc…" {
		t.Fatalf("pad should truncate, got %q", got)
	}
}

func TestModalBodyWidthBounds(t *testing.T) {
	if w := modalBodyWidth(200); w != 72 {
		t.Fatalf("wide terminals cap at 72, got %d", w)
	}
	if w := modalBodyWidth(10); w != 20 {
		t.Fatalf("narrow terminals floor at 20, got %d", w)
	}
}
