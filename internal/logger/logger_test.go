package logger

import (
	"testing"
)

func TestComputeLineAndColumn(t *testing.T) {
	contents := "first\nsecond\r\nthird"

	check := func(offset int, line int, column int) {
		t.Helper()
		gotLine, gotColumn, _, _ := ComputeLineAndColumn(contents, offset)
		if gotLine != line || gotColumn != column {
			t.Errorf("offset %d: got %d:%d, want %d:%d", offset, gotLine, gotColumn, line, column)
		}
	}

	check(0, 0, 0)
	check(5, 0, 5)
	check(6, 1, 0)
	check(8, 1, 2)
	check(14, 2, 0)
}

func TestSourcePadding(t *testing.T) {
	source := NewSource("file.js", "abc")
	if len(source.PaddedContents) != len(source.Contents)+SentinelPadding {
		t.Fatalf("padding is %d bytes", len(source.PaddedContents)-len(source.Contents))
	}
	if source.PaddedContents[len(source.Contents)] != 0 {
		t.Errorf("padding byte is not NUL")
	}
}

func TestRangeOfString(t *testing.T) {
	source := NewSource("file.js", `x = "a\"b" + 'c'`)
	r := source.RangeOfString(Loc{Start: 4})
	if got := source.TextForRange(r); got != `"a\"b"` {
		t.Errorf("string range = %q", got)
	}
}

func TestRenderTabStops(t *testing.T) {
	if got := renderTabStops("\tx", 8); got != "        x" {
		t.Errorf("got %q", got)
	}
	if got := renderTabStops("ab\tc", 8); got != "ab      c" {
		t.Errorf("got %q", got)
	}
}
