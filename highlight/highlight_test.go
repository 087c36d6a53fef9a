// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package highlight

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeledit/segment"
)

func TestPlainSplitsRows(t *testing.T) {
	p := Plain{Style: tcell.StyleDefault}
	rows := p.Highlight("abc\n\ndef", "", Options{Height: 3})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"abc", "", "def"}
	for i, row := range rows {
		if segment.Text(row) != want[i] {
			t.Fatalf("row %d: got %q want %q", i, segment.Text(row), want[i])
		}
	}
}

func TestPlainPadsToHeight(t *testing.T) {
	p := Plain{Style: tcell.StyleDefault}
	rows := p.Highlight("x", "", Options{Height: 4})
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for _, row := range rows[1:] {
		if segment.CellLength(row) != 0 {
			t.Fatalf("padding rows must be empty")
		}
	}
}

func TestChromaRowTextMatchesSource(t *testing.T) {
	c := NewChroma("")
	src := "package main\n\nfunc main() {}"
	rows := c.Highlight(src, "go", Options{MaxWidth: 13, Height: 3})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"package main", "", "func main() {}"}
	for i, row := range rows {
		if segment.Text(row) != want[i] {
			t.Fatalf("row %d: got %q want %q", i, segment.Text(row), want[i])
		}
	}
}

func TestChromaStylesKeywords(t *testing.T) {
	c := NewChroma("")
	rows := c.Highlight("package main", "go", Options{Height: 1})
	if len(rows) != 1 || len(rows[0]) < 2 {
		t.Fatalf("expected a multi-segment row, got %+v", rows)
	}
	distinct := map[tcell.Style]bool{}
	for _, seg := range rows[0] {
		distinct[seg.Style] = true
	}
	if len(distinct) < 2 {
		t.Fatalf("expected the keyword to carry its own style")
	}
}

// The engine must be deterministic for identical input and bounds.
func TestChromaDeterministic(t *testing.T) {
	c := NewChroma("")
	src := "x := \"hi\"\ny := 1"
	a := c.Highlight(src, "go", Options{Height: 2})
	b := c.Highlight(src, "go", Options{Height: 2})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("highlight output differs between identical calls")
	}
}

func TestChromaDetectsLanguageWithoutHint(t *testing.T) {
	c := NewChroma("")
	src := "#!/usr/bin/env python\ndef f():\n    return 1"
	rows := c.Highlight(src, "", Options{Height: 3})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, wantText := range []string{"#!/usr/bin/env python", "def f():", "    return 1"} {
		if segment.Text(rows[i]) != wantText {
			t.Fatalf("row %d: got %q want %q", i, segment.Text(rows[i]), wantText)
		}
	}
}

func TestChromaUnknownStyleFallsBack(t *testing.T) {
	c := NewChroma("no-such-style")
	rows := c.Highlight("x", "go", Options{Height: 1})
	if len(rows) != 1 || segment.Text(rows[0]) != "x" {
		t.Fatalf("got %+v", rows)
	}
}
