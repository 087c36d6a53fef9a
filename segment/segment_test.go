// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package segment

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

var (
	styleA = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleB = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleC = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

func TestIndexAtCell(t *testing.T) {
	// Widths 2, 3, 1: cells [0,2) [2,5) [5,6).
	line := Line{
		{Text: "ab", Style: styleA},
		{Text: "cde", Style: styleB},
		{Text: "f", Style: styleC},
	}
	cases := []struct {
		cell int
		idx  int
		ok   bool
	}{
		{0, 0, true},
		{1, 0, true},
		{2, 1, true},
		{4, 1, true},
		{5, 2, true},
		{6, 0, false},
		{9, 0, false},
	}
	for _, c := range cases {
		idx, ok := IndexAtCell(line, c.cell)
		if ok != c.ok || (ok && idx != c.idx) {
			t.Fatalf("cell %d: got (%d, %v), want (%d, %v)", c.cell, idx, ok, c.idx, c.ok)
		}
	}
}

func TestCellLengthCountsWideRunes(t *testing.T) {
	line := Line{{Text: "a世b", Style: styleA}}
	if got := CellLength(line); got != 4 {
		t.Fatalf("expected 4 cells, got %d", got)
	}
}

func TestCropWindow(t *testing.T) {
	line := Line{
		{Text: "abc", Style: styleA},
		{Text: "defg", Style: styleB},
	}
	got := Crop(line, 2, 5)
	if Text(got) != "cde" {
		t.Fatalf("got %q", Text(got))
	}
	if len(got) != 2 || got[0].Style != styleA || got[1].Style != styleB {
		t.Fatalf("styles not preserved across crop: %+v", got)
	}
	if Text(Crop(line, 0, 0)) != "" {
		t.Fatalf("empty window must produce an empty line")
	}
	if Text(Crop(line, 5, 100)) != "fg" {
		t.Fatalf("crop past the end must stop at content")
	}
}

func TestCropSplitsWideRuneIntoSpaces(t *testing.T) {
	line := Line{{Text: "a世b", Style: styleA}}
	// The wide rune covers cells [1,3); cutting at 2 must not emit half of it.
	left := Crop(line, 0, 2)
	if Text(left) != "a " {
		t.Fatalf("left crop: got %q", Text(left))
	}
	right := Crop(line, 2, 4)
	if Text(right) != " b" {
		t.Fatalf("right crop: got %q", Text(right))
	}
}

func TestDivideAtCellBoundaries(t *testing.T) {
	line := Line{{Text: "hello", Style: styleA}}
	parts := Divide(line, []int{0, 2, 3, 5})
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	want := []string{"he", "l", "lo"}
	for i, p := range parts {
		if Text(p) != want[i] {
			t.Fatalf("part %d: got %q want %q", i, Text(p), want[i])
		}
	}
}

func TestDivideNormalizesCuts(t *testing.T) {
	line := Line{{Text: "ab", Style: styleA}}
	// Unsorted and out-of-range offsets are clamped; pieces past the end are
	// empty rather than an error.
	parts := Divide(line, []int{0, 5, 2, 6})
	flat := Flatten(parts)
	if Text(flat) != "ab" {
		t.Fatalf("got %q", Text(flat))
	}
}

func TestAdjustCellLength(t *testing.T) {
	pad := tcell.StyleDefault
	line := Line{{Text: "ab", Style: styleA}}
	grown := AdjustCellLength(line, 5, pad)
	if CellLength(grown) != 5 || Text(grown) != "ab   " {
		t.Fatalf("grow: got %q width %d", Text(grown), CellLength(grown))
	}
	if grown[len(grown)-1].Style != pad {
		t.Fatalf("padding must use the pad style")
	}
	shrunk := AdjustCellLength(line, 1, pad)
	if Text(shrunk) != "a" {
		t.Fatalf("shrink: got %q", Text(shrunk))
	}
	same := AdjustCellLength(line, 2, pad)
	if Text(same) != "ab" {
		t.Fatalf("no-op adjust: got %q", Text(same))
	}
}

func TestFlatten(t *testing.T) {
	flat := Flatten([]Line{
		{{Text: "a", Style: styleA}},
		{},
		{{Text: "b", Style: styleB}, {Text: "c", Style: styleC}},
	})
	if Text(flat) != "abc" || len(flat) != 3 {
		t.Fatalf("got %q (%d segments)", Text(flat), len(flat))
	}
}
