// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package segment models styled runs of text measured in terminal cells.
// Cell widths come from go-runewidth, so wide and zero-width runes are
// counted as they will occupy the terminal grid, not as rune counts.
package segment

import (
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Segment is a run of text rendered with a single style.
type Segment struct {
	Text  string
	Style tcell.Style
}

// CellLength returns the terminal-cell width of the segment's text.
func (s Segment) CellLength() int {
	return runewidth.StringWidth(s.Text)
}

// Line is one visual row as an ordered sequence of styled runs.
type Line []Segment

// CellLength returns the total cell width of the line.
func CellLength(line Line) int {
	n := 0
	for _, s := range line {
		n += s.CellLength()
	}
	return n
}

// Text returns the line's text with styling dropped.
func Text(line Line) string {
	var sb strings.Builder
	for _, s := range line {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Crop returns the cells of line in the half-open window [start, end).
// A wide rune straddling a window edge is replaced by spaces so the result
// is exactly the requested width.
func Crop(line Line, start, end int) Line {
	if end <= start {
		return Line{}
	}
	var out Line
	pos := 0
	for _, seg := range line {
		segWidth := seg.CellLength()
		if pos+segWidth <= start {
			pos += segWidth
			continue
		}
		if pos >= end {
			break
		}
		var sb strings.Builder
		cur := pos
		for _, r := range seg.Text {
			w := runewidth.RuneWidth(r)
			if cur+w <= start {
				cur += w
				continue
			}
			if cur >= end {
				break
			}
			if cur < start || cur+w > end {
				for i := max(cur, start); i < min(cur+w, end); i++ {
					sb.WriteByte(' ')
				}
			} else {
				sb.WriteRune(r)
			}
			cur += w
		}
		if sb.Len() > 0 {
			out = append(out, Segment{Text: sb.String(), Style: seg.Style})
		}
		pos += segWidth
	}
	return out
}

// Divide splits line at the given cell offsets and returns the pieces between
// consecutive offsets. Offsets are sorted and clamped to [0, total width];
// offsets past the end yield empty pieces.
func Divide(line Line, cuts []int) []Line {
	total := CellLength(line)
	norm := make([]int, 0, len(cuts))
	for _, c := range cuts {
		if c < 0 {
			c = 0
		}
		if c > total {
			c = total
		}
		norm = append(norm, c)
	}
	sort.Ints(norm)
	var parts []Line
	for i := 1; i < len(norm); i++ {
		parts = append(parts, Crop(line, norm[i-1], norm[i]))
	}
	return parts
}

// Flatten concatenates pieces back into a single line.
func Flatten(parts []Line) Line {
	var out Line
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// AdjustCellLength pads the line with pad-styled spaces, or crops it, so its
// total width is exactly length.
func AdjustCellLength(line Line, length int, pad tcell.Style) Line {
	width := CellLength(line)
	switch {
	case width < length:
		out := append(Line(nil), line...)
		return append(out, Segment{Text: strings.Repeat(" ", length-width), Style: pad})
	case width > length:
		return Crop(line, 0, length)
	default:
		return line
	}
}

// IndexAtCell walks cumulative widths and returns the index of the segment
// whose cells cover the given cell offset, or ok=false when the offset is at
// or past the end of the line.
func IndexAtCell(line Line, cell int) (int, bool) {
	length := 0
	for i, seg := range line {
		w := seg.CellLength()
		length += w
		if cell >= length-w && cell < length {
			return i, true
		}
	}
	return 0, false
}
