// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package buffer holds the authoritative text of an editable surface as an
// ordered sequence of lines, each a rune slice. Positions are clamped by the
// caller (the cursor model); out-of-range mutation is a contract violation,
// not a runtime condition.
package buffer

import "strings"

// Position addresses a character slot: X is the column, Y the row, both
// zero-based. For insertion the column range is [0, line length]; for
// deletion it is [0, line length).
type Position struct {
	X, Y int
}

// Buffer is a line-oriented text store. It always holds at least one line,
// even when that line is empty.
type Buffer struct {
	lines [][]rune
}

// New returns a buffer containing a single empty line.
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// MaxLineLength returns the rune length of the longest line.
func (b *Buffer) MaxLineLength() int {
	max := 0
	for _, line := range b.lines {
		if len(line) > max {
			max = len(line)
		}
	}
	return max
}

// LineLength returns the rune length of line y, or ok=false when y is out of
// range. Absence is not an error: clamping logic reads it as "no constraint".
func (b *Buffer) LineLength(y int) (int, bool) {
	if y < 0 || y >= len(b.lines) {
		return 0, false
	}
	return len(b.lines[y]), true
}

// Line returns a copy of line y, or ok=false when y is out of range.
func (b *Buffer) Line(y int) ([]rune, bool) {
	if y < 0 || y >= len(b.lines) {
		return nil, false
	}
	return append([]rune(nil), b.lines[y]...), true
}

// Serialize joins all lines with "\n". This is the form handed to the
// highlighting engine.
func (b *Buffer) Serialize() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// IsLinebreak reports whether text is exactly one line separator.
func IsLinebreak(text string) bool {
	return text == "\n" || text == "\r\n"
}

// InsertLinebreak splits the line at pos: runes from the column onward move to
// a new line at row pos.Y+1, the original line keeps the head. The row must be
// in range.
func (b *Buffer) InsertLinebreak(pos Position) {
	line := b.lines[pos.Y]
	head := append([]rune(nil), line[:pos.X]...)
	tail := append([]rune(nil), line[pos.X:]...)
	b.lines[pos.Y] = head
	rest := append([][]rune{tail}, b.lines[pos.Y+1:]...)
	b.lines = append(b.lines[:pos.Y+1], rest...)
}

// InsertText splices text's runes at pos, shifting the remainder of the line
// right. The first rune of text lands at the column, the rest follow in
// order. A bare line separator delegates to InsertLinebreak.
func (b *Buffer) InsertText(pos Position, text string) {
	if IsLinebreak(text) {
		b.InsertLinebreak(pos)
		return
	}
	line := b.lines[pos.Y]
	b.lines[pos.Y] = append(line[:pos.X], append([]rune(text), line[pos.X:]...)...)
}

// DeleteText removes exactly one rune at pos, shifting the remainder left.
func (b *Buffer) DeleteText(pos Position) {
	line := b.lines[pos.Y]
	b.lines[pos.Y] = append(line[:pos.X], line[pos.X+1:]...)
}

// JoinLines appends line y+1 onto line y and removes it. Both rows must be in
// range.
func (b *Buffer) JoinLines(y int) {
	b.lines[y] = append(b.lines[y], b.lines[y+1]...)
	b.lines = append(b.lines[:y+1], b.lines[y+2:]...)
}
