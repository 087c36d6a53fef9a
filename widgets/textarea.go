// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/textarea.go
// Summary: Multiline editable text surface with a clamped cursor and
// syntax-highlighted rows. Edits mutate the buffer, then rendering state is
// regenerated explicitly; there is no implicit recomputation.

package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeledit/buffer"
	"github.com/framegrace/texeledit/core"
	"github.com/framegrace/texeledit/highlight"
	"github.com/framegrace/texeledit/segment"
	"github.com/framegrace/texeledit/theme"
)

// TextArea is a multiline editor over a line buffer. The cursor is reclamped
// on every change so positions handed to the buffer are always in range.
type TextArea struct {
	core.BaseWidget
	buf              *buffer.Buffer
	cursorX, cursorY int
	scrollX, scrollY int

	// lines is rendering state, rebuilt from the buffer after every edit.
	lines []segment.Line

	Theme    theme.Theme
	Language string
	hl       highlight.Highlighter

	inv func(core.Rect)
}

// NewTextArea creates an empty editor at the given rect using the default
// theme and Chroma highlighting.
func NewTextArea(x, y, w, h int) *TextArea {
	t := &TextArea{
		buf:   buffer.New(),
		Theme: theme.Default(),
	}
	t.hl = highlight.NewChroma("")
	t.SetPosition(x, y)
	t.Resize(w, h)
	t.SetFocusable(true)
	return t
}

// SetHighlighter swaps the highlighting engine and regenerates rows.
func (t *TextArea) SetHighlighter(h highlight.Highlighter) {
	t.hl = h
	t.updateLines()
}

// SetInvalidator allows the host surface to inject a dirty-region callback.
func (t *TextArea) SetInvalidator(fn func(core.Rect)) { t.inv = fn }

// Buffer exposes the underlying text store, mainly for hosts and tests.
func (t *TextArea) Buffer() *buffer.Buffer { return t.buf }

// Cursor returns the clamped cursor position.
func (t *TextArea) Cursor() buffer.Position {
	return buffer.Position{X: t.cursorX, Y: t.cursorY}
}

// Scroll returns the current scroll offsets.
func (t *TextArea) Scroll() (x, y int) { return t.scrollX, t.scrollY }

// SetScroll sets the scroll offsets; the host viewport owns these.
func (t *TextArea) SetScroll(x, y int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	t.scrollX, t.scrollY = x, y
	t.invalidateViewport()
}

// VirtualSize reports the buffer extent in cells as (maxLineLength+1,
// lineCount); the extra column keeps an end-of-line cursor reachable. It is
// computed from the buffer, so a fresh widget already reports (1, 1).
func (t *TextArea) VirtualSize() (w, h int) {
	return t.buf.MaxLineLength() + 1, t.buf.LineCount()
}

// styles returns the theme with unset entries resolved, so a caller that only
// sets Text still gets a visible, contrasting cursor block.
func (t *TextArea) styles() theme.Theme { return t.Theme.Normalize() }

// CursorLeft moves the cursor one column left, clamped.
func (t *TextArea) CursorLeft() { t.setCursor(t.cursorX-1, t.cursorY) }

// CursorRight moves the cursor one column right, clamped to end-of-line.
func (t *TextArea) CursorRight() { t.setCursor(t.cursorX+1, t.cursorY) }

// CursorUp moves the cursor one row up, clamped.
func (t *TextArea) CursorUp() { t.setCursor(t.cursorX, t.cursorY-1) }

// CursorDown moves the cursor one row down, clamped.
func (t *TextArea) CursorDown() { t.setCursor(t.cursorX, t.cursorY+1) }

// setCursor applies the raw target then reclamps. The row is clamped first:
// the horizontal clamp depends on the clamped row's line length.
func (t *TextArea) setCursor(x, y int) {
	prev := buffer.Position{X: t.cursorX, Y: t.cursorY}
	t.cursorY = t.clampY(y)
	t.cursorX = t.clampX(x)
	t.refreshCursorRegion(prev, buffer.Position{X: t.cursorX, Y: t.cursorY})
}

func (t *TextArea) clampY(y int) int {
	if y < 0 {
		return 0
	}
	if last := t.buf.LineCount() - 1; y > last {
		return last
	}
	return y
}

// clampX clamps against the current row's line length. An absent length
// leaves the column unconstrained: the vertical clamp is authoritative for
// row validity.
func (t *TextArea) clampX(x int) int {
	if x < 0 {
		return 0
	}
	length, ok := t.buf.LineLength(t.cursorY)
	if !ok {
		return x
	}
	if x > length {
		return length
	}
	return x
}

// InsertLinebreakAtCursor splits the current line at the cursor. The order is
// fixed: buffer split, cursor down, column to zero, then regenerate rows, so
// the cursor lands at the start of the new line.
func (t *TextArea) InsertLinebreakAtCursor() {
	t.buf.InsertLinebreak(t.Cursor())
	t.CursorDown()
	t.setCursor(0, t.cursorY)
	t.updateLines()
}

// InsertTextAtCursor splices text at the cursor and advances the column by
// the inserted rune count. A line separator takes the compound linebreak
// path instead and does not advance the column.
func (t *TextArea) InsertTextAtCursor(text string) {
	if buffer.IsLinebreak(text) {
		t.InsertLinebreakAtCursor()
		return
	}
	t.buf.InsertText(t.Cursor(), text)
	t.updateLines()
	t.setCursor(t.cursorX+len([]rune(text)), t.cursorY)
}

// DeleteAtCursor removes the rune under the cursor, if any.
func (t *TextArea) DeleteAtCursor() {
	length, ok := t.buf.LineLength(t.cursorY)
	if !ok || t.cursorX >= length {
		return
	}
	t.buf.DeleteText(t.Cursor())
	t.updateLines()
	t.setCursor(t.cursorX, t.cursorY)
}

// DeleteBackwards removes the rune before the cursor; at column zero it joins
// the current line onto the previous one.
func (t *TextArea) DeleteBackwards() {
	if t.cursorX > 0 {
		t.buf.DeleteText(buffer.Position{X: t.cursorX - 1, Y: t.cursorY})
		t.updateLines()
		t.setCursor(t.cursorX-1, t.cursorY)
		return
	}
	if t.cursorY == 0 {
		return
	}
	prevLen, _ := t.buf.LineLength(t.cursorY - 1)
	t.buf.JoinLines(t.cursorY - 1)
	t.updateLines()
	t.setCursor(prevLen, t.cursorY-1)
}

// updateLines regenerates all styled rows from the buffer. Regeneration is
// whole-buffer; incremental re-highlighting is out of scope at widget scale.
func (t *TextArea) updateLines() {
	hl := t.hl
	if hl == nil {
		hl = highlight.Plain{Style: t.Theme.Text}
	}
	t.lines = hl.Highlight(t.buf.Serialize(), t.Language, highlight.Options{
		MaxWidth: t.buf.MaxLineLength(),
		Height:   t.buf.LineCount(),
	})
	t.invalidateViewport()
}

// RenderLine produces the finished styled row for viewport row y: scroll
// offset applied, cursor overlaid, cropped to the horizontal window.
func (t *TextArea) RenderLine(y int) segment.Line {
	y += t.scrollY
	if y < 0 || y >= len(t.lines) {
		// Below (or before) content. A brand-new surface has no rows yet;
		// keep a visible cursor block on its very first row.
		if y == 0 {
			return segment.Line{{Text: " ", Style: t.styles().Cursor}}
		}
		return segment.Line{}
	}
	row := t.lines[y]
	if y == t.cursorY {
		row = t.overlayCursor(row)
	}
	return segment.Crop(row, t.scrollX, t.scrollX+t.Rect.W)
}

// overlayCursor recolours the run covering the cursor cell. The row is split
// at the cursor's cell boundaries, re-flattened and padded one cell past the
// line so an end-of-line cursor still has a paintable cell. A lookup miss
// returns the row unmodified; the cursor is simply not drawn that frame.
func (t *TextArea) overlayCursor(row segment.Line) segment.Line {
	th := t.styles()
	cell := t.cursorCell()
	width := segment.CellLength(row)
	parts := segment.Divide(row, []int{0, cell, cell + 1, width})
	flat := segment.Flatten(parts)
	flat = segment.AdjustCellLength(flat, width+1, th.Text)

	i, ok := segment.IndexAtCell(flat, cell)
	if !ok {
		return row
	}
	flat[i] = segment.Segment{Text: flat[i].Text, Style: th.Cursor}
	return flat
}

// cellAt translates a position's rune column into a cell offset on its row.
// The two differ when the line holds wide runes. An absent row leaves the
// column as-is.
func (t *TextArea) cellAt(p buffer.Position) int {
	line, ok := t.buf.Line(p.Y)
	if !ok {
		return p.X
	}
	if p.X >= len(line) {
		return runewidth.StringWidth(string(line))
	}
	return runewidth.StringWidth(string(line[:p.X]))
}

// cursorCell is the cursor's cell offset on its row.
func (t *TextArea) cursorCell() int { return t.cellAt(t.Cursor()) }

// refreshCursorRegion invalidates the tail of the rows the cursor left and
// entered. Stale positions (for rows that no longer exist) are skipped
// silently; the next full regeneration self-corrects.
func (t *TextArea) refreshCursorRegion(prev, cur buffer.Position) {
	if t.inv == nil {
		return
	}
	for _, p := range []buffer.Position{prev, cur} {
		if p.Y < 0 || p.Y >= len(t.lines) {
			continue
		}
		cell := t.cellAt(p)
		w := segment.CellLength(t.lines[p.Y]) - cell + 1
		if w < 1 {
			w = 1
		}
		r := core.Rect{
			X: t.Rect.X + cell - t.scrollX,
			Y: t.Rect.Y + p.Y - t.scrollY,
			W: w,
			H: 1,
		}
		t.inv(r.Intersect(t.Rect))
	}
}

// EnsureCursorVisible adjusts the scroll offsets so the cursor cell is inside
// the viewport. The horizontal window works in cell coordinates, so wide
// runes before the cursor are counted at their display width.
func (t *TextArea) EnsureCursorVisible() {
	cell := t.cursorCell()
	if cell < t.scrollX {
		t.scrollX = cell
	}
	if t.Rect.W > 0 && cell >= t.scrollX+t.Rect.W {
		t.scrollX = cell - t.Rect.W + 1
	}
	if t.cursorY < t.scrollY {
		t.scrollY = t.cursorY
	}
	if t.Rect.H > 0 && t.cursorY >= t.scrollY+t.Rect.H {
		t.scrollY = t.cursorY - t.Rect.H + 1
	}
}

// Draw paints the visible rows onto the host painter. Rows below the
// buffer's content take the blank style.
func (t *TextArea) Draw(p *core.Painter) {
	th := t.styles()
	for row := 0; row < t.Rect.H; row++ {
		rowRect := core.Rect{X: t.Rect.X, Y: t.Rect.Y + row, W: t.Rect.W, H: 1}
		if row+t.scrollY >= len(t.lines) && row+t.scrollY != 0 {
			p.Fill(rowRect, ' ', th.Blank)
		} else {
			p.Fill(rowRect, ' ', th.Text)
		}
		line := t.RenderLine(row)
		x := t.Rect.X
		limit := t.Rect.X + t.Rect.W
		for _, seg := range line {
			for _, r := range seg.Text {
				if x >= limit {
					break
				}
				p.SetCell(x, t.Rect.Y+row, r, seg.Style)
				x += runewidth.RuneWidth(r)
			}
		}
	}
}

func (t *TextArea) invalidateViewport() {
	if t.inv == nil {
		return
	}
	t.inv(t.Rect)
}
