// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme carries the explicit style configuration for an editable
// surface. Styles are plain values passed in by the host; nothing here reads
// ambient terminal or console state.
package theme

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme styles one editable surface.
type Theme struct {
	// Text is the base style for buffer content and padding.
	Text tcell.Style
	// Cursor is painted over the cell the cursor occupies.
	Cursor tcell.Style
	// Blank styles rows below the buffer's last line.
	Blank tcell.Style
}

// Default returns a white-block cursor on the terminal's default text style.
func Default() Theme {
	text := tcell.StyleDefault
	return Theme{
		Text:   text,
		Cursor: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		Blank:  text,
	}
}

// Normalize resolves unset entries: a zero Cursor is derived from Text by
// luminance inversion, a zero Blank falls back to Text. A zero Text style is
// left alone; it means the terminal's own default.
func (t Theme) Normalize() Theme {
	if t.Cursor == tcell.StyleDefault {
		t.Cursor = DeriveCursor(t.Text)
	}
	if t.Blank == tcell.StyleDefault {
		t.Blank = t.Text
	}
	return t
}

// DeriveCursor builds a cursor style by inverting the text style, picking a
// block colour that contrasts with the text background by luminance.
func DeriveCursor(text tcell.Style) tcell.Style {
	fg, bg, _ := text.Decompose()
	block := tcell.ColorWhite
	ink := tcell.ColorBlack
	if lum(fg) > lum(bg) {
		// Light-on-dark text: the light foreground makes the better block.
		block, ink = fg, bg
	}
	return tcell.StyleDefault.Background(block).Foreground(ink)
}

// lum returns the perceptual lightness of a colour in [0, 1].
func lum(c tcell.Color) float64 {
	if !c.Valid() {
		return 0
	}
	r, g, b := c.TrueColor().RGB()
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	_, _, l := col.Hcl()
	return l
}
