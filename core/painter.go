package core

import "github.com/gdamore/tcell/v2"

// Cell is one terminal grid cell.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Painter writes cells into a framebuffer, clipped to a region.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

// NewPainter wraps buf with the given clip region. Writes outside the clip or
// the buffer bounds are dropped.
func NewPainter(buf [][]Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// SetCell writes one cell if it falls inside the clip.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	if y < 0 || y >= len(p.buf) || x < 0 || x >= len(p.buf[y]) {
		return
	}
	p.buf[y][x] = Cell{Ch: ch, Style: style}
}

// Fill sets every cell of r to ch with the given style.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}
