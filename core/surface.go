// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/surface.go
// Summary: Surface composes widgets into a cell framebuffer with
// dirty-region redraw and a fire-and-forget refresh notifier.

package core

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Surface owns a small widget list and composes it into a framebuffer.
// Widgets report dirty regions through the injected invalidator; redraw
// requests are forwarded to the notifier channel without blocking, and a
// dropped notification is tolerated because the next edit re-requests it.
type Surface struct {
	mu      sync.Mutex // protects widgets, focus, buffer
	dirtyMu sync.Mutex // protects dirty list and notifier
	W, H    int
	widgets []Widget // later entries draw on top
	focused Widget
	bgStyle tcell.Style
	buf     [][]Cell

	notifier chan<- bool
	dirty    []Rect
}

// NewSurface creates an empty surface with the given background style.
func NewSurface(bg tcell.Style) *Surface {
	return &Surface{bgStyle: bg}
}

// SetRefreshNotifier installs the channel that receives redraw requests.
func (s *Surface) SetRefreshNotifier(ch chan<- bool) {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	s.notifier = ch
}

// RequestRefresh asks the host for a repaint, dropping the request when the
// channel is full or absent.
func (s *Surface) RequestRefresh() {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	s.requestRefreshLocked()
}

func (s *Surface) requestRefreshLocked() {
	if s.notifier == nil {
		return
	}
	select {
	case s.notifier <- true:
	default:
	}
}

// Resize sets the surface size and invalidates everything.
func (s *Surface) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.W, s.H = w, h
	s.buf = nil
	s.dirtyMu.Lock()
	s.invalidateAllLocked()
	s.dirtyMu.Unlock()
}

// AddWidget appends w on top of the z-order and injects the invalidator.
func (s *Surface) AddWidget(w Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.widgets = append(s.widgets, w)
	if ia, ok := w.(InvalidationAware); ok {
		ia.SetInvalidator(s.Invalidate)
	}
	s.dirtyMu.Lock()
	s.invalidateAllLocked()
	s.dirtyMu.Unlock()
}

// Focus moves keyboard focus to w if it accepts it.
func (s *Surface) Focus(w Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w == nil || !w.Focusable() || s.focused == w {
		return
	}
	if s.focused != nil {
		s.focused.Blur()
	}
	s.focused = w
	s.focused.Focus()
}

// HandleKey routes the event to the focused widget.
func (s *Surface) HandleKey(ev *tcell.EventKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.focused == nil || !s.focused.HandleKey(ev) {
		return false
	}
	s.dirtyMu.Lock()
	if len(s.dirty) == 0 {
		s.invalidateAllLocked()
	} else {
		s.requestRefreshLocked()
	}
	s.dirtyMu.Unlock()
	return true
}

// Invalidate marks a region dirty and requests a refresh. Regions partly or
// fully outside the surface are clipped during Render, not rejected here.
func (s *Surface) Invalidate(r Rect) {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	if r.Empty() {
		return
	}
	s.dirty = append(s.dirty, r)
	s.requestRefreshLocked()
}

// InvalidateAll marks the whole surface for redraw.
func (s *Surface) InvalidateAll() {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	s.invalidateAllLocked()
}

func (s *Surface) invalidateAllLocked() {
	s.dirty = append(s.dirty, Rect{W: s.W, H: s.H})
	s.requestRefreshLocked()
}

func (s *Surface) ensureBufferLocked() {
	if s.buf != nil && len(s.buf) == s.H && (s.H == 0 || len(s.buf[0]) == s.W) {
		return
	}
	s.buf = make([][]Cell, s.H)
	for y := range s.buf {
		row := make([]Cell, s.W)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: s.bgStyle}
		}
		s.buf[y] = row
	}
}

// Render redraws the accumulated dirty regions (or the full frame when none
// are pending) and returns the framebuffer.
func (s *Surface) Render() [][]Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureBufferLocked()

	s.dirtyMu.Lock()
	pending := s.dirty
	s.dirty = nil
	s.dirtyMu.Unlock()

	full := Rect{W: s.W, H: s.H}
	if len(pending) == 0 {
		pending = []Rect{full}
	}
	for _, clip := range pending {
		clip = clip.Intersect(full)
		if clip.Empty() {
			continue
		}
		p := NewPainter(s.buf, clip)
		p.Fill(clip, ' ', s.bgStyle)
		for _, w := range s.widgets {
			wx, wy := w.Position()
			ww, wh := w.Size()
			if clip.Overlaps(Rect{X: wx, Y: wy, W: ww, H: wh}) {
				w.Draw(p)
			}
		}
	}
	return s.buf
}
