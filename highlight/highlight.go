// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package highlight turns raw buffer text into styled rows. The Chroma
// implementation tokenizes the whole text in one pass so the lexer keeps
// full context across lines; regeneration is whole-buffer by design.
package highlight

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeledit/segment"
)

// Options carries explicit render bounds into a highlight call. There is no
// ambient console configuration; callers pass the bounds they derived from
// the buffer.
type Options struct {
	// MaxWidth is the cell width of the widest row the caller will render.
	// Rows are not cropped here; the renderer owns horizontal windows.
	MaxWidth int
	// Height is the number of rows to produce. Output is padded with empty
	// rows (or truncated) to exactly this count when it is positive.
	Height int
}

// Highlighter maps text to styled rows. Implementations must be
// deterministic for identical text, language hint and options.
type Highlighter interface {
	Highlight(text, lang string, opts Options) []segment.Line
}

// Plain produces single-style rows. It is the fallback when no syntax
// styling is wanted and the deterministic engine used by tests.
type Plain struct {
	Style tcell.Style
}

// Highlight splits text on "\n" into one row per line.
func (p Plain) Highlight(text, lang string, opts Options) []segment.Line {
	var rows []segment.Line
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			rows = append(rows, lineOf(text[start:i], p.Style))
			start = i + 1
		}
	}
	return adjustRowCount(rows, opts.Height)
}

func lineOf(text string, style tcell.Style) segment.Line {
	if text == "" {
		return segment.Line{}
	}
	return segment.Line{{Text: text, Style: style}}
}

// adjustRowCount pads with empty rows or truncates so len(rows) == height.
func adjustRowCount(rows []segment.Line, height int) []segment.Line {
	if height <= 0 {
		return rows
	}
	for len(rows) < height {
		rows = append(rows, segment.Line{})
	}
	return rows[:height]
}
