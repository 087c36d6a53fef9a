// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/chroma.go
// Summary: Chroma-backed Highlighter producing tcell-styled rows.

package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texeledit/segment"
)

const defaultStyleName = "catppuccin-mocha"

// Chroma highlights text with the Chroma lexer/style machinery. The zero
// value uses the default style; NewChroma resolves a named style up front.
type Chroma struct {
	style *chroma.Style
	// Base is the style applied to token roles the theme leaves unset.
	Base tcell.Style
}

// NewChroma returns a highlighter using the named Chroma style, falling back
// to the default style when name is empty or unknown.
func NewChroma(name string) *Chroma {
	if name == "" {
		name = defaultStyleName
	}
	return &Chroma{style: styles.Get(name)}
}

// Highlight tokenizes text and splits the token stream into one styled row
// per line. When lang is empty the language is detected from content, first
// by enry's classifier, then by Chroma's own analysers.
func (c *Chroma) Highlight(text, lang string, opts Options) []segment.Line {
	style := c.style
	if style == nil {
		style = styles.Get(defaultStyleName)
	}
	lexer := resolveLexer(lang, text)
	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, text)
	if err != nil {
		// Degrade to unstyled rows rather than failing the render.
		return Plain{Style: c.Base}.Highlight(text, lang, opts)
	}

	baseColour := style.Get(chroma.Text).Colour
	rows := []segment.Line{{}}
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := c.tokenStyle(style.Get(tok.Type), baseColour)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				rows = append(rows, segment.Line{})
			}
			if part == "" {
				continue
			}
			last := len(rows) - 1
			rows[last] = append(rows[last], segment.Segment{Text: part, Style: st})
		}
	}
	return adjustRowCount(rows, opts.Height)
}

// tokenStyle maps a Chroma style entry onto the base tcell style. Colours
// matching the theme's base text colour keep the base foreground so the
// host's default-FG handling is preserved.
func (c *Chroma) tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour) tcell.Style {
	st := c.Base
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

// resolveLexer returns a lexer by name, by enry content detection, by
// Chroma's analysers, or the fallback, in that order.
func resolveLexer(name, text string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if detected := enry.GetLanguage("", []byte(text)); detected != "" {
		if l := lexers.Get(detected); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}
