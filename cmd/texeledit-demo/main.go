// Copyright © 2025 Texeledit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// texeledit-demo hosts a single TextArea on a tcell screen. It is the
// reference wiring for embedding the surface into a real terminal host.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texeledit/core"
	"github.com/framegrace/texeledit/widgets"
)

func main() {
	lang := flag.String("lang", "", "language hint for syntax highlighting")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("texeledit-demo: stdin is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("texeledit-demo: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("texeledit-demo: %v", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	surface := core.NewSurface(tcell.StyleDefault)
	surface.Resize(w, h)

	ta := widgets.NewTextArea(0, 0, w, h)
	ta.Language = *lang
	surface.AddWidget(ta)
	surface.Focus(ta)

	refresh := make(chan bool, 1)
	surface.SetRefreshNotifier(refresh)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	paint := func() {
		buf := surface.Render()
		for y := range buf {
			for x := range buf[y] {
				c := buf[y][x]
				screen.SetContent(x, y, c.Ch, nil, c.Style)
			}
		}
		screen.Show()
	}
	paint()

	for {
		select {
		case <-refresh:
			paint()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				surface.Resize(w, h)
				ta.Resize(w, h)
				screen.Sync()
				paint()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
					return
				}
				if surface.HandleKey(ev) {
					paint()
				}
			}
		}
	}
}
