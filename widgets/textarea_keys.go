package widgets

import "github.com/gdamore/tcell/v2"

// HandleKey implements keyboard editing and navigation.
func (t *TextArea) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		t.CursorLeft()
	case tcell.KeyRight:
		t.CursorRight()
	case tcell.KeyUp:
		t.CursorUp()
	case tcell.KeyDown:
		t.CursorDown()
	case tcell.KeyHome:
		t.setCursor(0, t.cursorY)
	case tcell.KeyEnd:
		t.setCursor(1<<30, t.cursorY)
	case tcell.KeyEnter:
		t.InsertLinebreakAtCursor()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.DeleteBackwards()
	case tcell.KeyDelete:
		t.DeleteAtCursor()
	case tcell.KeyRune:
		t.InsertTextAtCursor(string(ev.Rune()))
	default:
		// Not handled
		return false
	}
	t.EnsureCursorVisible()
	return true
}
