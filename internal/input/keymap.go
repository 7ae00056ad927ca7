// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mutablevalue/Code-Editor/internal/document"
)

// Dispatcher translates tcell key events into Commands. Movement keys map
// to cursor actions, Shift extends the selection, control chords map to
// session requests. It holds no state beyond its keymaps.
type Dispatcher struct {
	requests  map[tcell.Key]Request            // control chords -> session requests
	movements map[tcell.Key]document.Direction // keys that move the cursor
}

// NewDispatcher creates a dispatcher with the default bindings.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		requests:  make(map[tcell.Key]Request),
		movements: make(map[tcell.Key]document.Direction),
	}
	d.loadDefaultBindings()
	return d
}

func (d *Dispatcher) loadDefaultBindings() {
	// --- Session requests ---
	d.requests[tcell.KeyCtrlS] = RequestSave
	d.requests[tcell.KeyCtrlO] = RequestOpen
	d.requests[tcell.KeyCtrlN] = RequestNewFile
	d.requests[tcell.KeyCtrlQ] = RequestQuit
	d.requests[tcell.KeyEscape] = RequestQuit

	// --- Clipboard ---
	d.requests[tcell.KeyCtrlC] = RequestCopy
	d.requests[tcell.KeyCtrlX] = RequestCut
	d.requests[tcell.KeyCtrlV] = RequestPaste

	// --- Movement ---
	d.movements[tcell.KeyUp] = document.DirUp
	d.movements[tcell.KeyDown] = document.DirDown
	d.movements[tcell.KeyLeft] = document.DirLeft
	d.movements[tcell.KeyRight] = document.DirRight
	d.movements[tcell.KeyHome] = document.DirLineStart
	d.movements[tcell.KeyEnd] = document.DirLineEnd
}

// ProcessEvent decodes one key event. Unmapped events yield RequestNone.
func (d *Dispatcher) ProcessEvent(ev *tcell.EventKey) Command {
	key := ev.Key()
	mod := ev.Modifiers()

	// 1. Control chords (tcell folds Ctrl into the Key constant).
	if req, ok := d.requests[key]; ok {
		return Command{Request: req}
	}

	// 2. Movement, with Shift extending the selection.
	if dir, ok := d.movements[key]; ok {
		extend := mod&tcell.ModShift != 0
		return edit(document.MoveCursor(dir, extend))
	}

	// 3. Editing keys.
	switch key {
	case tcell.KeyEnter:
		return edit(document.InsertNewline())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return edit(document.DeleteBackward())
	case tcell.KeyDelete:
		return edit(document.DeleteForward())
	case tcell.KeyTab:
		return edit(document.InsertRune('\t'))
	case tcell.KeyCtrlA:
		return edit(document.SelectAll())
	}

	// 4. Plain runes insert themselves.
	if key == tcell.KeyRune && mod&tcell.ModCtrl == 0 && mod&tcell.ModAlt == 0 {
		return edit(document.InsertRune(ev.Rune()))
	}

	return Command{Request: RequestNone}
}
