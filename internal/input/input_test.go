// internal/input/input_test.go
package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/mutablevalue/Code-Editor/internal/document"
)

func key(k tcell.Key, r rune, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, r, mod)
}

func TestControlChordsMapToRequests(t *testing.T) {
	d := NewDispatcher()
	cases := []struct {
		key  tcell.Key
		want Request
	}{
		{tcell.KeyCtrlS, RequestSave},
		{tcell.KeyCtrlO, RequestOpen},
		{tcell.KeyCtrlN, RequestNewFile},
		{tcell.KeyCtrlQ, RequestQuit},
		{tcell.KeyEscape, RequestQuit},
		{tcell.KeyCtrlC, RequestCopy},
		{tcell.KeyCtrlX, RequestCut},
		{tcell.KeyCtrlV, RequestPaste},
	}
	for _, c := range cases {
		cmd := d.ProcessEvent(key(c.key, 0, tcell.ModCtrl))
		if cmd.Request != c.want {
			t.Fatalf("key %v -> request %v, want %v", c.key, cmd.Request, c.want)
		}
	}
}

func TestArrowKeysMove(t *testing.T) {
	d := NewDispatcher()
	cases := []struct {
		key  tcell.Key
		want document.Direction
	}{
		{tcell.KeyUp, document.DirUp},
		{tcell.KeyDown, document.DirDown},
		{tcell.KeyLeft, document.DirLeft},
		{tcell.KeyRight, document.DirRight},
		{tcell.KeyHome, document.DirLineStart},
		{tcell.KeyEnd, document.DirLineEnd},
	}
	for _, c := range cases {
		cmd := d.ProcessEvent(key(c.key, 0, tcell.ModNone))
		if cmd.Request != RequestEdit {
			t.Fatalf("key %v -> request %v, want edit", c.key, cmd.Request)
		}
		if cmd.Action.Kind != document.ActionMoveCursor || cmd.Action.Dir != c.want {
			t.Fatalf("key %v -> action %+v, want move %v", c.key, cmd.Action, c.want)
		}
		if cmd.Action.Extend {
			t.Fatalf("key %v without Shift should not extend", c.key)
		}
	}
}

func TestShiftArrowExtendsSelection(t *testing.T) {
	d := NewDispatcher()
	cmd := d.ProcessEvent(key(tcell.KeyRight, 0, tcell.ModShift))
	if cmd.Action.Kind != document.ActionMoveCursor || !cmd.Action.Extend {
		t.Fatalf("Shift+Right -> %+v, want extending move", cmd.Action)
	}
}

func TestEditingKeys(t *testing.T) {
	d := NewDispatcher()

	if cmd := d.ProcessEvent(key(tcell.KeyEnter, 0, tcell.ModNone)); cmd.Action.Kind != document.ActionInsertNewline {
		t.Fatalf("Enter -> %+v", cmd.Action)
	}
	if cmd := d.ProcessEvent(key(tcell.KeyBackspace2, 0, tcell.ModNone)); cmd.Action.Kind != document.ActionDeleteBackward {
		t.Fatalf("Backspace -> %+v", cmd.Action)
	}
	if cmd := d.ProcessEvent(key(tcell.KeyDelete, 0, tcell.ModNone)); cmd.Action.Kind != document.ActionDeleteForward {
		t.Fatalf("Delete -> %+v", cmd.Action)
	}
	if cmd := d.ProcessEvent(key(tcell.KeyTab, 0, tcell.ModNone)); cmd.Action.Kind != document.ActionInsertRune || cmd.Action.Rune != '\t' {
		t.Fatalf("Tab -> %+v", cmd.Action)
	}
	if cmd := d.ProcessEvent(key(tcell.KeyCtrlA, 0, tcell.ModCtrl)); cmd.Action.Kind != document.ActionSelectAll {
		t.Fatalf("Ctrl+A -> %+v", cmd.Action)
	}
}

func TestPlainRuneInserts(t *testing.T) {
	d := NewDispatcher()
	cmd := d.ProcessEvent(key(tcell.KeyRune, 'é', tcell.ModNone))
	if cmd.Request != RequestEdit || cmd.Action.Kind != document.ActionInsertRune {
		t.Fatalf("rune key -> %+v", cmd)
	}
	if cmd.Action.Rune != 'é' {
		t.Fatalf("rune = %q, want é", cmd.Action.Rune)
	}
}

func TestModifiedRuneIsIgnored(t *testing.T) {
	d := NewDispatcher()
	cmd := d.ProcessEvent(key(tcell.KeyRune, 'x', tcell.ModAlt))
	if cmd.Request != RequestNone {
		t.Fatalf("Alt+x -> %+v, want none", cmd)
	}
}

func TestUnmappedKeyYieldsNone(t *testing.T) {
	d := NewDispatcher()
	cmd := d.ProcessEvent(key(tcell.KeyF5, 0, tcell.ModNone))
	if cmd.Request != RequestNone {
		t.Fatalf("F5 -> %+v, want none", cmd)
	}
}
