// internal/input/action.go
package input

import "github.com/mutablevalue/Code-Editor/internal/document"

// Request identifies a session-level operation decoded from input.
type Request int

const (
	// RequestNone means the event decoded to nothing actionable.
	RequestNone Request = iota

	// --- Session operations (1:1 request -> session mapping) ---
	RequestQuit
	RequestSave // Save button and the Ctrl+S shortcut
	RequestOpen
	RequestNewFile

	// --- Clipboard operations (routed through the clipboard manager) ---
	RequestCopy
	RequestCut
	RequestPaste

	// RequestEdit carries a document edit action in Command.Action.
	RequestEdit
)

// Command is a decoded input event. The dispatcher performs no business
// logic; it is pure event translation.
type Command struct {
	Request Request
	Action  document.Action // valid when Request == RequestEdit
}

func edit(a document.Action) Command {
	return Command{Request: RequestEdit, Action: a}
}
