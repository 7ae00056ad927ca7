// internal/document/action.go
package document

import "github.com/mutablevalue/Code-Editor/internal/types"

// Direction identifies a cursor movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirLineStart
	DirLineEnd
)

// ActionKind identifies the kind of edit action.
type ActionKind int

const (
	ActionNone ActionKind = iota

	// --- Content-modifying actions ---
	ActionInsertRune
	ActionInsertNewline
	ActionInsertText // multi-rune insertion, used by paste
	ActionDeleteBackward
	ActionDeleteForward

	// --- Cursor/selection actions (never dirty the document) ---
	ActionMoveCursor
	ActionSelectRange
	ActionSelectAll
)

// Action is a single decoded user edit operation. The zero value is a no-op.
type Action struct {
	Kind   ActionKind
	Rune   rune           // ActionInsertRune
	Text   string         // ActionInsertText
	Dir    Direction      // ActionMoveCursor
	Extend bool           // ActionMoveCursor: grow the selection instead of collapsing it
	Start  types.Position // ActionSelectRange
	End    types.Position // ActionSelectRange
}

// InsertRune inserts a single rune at the cursor.
func InsertRune(r rune) Action { return Action{Kind: ActionInsertRune, Rune: r} }

// InsertNewline splits the current line at the cursor.
func InsertNewline() Action { return Action{Kind: ActionInsertNewline} }

// InsertText inserts arbitrary (possibly multi-line) text at the cursor.
func InsertText(text string) Action { return Action{Kind: ActionInsertText, Text: text} }

// DeleteBackward removes the rune before the cursor, or the selection.
func DeleteBackward() Action { return Action{Kind: ActionDeleteBackward} }

// DeleteForward removes the rune after the cursor, or the selection.
func DeleteForward() Action { return Action{Kind: ActionDeleteForward} }

// MoveCursor moves the cursor one step in dir, optionally extending the selection.
func MoveCursor(dir Direction, extend bool) Action {
	return Action{Kind: ActionMoveCursor, Dir: dir, Extend: extend}
}

// SelectRange selects [start, end); both ends are clamped to the buffer.
func SelectRange(start, end types.Position) Action {
	return Action{Kind: ActionSelectRange, Start: start, End: end}
}

// SelectAll selects the entire document.
func SelectAll() Action { return Action{Kind: ActionSelectAll} }

// IsEdit reports whether the action modifies content when applied to a
// non-empty target. Movement and selection are never edits.
func (a Action) IsEdit() bool {
	switch a.Kind {
	case ActionInsertRune, ActionInsertNewline, ActionInsertText,
		ActionDeleteBackward, ActionDeleteForward:
		return true
	}
	return false
}
