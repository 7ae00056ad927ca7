// internal/document/edit.go
package document

import (
	"strings"

	"github.com/mutablevalue/Code-Editor/internal/types"
)

// Apply mutates text and/or cursor according to the action and reports
// whether the action actually modified content. The returned flag drives
// the session's dirty tracking: cursor movement and selection changes
// return false, insertions and deletions return true unless they turned
// out to be no-ops (delete at the very start, paste of "").
//
// After any edit the cursor sits adjacent to the edit's effect and always
// inside buffer bounds.
func (d *Document) Apply(a Action) bool {
	switch a.Kind {
	case ActionInsertRune:
		d.deleteSelectionIfAny()
		d.insertRune(a.Rune)
		return true

	case ActionInsertNewline:
		d.deleteSelectionIfAny()
		d.insertNewline()
		return true

	case ActionInsertText:
		deleted := d.deleteSelectionIfAny()
		if a.Text == "" {
			return deleted
		}
		d.insertText(a.Text)
		return true

	case ActionDeleteBackward:
		if d.deleteSelectionIfAny() {
			return true
		}
		return d.deleteBackward()

	case ActionDeleteForward:
		if d.deleteSelectionIfAny() {
			return true
		}
		return d.deleteForward()

	case ActionMoveCursor:
		d.moveCursor(a.Dir, a.Extend)
		return false

	case ActionSelectRange:
		start := d.clamp(a.Start)
		end := d.clamp(a.End)
		d.selAnchor = start
		d.cursor = end
		d.selecting = true
		return false

	case ActionSelectAll:
		d.selAnchor = types.Position{}
		d.cursor = types.Position{
			Line: len(d.lines) - 1,
			Col:  len(d.lines[len(d.lines)-1]),
		}
		d.selecting = true
		return false
	}
	return false
}

// deleteSelectionIfAny removes the selected range, placing the cursor at
// its start. Reports whether anything was removed. The selection state is
// always reset here, even when it is empty (an extending move that hit a
// buffer edge leaves the anchor equal to the cursor): an anchor that
// survived a content edit would no longer point inside the text.
func (d *Document) deleteSelectionIfAny() bool {
	if !d.selecting {
		return false
	}
	start, end, ok := d.Selection()
	d.clearSelection()
	if !ok {
		return false
	}
	d.deleteRange(start, end)
	d.cursor = start
	return true
}

func (d *Document) insertRune(r rune) {
	line := d.lines[d.cursor.Line]
	col := d.cursor.Col

	updated := make([]rune, 0, len(line)+1)
	updated = append(updated, line[:col]...)
	updated = append(updated, r)
	updated = append(updated, line[col:]...)
	d.lines[d.cursor.Line] = updated

	d.cursor.Col++
}

// insertNewline splits the current line at the cursor. At end-of-document
// this appends a fresh empty line, which is exactly the split result.
func (d *Document) insertNewline() {
	line := d.lines[d.cursor.Line]
	col := d.cursor.Col

	head := append([]rune{}, line[:col]...)
	tail := append([]rune{}, line[col:]...)

	d.lines[d.cursor.Line] = head
	d.lines = append(d.lines[:d.cursor.Line+1],
		append([][]rune{tail}, d.lines[d.cursor.Line+1:]...)...)

	d.cursor.Line++
	d.cursor.Col = 0
}

// insertText inserts possibly multi-line text, leaving the cursor
// immediately after the inserted content.
func (d *Document) insertText(text string) {
	parts := strings.Split(text, "\n")
	line := d.lines[d.cursor.Line]
	col := d.cursor.Col

	head := append([]rune{}, line[:col]...)
	tail := append([]rune{}, line[col:]...)

	if len(parts) == 1 {
		inserted := []rune(parts[0])
		d.lines[d.cursor.Line] = append(append(head, inserted...), tail...)
		d.cursor.Col = col + len(inserted)
		return
	}

	newLines := make([][]rune, len(parts))
	newLines[0] = append(head, []rune(parts[0])...)
	for i := 1; i < len(parts)-1; i++ {
		newLines[i] = []rune(parts[i])
	}
	last := []rune(parts[len(parts)-1])
	newLines[len(parts)-1] = append(append([]rune{}, last...), tail...)

	d.lines = append(d.lines[:d.cursor.Line],
		append(newLines, d.lines[d.cursor.Line+1:]...)...)

	d.cursor.Line += len(parts) - 1
	d.cursor.Col = len(last)
}

// deleteBackward removes the rune before the cursor, joining lines at
// column zero. Deleting at (0,0) is a no-op.
func (d *Document) deleteBackward() bool {
	if d.cursor.Col > 0 {
		line := d.lines[d.cursor.Line]
		col := d.cursor.Col
		d.lines[d.cursor.Line] = append(line[:col-1:col-1], line[col:]...)
		d.cursor.Col--
		return true
	}
	if d.cursor.Line > 0 {
		prev := d.lines[d.cursor.Line-1]
		col := len(prev)
		d.lines[d.cursor.Line-1] = append(prev, d.lines[d.cursor.Line]...)
		d.lines = append(d.lines[:d.cursor.Line], d.lines[d.cursor.Line+1:]...)
		d.cursor.Line--
		d.cursor.Col = col
		return true
	}
	return false
}

// deleteForward removes the rune after the cursor, joining with the next
// line at end-of-line. At the very end of the document it is a no-op.
func (d *Document) deleteForward() bool {
	line := d.lines[d.cursor.Line]
	if d.cursor.Col < len(line) {
		col := d.cursor.Col
		d.lines[d.cursor.Line] = append(line[:col:col], line[col+1:]...)
		return true
	}
	if d.cursor.Line < len(d.lines)-1 {
		d.lines[d.cursor.Line] = append(line, d.lines[d.cursor.Line+1]...)
		d.lines = append(d.lines[:d.cursor.Line+1], d.lines[d.cursor.Line+2:]...)
		return true
	}
	return false
}

// deleteRange removes [start, end); both positions must already be valid.
func (d *Document) deleteRange(start, end types.Position) {
	if start == end {
		return
	}
	if start.Line == end.Line {
		line := d.lines[start.Line]
		d.lines[start.Line] = append(line[:start.Col:start.Col], line[end.Col:]...)
		return
	}
	head := d.lines[start.Line][:start.Col]
	tail := d.lines[end.Line][end.Col:]
	d.lines[start.Line] = append(head[:len(head):len(head)], tail...)
	d.lines = append(d.lines[:start.Line+1], d.lines[end.Line+1:]...)
}

// moveCursor moves one step in dir with tide-style wrap and clamping:
// moving right at end-of-line wraps to the next line, left at column zero
// wraps to the previous line's end, and vertical movement clamps the
// column to the target line's length. Movement past buffer bounds clamps
// rather than errors.
func (d *Document) moveCursor(dir Direction, extend bool) {
	if extend {
		d.startOrUpdateSelection()
	} else if d.HasSelection() {
		// Collapse the selection to its edge in the direction of travel.
		start, end, _ := d.Selection()
		d.clearSelection()
		switch dir {
		case DirLeft, DirUp, DirLineStart:
			d.cursor = start
		default:
			d.cursor = end
		}
		if dir == DirLeft || dir == DirRight {
			return
		}
	} else {
		d.clearSelection()
	}

	switch dir {
	case DirUp:
		d.cursor = d.clamp(types.Position{Line: d.cursor.Line - 1, Col: d.cursor.Col})
	case DirDown:
		d.cursor = d.clamp(types.Position{Line: d.cursor.Line + 1, Col: d.cursor.Col})
	case DirLeft:
		if d.cursor.Col > 0 {
			d.cursor.Col--
		} else if d.cursor.Line > 0 {
			d.cursor.Line--
			d.cursor.Col = len(d.lines[d.cursor.Line])
		}
	case DirRight:
		if d.cursor.Col < len(d.lines[d.cursor.Line]) {
			d.cursor.Col++
		} else if d.cursor.Line < len(d.lines)-1 {
			d.cursor.Line++
			d.cursor.Col = 0
		}
	case DirLineStart:
		d.cursor.Col = 0
	case DirLineEnd:
		d.cursor.Col = len(d.lines[d.cursor.Line])
	}
}
