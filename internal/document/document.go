// internal/document/document.go
package document

import (
	"strings"

	"github.com/mutablevalue/Code-Editor/internal/types"
)

// Document owns the text content and the cursor/selection state. It knows
// nothing about files, dirtiness, or rendering; it applies edit actions and
// reports text and positions. A document always holds at least one line.
type Document struct {
	lines  [][]rune
	cursor types.Position

	// --- Selection State ---
	selecting bool           // True if a selection is active
	selAnchor types.Position // Fixed end of the selection; the other end follows the cursor
}

// New creates an empty document with the cursor at (0,0).
func New() *Document {
	return &Document{
		lines: [][]rune{{}},
	}
}

// Load replaces the entire content and places the cursor at (0,0).
// The content is a plain string already read from wherever it came from;
// there is no error condition here.
func (d *Document) Load(content string) {
	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	d.lines = lines
	d.cursor = types.Position{}
	d.clearSelection()
}

// Text produces the full content as a single string, lines joined by
// newline. Load followed by Text is lossless.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, line := range d.lines {
		sb.WriteString(string(line))
		if i < len(d.lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Lines returns the content line by line, for display.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = string(line)
	}
	return out
}

// LineCount returns the number of lines. Never less than one.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns a single line's text. Out-of-range indexes yield "".
func (d *Document) Line(index int) string {
	if index < 0 || index >= len(d.lines) {
		return ""
	}
	return string(d.lines[index])
}

// Cursor returns the internal 0-based cursor position.
func (d *Document) Cursor() types.Position {
	return d.cursor
}

// CursorPosition returns the cursor as 1-based (line, column) for status
// display, matching conventional editor numbering.
func (d *Document) CursorPosition() (line, col int) {
	return d.cursor.Line + 1, d.cursor.Col + 1
}

// HasSelection reports whether a non-empty selection is active.
func (d *Document) HasSelection() bool {
	return d.selecting && d.selAnchor != d.cursor
}

// Selection returns the normalized selection range (start <= end) and
// whether a selection is active.
func (d *Document) Selection() (start, end types.Position, ok bool) {
	if !d.HasSelection() {
		return types.Position{Line: -1, Col: -1}, types.Position{Line: -1, Col: -1}, false
	}
	start, end = d.selAnchor, d.cursor
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, true
}

// SelectedText returns the text inside the active selection, or "".
func (d *Document) SelectedText() string {
	start, end, ok := d.Selection()
	if !ok {
		return ""
	}
	var sb strings.Builder
	for lineIdx := start.Line; lineIdx <= end.Line; lineIdx++ {
		line := d.lines[lineIdx]
		from, to := 0, len(line)
		if lineIdx == start.Line {
			from = start.Col
		}
		if lineIdx == end.Line {
			to = end.Col
		}
		sb.WriteString(string(line[from:to]))
		if lineIdx < end.Line {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (d *Document) clearSelection() {
	d.selecting = false
	d.selAnchor = types.Position{Line: -1, Col: -1}
}

// startOrUpdateSelection anchors a new selection at the current cursor if
// none is active. The moving end always follows the cursor afterwards.
func (d *Document) startOrUpdateSelection() {
	if !d.selecting {
		d.selAnchor = d.cursor
		d.selecting = true
	}
}

// clamp forces a position inside the current buffer bounds:
// 0 <= line < len(lines), 0 <= col <= len(lines[line]).
func (d *Document) clamp(pos types.Position) types.Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(d.lines) {
		pos.Line = len(d.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if max := len(d.lines[pos.Line]); pos.Col > max {
		pos.Col = max
	}
	return pos
}
