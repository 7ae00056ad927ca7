// internal/types/position.go
package types

// Position is a location inside a document.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
// Rune indexing keeps positions stable for multi-byte characters.
type Position struct {
	Line int
	Col  int // Rune index
}

// Before reports whether p is lexicographically before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}
