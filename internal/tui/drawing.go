// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/mutablevalue/Code-Editor/internal/config"
	"github.com/mutablevalue/Code-Editor/internal/document"
	"github.com/mutablevalue/Code-Editor/internal/highlight"
	"github.com/mutablevalue/Code-Editor/internal/types"
)

// Fixed styles. Theming is out of scope; two backgrounds and a handful of
// syntax foregrounds suffice.
var (
	styleDefault   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleSelection = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)

	syntaxStyles = map[string]tcell.Style{
		"keyword":  styleDefault.Foreground(tcell.ColorYellow),
		"string":   styleDefault.Foreground(tcell.ColorGreen),
		"comment":  styleDefault.Foreground(tcell.ColorGray),
		"number":   styleDefault.Foreground(tcell.ColorFuchsia),
		"constant": styleDefault.Foreground(tcell.ColorFuchsia),
		"type":     styleDefault.Foreground(tcell.ColorAqua),
		"function": styleDefault.Foreground(tcell.ColorBlue),
		"property": styleDefault.Foreground(tcell.ColorTeal),
	}
)

// View tracks the visible window over the document. The viewport is pure
// display state and deliberately lives outside the core.
type View struct {
	ViewportY int // Top visible line index
	ViewportX int // Leftmost visible visual column
	TabWidth  int
}

// NewView creates a view with the configured tab width.
func NewView(tabWidth int) *View {
	if tabWidth <= 0 {
		tabWidth = config.DefaultTabWidth
	}
	return &View{TabWidth: tabWidth}
}

// ScrollTo adjusts the viewport so the cursor stays visible.
func (v *View) ScrollTo(doc *document.Document, width, height int) {
	viewHeight := height - config.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}
	cursor := doc.Cursor()

	if cursor.Line < v.ViewportY {
		v.ViewportY = cursor.Line
	} else if cursor.Line >= v.ViewportY+viewHeight {
		v.ViewportY = cursor.Line - viewHeight + 1
	}

	visualCol := v.visualColumn(doc.Line(cursor.Line), cursor.Col)
	if visualCol < v.ViewportX {
		v.ViewportX = visualCol
	} else if visualCol >= v.ViewportX+width {
		v.ViewportX = visualCol - width + 1
	}

	if v.ViewportY < 0 {
		v.ViewportY = 0
	}
	if v.ViewportX < 0 {
		v.ViewportX = 0
	}
}

// Draw renders the visible document lines, selection, syntax spans, and
// the hardware cursor.
func (v *View) Draw(t *TUI, doc *document.Document, spans highlight.Result) {
	screen := t.GetScreen()
	width, height := t.Size()
	viewHeight := height - config.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	selStart, selEnd, selActive := doc.Selection()

	for row := 0; row < viewHeight; row++ {
		lineIdx := v.ViewportY + row
		if lineIdx >= doc.LineCount() {
			break
		}
		v.drawLine(screen, width, row, lineIdx, doc.Line(lineIdx),
			spans[lineIdx], selStart, selEnd, selActive)
	}

	cursor := doc.Cursor()
	cursorVisual := v.visualColumn(doc.Line(cursor.Line), cursor.Col)
	screen.ShowCursor(cursorVisual-v.ViewportX, cursor.Line-v.ViewportY)
}

// drawLine renders one line, advancing by grapheme cluster and expanding
// tabs to the configured width.
func (v *View) drawLine(screen tcell.Screen, width, y, lineIdx int, line string,
	lineSpans []highlight.Span, selStart, selEnd types.Position, selActive bool) {

	visualCol := 0
	runeIdx := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		runes := gr.Runes()

		pos := types.Position{Line: lineIdx, Col: runeIdx}
		style := styleDefault
		if selActive && inSelection(pos, selStart, selEnd) {
			style = styleSelection
		} else if kind := spanKindAt(lineSpans, runeIdx); kind != "" {
			if s, ok := syntaxStyles[kind]; ok {
				style = s
			}
		}

		if len(runes) == 1 && runes[0] == '\t' {
			pad := v.TabWidth - (visualCol % v.TabWidth)
			for i := 0; i < pad; i++ {
				setContent(screen, visualCol+i-v.ViewportX, y, width, ' ', nil, style)
			}
			visualCol += pad
		} else {
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			setContent(screen, visualCol-v.ViewportX, y, width, runes[0], combining, style)
			visualCol += gr.Width()
		}
		runeIdx += len(runes)
	}
}

func setContent(screen tcell.Screen, x, y, width int, r rune, combining []rune, style tcell.Style) {
	if x < 0 || x >= width {
		return
	}
	screen.SetContent(x, y, r, combining, style)
}

// spanKindAt returns the style kind covering a rune column, or "".
func spanKindAt(spans []highlight.Span, col int) string {
	for _, s := range spans {
		if col >= s.StartCol && col < s.EndCol {
			return s.Kind
		}
	}
	return ""
}

// inSelection checks pos against the normalized [start, end) range.
func inSelection(pos, start, end types.Position) bool {
	if pos.Before(start) {
		return false
	}
	if pos == end || end.Before(pos) {
		return false
	}
	return true
}

// visualColumn computes the visual width of the line prefix before the
// given rune index, honoring tab stops and wide graphemes.
func (v *View) visualColumn(line string, runeIndex int) int {
	visual := 0
	runeIdx := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if runeIdx >= runeIndex {
			break
		}
		runes := gr.Runes()
		if len(runes) == 1 && runes[0] == '\t' {
			visual += v.TabWidth - (visual % v.TabWidth)
		} else {
			visual += gr.Width()
		}
		runeIdx += len(runes)
	}
	return visual
}
