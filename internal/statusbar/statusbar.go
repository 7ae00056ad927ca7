// internal/statusbar/statusbar.go
package statusbar

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/mutablevalue/Code-Editor/internal/config"
	"github.com/mutablevalue/Code-Editor/internal/fileio"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleModified  tcell.Style // Style for the modified indicator
	StyleError     tcell.Style // Style for error text
	StyleMessage   tcell.Style // Style for temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: config.MessageTimeout,
	}
}

// StatusBar assembles and draws the session's display outputs: current
// path or the new-file label, dirty marker, busy indicator, error text,
// Save availability, and the 1-based cursor position.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	path        string
	isDirty     bool
	saveEnabled bool
	busy        string // "opening"/"saving" while an operation is in flight
	line, col   int    // 1-based
	err         error

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, line: 1, col: 1}
}

// SetFileInfo updates the path, dirty flag, and Save availability.
func (sb *StatusBar) SetFileInfo(path string, dirty, saveEnabled bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.path = path
	sb.isDirty = dirty
	sb.saveEnabled = saveEnabled
}

// SetCursorInfo updates the displayed cursor position (1-based).
func (sb *StatusBar) SetCursorInfo(line, col int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.line = line
	sb.col = col
}

// SetBusy updates the in-flight operation indicator ("" when idle).
func (sb *StatusBar) SetBusy(op string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.busy = op
}

// SetError records a failed operation. A cancelled dialog is not a system
// failure: it shows transiently and does not stick around.
func (sb *StatusBar) SetError(err error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if errors.Is(err, fileio.ErrDialogClosed) {
		sb.err = nil
		sb.tempMessage = fileio.Message(err)
		sb.tempMessageTime = time.Now()
		return
	}
	sb.err = err
}

// ClearError drops any persistent error text; called when the user resumes
// editing.
func (sb *StatusBar) ClearError() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.err = nil
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// leftText builds the left side of the status line. Error text takes the
// place of the path, matching the session's display contract.
func (sb *StatusBar) leftText() string {
	if sb.err != nil {
		return fileio.Message(sb.err)
	}
	path := sb.path
	if path == "" {
		path = "New File"
	}
	modified := ""
	if sb.isDirty {
		modified = " [Modified]"
	}
	busy := ""
	if sb.busy != "" {
		busy = fmt.Sprintf(" (%s...)", sb.busy)
	}
	save := ""
	if sb.saveEnabled {
		save = " -- Ctrl+S Save"
	}
	return fmt.Sprintf("%s%s%s%s", path, modified, busy, save)
}

// rightText is the conventional 1-based line:column indicator.
func (sb *StatusBar) rightText() string {
	return fmt.Sprintf("%d:%d", sb.line, sb.col)
}

// Draw renders the status bar on the last screen row using grapheme-aware
// widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	// Expire the temporary message before choosing what to show.
	tempActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !tempActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var left string
	var style tcell.Style
	switch {
	case tempActive:
		left = sb.tempMessage
		style = sb.config.StyleMessage
	case sb.err != nil:
		left = sb.leftText()
		style = sb.config.StyleError
	case sb.isDirty:
		left = sb.leftText()
		style = sb.config.StyleModified
	default:
		left = sb.leftText()
		style = sb.config.StyleDefault
	}
	right := sb.rightText()
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	drawText(screen, 0, y, width, left, style)

	rightWidth := uniseg.StringWidth(right)
	if rightWidth < width {
		drawText(screen, width-rightWidth, y, rightWidth, right, style)
	}
}

// drawText writes text starting at x, clipping to maxWidth columns,
// advancing by grapheme cluster width.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	currentX := x
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX-x+clusterWidth > maxWidth {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			screen.SetContent(currentX, y, runes[0], combining, style)
		}
		currentX += clusterWidth
	}
}
