// internal/clipboard/manager.go
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/mutablevalue/Code-Editor/internal/logger"
)

// Manager holds the copy/cut register. With useSystem enabled it reads and
// writes the system clipboard through atotto/clipboard, falling back to the
// internal register when the platform clipboard is unavailable (headless
// environments, missing xclip).
type Manager struct {
	register  string
	useSystem bool
}

// NewManager creates a clipboard manager.
func NewManager(useSystem bool) *Manager {
	return &Manager{useSystem: useSystem}
}

// Write stores text into the register (and the system clipboard if enabled).
func (m *Manager) Write(text string) {
	m.register = text
	if !m.useSystem {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		logger.Warnf("Clipboard: system write failed, keeping internal register: %v", err)
	}
}

// Read returns the register content, preferring the system clipboard when
// enabled and readable.
func (m *Manager) Read() string {
	if m.useSystem {
		if text, err := clipboard.ReadAll(); err == nil {
			return text
		} else {
			logger.Warnf("Clipboard: system read failed, using internal register: %v", err)
		}
	}
	return m.register
}
