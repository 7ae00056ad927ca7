// internal/event/event.go
package event

import "github.com/mutablevalue/Code-Editor/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Session events
	TypeDocumentEdited   // A content-modifying edit action was applied
	TypeCursorMoved      // The cursor position changed without an edit
	TypeDocumentReplaced // New or a successful Open replaced the document
	TypeFileOpened       // An Open completed successfully
	TypeFileSaved        // A Save completed successfully
	TypeSessionError     // An Open/Save completed with an error

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeDocumentEdited:
		return "document-edited"
	case TypeCursorMoved:
		return "cursor-moved"
	case TypeDocumentReplaced:
		return "document-replaced"
	case TypeFileOpened:
		return "file-opened"
	case TypeFileSaved:
		return "file-saved"
	case TypeSessionError:
		return "session-error"
	case TypeAppReady:
		return "app-ready"
	case TypeAppQuit:
		return "app-quit"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// DocumentEditedData accompanies TypeDocumentEdited.
type DocumentEditedData struct {
	Cursor types.Position
}

// CursorMovedData accompanies TypeCursorMoved.
type CursorMovedData struct {
	NewPosition types.Position
}

// FileOpenedData accompanies TypeFileOpened.
type FileOpenedData struct {
	Path string
}

// FileSavedData accompanies TypeFileSaved.
type FileSavedData struct {
	Path string
}

// SessionErrorData accompanies TypeSessionError.
type SessionErrorData struct {
	Err error
}

// DocumentReplacedData accompanies TypeDocumentReplaced.
type DocumentReplacedData struct {
	Path string // "" for a fresh document
}

// AppReadyData accompanies TypeAppReady.
type AppReadyData struct{}

// AppQuitData accompanies TypeAppQuit.
type AppQuitData struct{}
