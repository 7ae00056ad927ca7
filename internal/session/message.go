// internal/session/message.go
package session

// Message is a file-I/O completion delivered back to the control
// goroutine. Gateway goroutines carry only copies of the data they need
// and communicate results exclusively through these messages; they never
// touch session state.
type Message interface {
	isMessage()
}

// FileOpenedMsg is the completion of an Open (or the startup default load).
type FileOpenedMsg struct {
	Gen     uint64
	Path    string
	Content string
	Err     error
}

// FileSavedMsg is the completion of a Save.
type FileSavedMsg struct {
	Gen  uint64
	Path string
	Err  error
}

func (FileOpenedMsg) isMessage() {}
func (FileSavedMsg) isMessage()  {}
