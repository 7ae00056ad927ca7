// internal/session/session.go
package session

import (
	"errors"

	"github.com/mutablevalue/Code-Editor/internal/document"
	"github.com/mutablevalue/Code-Editor/internal/event"
	"github.com/mutablevalue/Code-Editor/internal/fileio"
	"github.com/mutablevalue/Code-Editor/internal/logger"
)

// ErrBusy reports that an Open or Save was requested while another one is
// still in flight. Requests are serialized; the caller surfaces this as a
// status message rather than queueing.
var ErrBusy = errors.New("operation already in progress")

// Op identifies the pending asynchronous operation, if any.
type Op int

const (
	OpNone Op = iota
	OpOpening
	OpSaving
)

func (o Op) String() string {
	switch o {
	case OpOpening:
		return "opening"
	case OpSaving:
		return "saving"
	default:
		return "idle"
	}
}

// Session is the editor's state machine. It owns the document, the
// associated file path (empty means never persisted), the dirty flag, the
// last error, and at most one in-flight gateway operation. All methods
// must be called from the single control goroutine; gateway work runs in
// its own goroutines and reports back through the Messages channel, which
// the control goroutine feeds into Handle.
type Session struct {
	doc     *document.Document
	path    string
	dirty   bool
	lastErr error

	pending Op
	gen     uint64 // document generation; bumped by New, stamped onto in-flight ops

	gateway fileio.Gateway
	events  *event.Manager
	msgs    chan Message
}

// New creates a session holding a fresh empty document. A brand-new
// document was never persisted, so it starts dirty.
func New(gw fileio.Gateway, events *event.Manager) *Session {
	return &Session{
		doc:     document.New(),
		dirty:   true,
		gateway: gw,
		events:  events,
		msgs:    make(chan Message, 4),
	}
}

// Messages returns the completion channel the control loop selects on.
func (s *Session) Messages() <-chan Message { return s.msgs }

// Document returns the owned document.
func (s *Session) Document() *document.Document { return s.doc }

// Path returns the associated file path, or "" if the document has never
// been saved or loaded from a location.
func (s *Session) Path() string { return s.path }

// IsDirty reports whether the in-memory document may differ from the
// persisted content (or was never persisted).
func (s *Session) IsDirty() bool { return s.dirty }

// LastError returns the error from the most recent failed operation, or
// nil. Cleared by the next edit action.
func (s *Session) LastError() error { return s.lastErr }

// Pending returns the in-flight operation, OpNone when idle.
func (s *Session) Pending() Op { return s.pending }

// Busy reports whether an Open or Save is in flight.
func (s *Session) Busy() bool { return s.pending != OpNone }

// CanSave reports whether the Save command should be enabled.
func (s *Session) CanSave() bool { return s.dirty }

// Edit applies an edit action to the document. Editing is synchronous and
// available in every state. A content-modifying action marks the session
// dirty; any edit clears the last error so stale errors do not linger once
// the user resumes typing.
func (s *Session) Edit(a document.Action) {
	modified := s.doc.Apply(a)
	s.lastErr = nil
	if modified {
		s.dirty = true
		s.events.Dispatch(event.TypeDocumentEdited, event.DocumentEditedData{Cursor: s.doc.Cursor()})
	} else {
		s.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: s.doc.Cursor()})
	}
}

// NewDocument replaces the document with an empty one. Synchronous and
// permitted in every state; an in-flight completion from before the
// replacement is discarded when it arrives (its generation is stale).
func (s *Session) NewDocument() {
	s.doc = document.New()
	s.path = ""
	s.dirty = true
	s.gen++
	s.events.Dispatch(event.TypeDocumentReplaced, event.DocumentReplacedData{})
}

// Open begins an asynchronous pick-and-read. Returns ErrBusy if another
// Open or Save is already in flight.
func (s *Session) Open() error {
	if s.pending != OpNone {
		logger.Warnf("Session: open rejected, %s in flight", s.pending)
		return ErrBusy
	}
	s.pending = OpOpening
	gen := s.gen
	go func() {
		path, content, err := s.gateway.PickAndRead()
		s.msgs <- FileOpenedMsg{Gen: gen, Path: path, Content: content, Err: err}
	}()
	return nil
}

// OpenPath begins an asynchronous read of a known location without
// prompting; used for the startup default load. Its failure is reported
// exactly like a user-triggered open.
func (s *Session) OpenPath(path string) error {
	if s.pending != OpNone {
		logger.Warnf("Session: open rejected, %s in flight", s.pending)
		return ErrBusy
	}
	s.pending = OpOpening
	gen := s.gen
	go func() {
		content, err := s.gateway.Read(path)
		s.msgs <- FileOpenedMsg{Gen: gen, Path: path, Content: content, Err: err}
	}()
	return nil
}

// Save begins an asynchronous write of the current content to the known
// path, or to a destination the user is prompted for when the document has
// never been saved. The content is snapshotted here; the goroutine only
// carries copies.
func (s *Session) Save() error {
	if s.pending != OpNone {
		logger.Warnf("Session: save rejected, %s in flight", s.pending)
		return ErrBusy
	}
	s.pending = OpSaving
	gen := s.gen
	path := s.path
	text := s.doc.Text()
	go func() {
		resolved, err := s.gateway.ResolveAndWrite(path, text)
		s.msgs <- FileSavedMsg{Gen: gen, Path: resolved, Err: err}
	}()
	return nil
}

// Handle applies a completion message. Failures never abort anything: they
// are captured into the last error and leave the session valid and
// editable. A completion whose generation predates a NewDocument is
// discarded so it cannot resurrect stale path/content.
func (s *Session) Handle(msg Message) {
	s.pending = OpNone

	switch m := msg.(type) {
	case FileOpenedMsg:
		if m.Gen != s.gen {
			logger.Debugf("Session: discarding stale open completion for %q", m.Path)
			return
		}
		if m.Err != nil {
			s.lastErr = m.Err
			logger.Infof("Session: open failed: %v", m.Err)
			s.events.Dispatch(event.TypeSessionError, event.SessionErrorData{Err: m.Err})
			return
		}
		s.path = m.Path
		s.doc.Load(m.Content)
		s.dirty = false
		s.lastErr = nil
		logger.Infof("Session: opened %q", m.Path)
		s.events.Dispatch(event.TypeDocumentReplaced, event.DocumentReplacedData{Path: m.Path})
		s.events.Dispatch(event.TypeFileOpened, event.FileOpenedData{Path: m.Path})

	case FileSavedMsg:
		if m.Gen != s.gen {
			logger.Debugf("Session: discarding stale save completion for %q", m.Path)
			return
		}
		if m.Err != nil {
			s.lastErr = m.Err
			logger.Infof("Session: save failed: %v", m.Err)
			s.events.Dispatch(event.TypeSessionError, event.SessionErrorData{Err: m.Err})
			return
		}
		s.path = m.Path
		s.dirty = false
		logger.Infof("Session: saved %q", m.Path)
		s.events.Dispatch(event.TypeFileSaved, event.FileSavedData{Path: m.Path})
	}
}
