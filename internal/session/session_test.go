// internal/session/session_test.go
package session

import (
	"errors"
	"testing"
	"time"

	"github.com/mutablevalue/Code-Editor/internal/document"
	"github.com/mutablevalue/Code-Editor/internal/event"
	"github.com/mutablevalue/Code-Editor/internal/fileio"
)

// fakeGateway lets each test script the gateway's behavior.
type fakeGateway struct {
	pickAndRead     func() (string, string, error)
	read            func(path string) (string, error)
	resolveAndWrite func(path, content string) (string, error)
}

func (g *fakeGateway) PickAndRead() (string, string, error) {
	return g.pickAndRead()
}

func (g *fakeGateway) Read(path string) (string, error) {
	return g.read(path)
}

func (g *fakeGateway) ResolveAndWrite(path, content string) (string, error) {
	return g.resolveAndWrite(path, content)
}

var _ fileio.Gateway = (*fakeGateway)(nil)

func receiveMsg(t *testing.T, s *Session) Message {
	t.Helper()
	select {
	case msg := <-s.Messages():
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for completion message")
		return nil
	}
}

func TestNewSessionStartsDirtyWithoutPath(t *testing.T) {
	s := New(&fakeGateway{}, event.NewManager())
	if !s.IsDirty() {
		t.Fatal("fresh session should be dirty: it was never persisted")
	}
	if s.Path() != "" {
		t.Fatalf("fresh session path = %q, want empty", s.Path())
	}
	if s.Busy() {
		t.Fatal("fresh session should be idle")
	}
}

func TestEditMarksDirtyAndClearsError(t *testing.T) {
	s := New(&fakeGateway{}, event.NewManager())
	s.lastErr = errors.New("stale")
	s.dirty = false

	s.Edit(document.InsertRune('a'))
	if !s.IsDirty() {
		t.Fatal("content edit should mark the session dirty")
	}
	if s.LastError() != nil {
		t.Fatalf("edit should clear the last error, got %v", s.LastError())
	}
}

func TestCursorMovementDoesNotDirty(t *testing.T) {
	s := New(&fakeGateway{}, event.NewManager())
	s.dirty = false
	s.Edit(document.MoveCursor(document.DirRight, false))
	if s.IsDirty() {
		t.Fatal("pure movement should not dirty the session")
	}
}

func TestOpenSuccess(t *testing.T) {
	gw := &fakeGateway{
		pickAndRead: func() (string, string, error) {
			return "/tmp/notes.txt", "hello\nworld", nil
		},
	}
	s := New(gw, event.NewManager())

	if err := s.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Pending() != OpOpening {
		t.Fatalf("pending = %v, want opening", s.Pending())
	}
	s.Handle(receiveMsg(t, s))

	if s.Path() != "/tmp/notes.txt" {
		t.Fatalf("path = %q", s.Path())
	}
	if s.IsDirty() {
		t.Fatal("a freshly opened document should be clean")
	}
	if s.LastError() != nil {
		t.Fatalf("lastErr = %v, want nil", s.LastError())
	}
	if got := s.Document().Text(); got != "hello\nworld" {
		t.Fatalf("document text = %q", got)
	}
	if s.Busy() {
		t.Fatal("completion should clear the pending operation")
	}
}

func TestOpenCancelledLeavesStateIntact(t *testing.T) {
	gw := &fakeGateway{
		pickAndRead: func() (string, string, error) {
			return "", "", fileio.ErrDialogClosed
		},
	}
	s := New(gw, event.NewManager())
	s.Edit(document.InsertRune('x'))

	if err := s.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Handle(receiveMsg(t, s))

	if !errors.Is(s.LastError(), fileio.ErrDialogClosed) {
		t.Fatalf("lastErr = %v, want dialog-closed", s.LastError())
	}
	if s.Path() != "" {
		t.Fatalf("path = %q, want unchanged empty", s.Path())
	}
	if got := s.Document().Text(); got != "x" {
		t.Fatalf("document text = %q, want unchanged %q", got, "x")
	}
	if !s.IsDirty() {
		t.Fatal("dirty flag should survive a cancelled open")
	}
}

func TestOpenFailureKeepsDocument(t *testing.T) {
	ioErr := &fileio.IOError{Op: "read", Path: "/nope", Kind: fileio.KindNotFound}
	gw := &fakeGateway{
		read: func(path string) (string, error) { return "", ioErr },
	}
	s := New(gw, event.NewManager())

	if err := s.OpenPath("/nope"); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	s.Handle(receiveMsg(t, s))

	var got *fileio.IOError
	if !errors.As(s.LastError(), &got) || got.Kind != fileio.KindNotFound {
		t.Fatalf("lastErr = %v, want not-found IOError", s.LastError())
	}
	if s.Path() != "" {
		t.Fatalf("failed open must not adopt the path, got %q", s.Path())
	}
}

func TestSaveWithKnownPath(t *testing.T) {
	var gotPath, gotContent string
	gw := &fakeGateway{
		read: func(path string) (string, error) { return "content", nil },
		resolveAndWrite: func(path, content string) (string, error) {
			gotPath, gotContent = path, content
			return path, nil
		},
	}
	s := New(gw, event.NewManager())
	if err := s.OpenPath("/tmp/f.txt"); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	s.Handle(receiveMsg(t, s))

	s.Edit(document.InsertRune('!'))
	if !s.CanSave() {
		t.Fatal("dirty session should allow Save")
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Handle(receiveMsg(t, s))

	if gotPath != "/tmp/f.txt" {
		t.Fatalf("write path = %q", gotPath)
	}
	if gotContent != "!content" {
		t.Fatalf("write content = %q", gotContent)
	}
	if s.IsDirty() {
		t.Fatal("successful save should clear the dirty flag")
	}
	if s.Path() != "/tmp/f.txt" {
		t.Fatalf("path = %q", s.Path())
	}
}

func TestSaveAsAdoptsResolvedPath(t *testing.T) {
	gw := &fakeGateway{
		resolveAndWrite: func(path, content string) (string, error) {
			if path != "" {
				t.Fatalf("unsaved document should prompt, got path %q", path)
			}
			return "/tmp/chosen.txt", nil
		},
	}
	s := New(gw, event.NewManager())
	s.Edit(document.InsertRune('a'))

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Handle(receiveMsg(t, s))

	if s.Path() != "/tmp/chosen.txt" {
		t.Fatalf("path = %q, want the destination the user picked", s.Path())
	}
	if s.IsDirty() {
		t.Fatal("successful save-as should clear the dirty flag")
	}
}

func TestSaveCancelledKeepsDirty(t *testing.T) {
	gw := &fakeGateway{
		resolveAndWrite: func(path, content string) (string, error) {
			return "", fileio.ErrDialogClosed
		},
	}
	s := New(gw, event.NewManager())
	s.Edit(document.InsertRune('a'))

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Handle(receiveMsg(t, s))

	if !s.IsDirty() {
		t.Fatal("cancelled save must leave the session dirty")
	}
	if s.Path() != "" {
		t.Fatalf("path = %q, want unchanged empty", s.Path())
	}
}

func TestConcurrentOperationsAreRejected(t *testing.T) {
	release := make(chan struct{})
	gw := &fakeGateway{
		pickAndRead: func() (string, string, error) {
			<-release
			return "/tmp/a.txt", "", nil
		},
		resolveAndWrite: func(path, content string) (string, error) {
			return path, nil
		},
	}
	s := New(gw, event.NewManager())

	if err := s.Open(); err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := s.Open(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Open err = %v, want ErrBusy", err)
	}
	if err := s.Save(); !errors.Is(err, ErrBusy) {
		t.Fatalf("Save during open err = %v, want ErrBusy", err)
	}

	close(release)
	s.Handle(receiveMsg(t, s))
	if s.Busy() {
		t.Fatal("completion should make the session idle again")
	}
	if err := s.Save(); err != nil {
		t.Fatalf("session should accept operations after completion, got %v", err)
	}
}

func TestNewDocumentDiscardsStaleCompletion(t *testing.T) {
	release := make(chan struct{})
	gw := &fakeGateway{
		pickAndRead: func() (string, string, error) {
			<-release
			return "/tmp/old.txt", "old content", nil
		},
	}
	s := New(gw, event.NewManager())

	if err := s.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.NewDocument()
	close(release)
	s.Handle(receiveMsg(t, s))

	if s.Path() != "" {
		t.Fatalf("stale completion adopted path %q", s.Path())
	}
	if got := s.Document().Text(); got != "" {
		t.Fatalf("stale completion loaded content %q", got)
	}
	if !s.IsDirty() {
		t.Fatal("fresh document should stay dirty")
	}
	if s.Busy() {
		t.Fatal("stale completion must still clear the pending flag")
	}
}

func TestNewDocumentResetsState(t *testing.T) {
	gw := &fakeGateway{
		read: func(path string) (string, error) { return "content", nil },
	}
	s := New(gw, event.NewManager())
	if err := s.OpenPath("/tmp/f.txt"); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	s.Handle(receiveMsg(t, s))

	s.NewDocument()
	if s.Path() != "" {
		t.Fatalf("path = %q, want empty", s.Path())
	}
	if !s.IsDirty() {
		t.Fatal("new document should be dirty")
	}
	if got := s.Document().Text(); got != "" {
		t.Fatalf("document text = %q, want empty", got)
	}
}

func TestSessionEventsAreDispatched(t *testing.T) {
	events := event.NewManager()
	var seen []event.Type
	for _, typ := range []event.Type{
		event.TypeDocumentEdited, event.TypeDocumentReplaced,
		event.TypeFileOpened, event.TypeFileSaved, event.TypeSessionError,
	} {
		typ := typ
		events.Subscribe(typ, func(e event.Event) bool {
			seen = append(seen, typ)
			return false
		})
	}

	gw := &fakeGateway{
		pickAndRead: func() (string, string, error) { return "/tmp/a.txt", "x", nil },
		resolveAndWrite: func(path, content string) (string, error) {
			return "", fileio.ErrDialogClosed
		},
	}
	s := New(gw, events)

	s.Edit(document.InsertRune('a'))
	if err := s.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Handle(receiveMsg(t, s))
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Handle(receiveMsg(t, s))

	want := []event.Type{
		event.TypeDocumentEdited,
		event.TypeDocumentReplaced,
		event.TypeFileOpened,
		event.TypeSessionError,
	}
	if len(seen) != len(want) {
		t.Fatalf("saw %d events %v, want %d", len(seen), seen, len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, seen[i], want[i])
		}
	}
}
