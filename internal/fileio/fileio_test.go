// internal/fileio/fileio_test.go
package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestReadExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello\nworld"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	g := NewDialogGateway()
	content, err := g.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if content != "hello\nworld" {
		t.Fatalf("content = %q", content)
	}
}

func TestReadMissingFileIsNotFound(t *testing.T) {
	g := NewDialogGateway()
	_, err := g.Read(filepath.Join(t.TempDir(), "missing.txt"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("err = %v, want *IOError", err)
	}
	if ioErr.Kind != KindNotFound {
		t.Fatalf("kind = %v, want not-found", ioErr.Kind)
	}
	if ioErr.Op != "read" {
		t.Fatalf("op = %q, want read", ioErr.Op)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatal("IOError should unwrap to the fs sentinel")
	}
}

func TestReadPermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "locked.txt")
	if err := os.WriteFile(path, []byte("x"), 0o000); err != nil {
		t.Fatalf("setup: %v", err)
	}

	g := NewDialogGateway()
	_, err := g.Read(path)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("err = %v, want *IOError", err)
	}
	if ioErr.Kind != KindPermission {
		t.Fatalf("kind = %v, want permission", ioErr.Kind)
	}
}

func TestResolveAndWriteWithExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	g := NewDialogGateway()
	resolved, err := g.ResolveAndWrite(path, "saved content")
	if err != nil {
		t.Fatalf("ResolveAndWrite: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("readback: %v", err)
	}
	if string(data) != "saved content" {
		t.Fatalf("file content = %q", data)
	}
}

func TestWriteFailureIsClassified(t *testing.T) {
	g := NewDialogGateway()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt")
	_, err := g.ResolveAndWrite(path, "x")
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("err = %v, want *IOError", err)
	}
	if ioErr.Op != "write" {
		t.Fatalf("op = %q, want write", ioErr.Op)
	}
}

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{fs.ErrNotExist, KindNotFound},
		{fs.ErrPermission, KindPermission},
		{errors.New("disk on fire"), KindOther},
	}
	for _, c := range cases {
		got := classify("read", "/p", c.err)
		if got.Kind != c.want {
			t.Fatalf("classify(%v) kind = %v, want %v", c.err, got.Kind, c.want)
		}
	}
}

func TestMessageText(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrDialogClosed, "cancelled"},
		{&IOError{Op: "read", Path: "/p", Kind: KindNotFound}, "file not found"},
		{&IOError{Op: "write", Path: "/p", Kind: KindPermission}, "permission denied"},
		{&IOError{Op: "write", Path: "/p", Kind: KindOther}, "I/O error"},
		{errors.New("boom"), "boom"},
	}
	for _, c := range cases {
		if got := Message(c.err); got != c.want {
			t.Fatalf("Message(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}
