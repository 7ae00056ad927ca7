// internal/fileio/errors.go
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrDialogClosed reports that the user cancelled a file picker. It is not
// a failure of the system; callers show it transiently at most.
var ErrDialogClosed = errors.New("file dialog closed")

// ErrorKind is a coarse reason code for a failed filesystem operation,
// used to pick a display message.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotFound
	KindPermission
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "file not found"
	case KindPermission:
		return "permission denied"
	default:
		return "I/O error"
	}
}

// IOError reports a failed filesystem read or write.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Kind ErrorKind
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
}

func (e *IOError) Unwrap() error { return e.Err }

// classify wraps a raw filesystem error into an IOError with its kind
// derived from the fs sentinel errors.
func classify(op, path string, err error) *IOError {
	kind := KindOther
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return &IOError{Op: op, Path: path, Kind: kind, Err: err}
}

// Message returns the status-line text for a gateway error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrDialogClosed) {
		return "cancelled"
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr.Kind.String()
	}
	return err.Error()
}
