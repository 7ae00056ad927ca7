// internal/fileio/gateway.go
package fileio

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"

	"github.com/mutablevalue/Code-Editor/internal/logger"
)

// Gateway abstracts file-picker dialogs and filesystem read/write. The
// session never inspects the filesystem directly; it calls these
// operations and reacts to their results. Every operation is cancel-free
// and retry-free at this layer: a failure is terminal for that one call.
type Gateway interface {
	// PickAndRead prompts the user to choose a file and reads it.
	// Returns ErrDialogClosed if the picker was cancelled, an *IOError if
	// the chosen file cannot be read.
	PickAndRead() (path, content string, err error)

	// Read reads a known location without prompting; used for the startup
	// default load.
	Read(path string) (content string, err error)

	// ResolveAndWrite writes content to path. If path is empty it prompts
	// for a save destination first (ErrDialogClosed if cancelled). Returns
	// the resolved path on success.
	ResolveAndWrite(path, content string) (string, error)
}

// DialogGateway implements Gateway with native open/save dialogs and plain
// UTF-8 text files. Content is written and read as-is; no metadata.
type DialogGateway struct{}

// NewDialogGateway creates the standard gateway.
func NewDialogGateway() *DialogGateway {
	return &DialogGateway{}
}

func (g *DialogGateway) PickAndRead() (string, string, error) {
	path, err := dialog.File().Title("Open File").Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", "", ErrDialogClosed
		}
		return "", "", classify("read", path, err)
	}
	path = filepath.Clean(path)
	content, err := g.Read(path)
	if err != nil {
		return "", "", err
	}
	return path, content, nil
}

func (g *DialogGateway) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debugf("Gateway: read %q failed: %v", path, err)
		return "", classify("read", path, err)
	}
	return string(data), nil
}

func (g *DialogGateway) ResolveAndWrite(path, content string) (string, error) {
	if path == "" {
		picked, err := dialog.File().Title("Save File").Save()
		if err != nil {
			if errors.Is(err, dialog.ErrCancelled) {
				return "", ErrDialogClosed
			}
			return "", classify("write", picked, err)
		}
		path = filepath.Clean(picked)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		logger.Debugf("Gateway: write %q failed: %v", path, err)
		return "", classify("write", path, err)
	}
	return path, nil
}

var _ Gateway = (*DialogGateway)(nil)
