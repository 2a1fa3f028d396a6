package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	changelogErrors "github.com/railwayapp/changelog/errors"
	"github.com/railwayapp/changelog/ui"
)

type outputFile interface {
	io.Writer
	// Commit makes everything written visible at the destination.
	Commit() error
	// Abort discards everything written.
	Abort()
}

// atomicFile writes to a temporary file next to path and renames it into
// place on Commit, so a failed run never leaves a truncated changelog.
type atomicFile struct {
	*os.File
	path string
}

// createOutput checks whether path may be written and opens it. An existing
// file is replaced only with force or after the user confirms.
func createOutput(path string, force bool) (*atomicFile, error) {
	if _, err := os.Stat(path); err == nil && !force {
		if !ui.IsInteractive() {
			return nil, changelogErrors.OutputExists
		}
		ok, err := ui.PromptOverwrite(path)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, changelogErrors.OverwriteAborted
		}
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}
	return &atomicFile{File: f, path: path}, nil
}

func (a *atomicFile) Commit() error {
	if err := a.File.Close(); err != nil {
		os.Remove(a.File.Name())
		return errors.Wrap(changelogErrors.OutputWriteFailed, err.Error())
	}
	if err := os.Chmod(a.File.Name(), 0o644); err != nil {
		os.Remove(a.File.Name())
		return errors.Wrap(err, "chmod output")
	}
	if err := os.Rename(a.File.Name(), a.path); err != nil {
		os.Remove(a.File.Name())
		return errors.Wrap(err, "rename output")
	}
	return nil
}

func (a *atomicFile) Abort() {
	a.File.Close()
	os.Remove(a.File.Name())
}
