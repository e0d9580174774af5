// Package adapter contains the infrastructure adapters of the runner: the
// filesystem, the simulator process, plan files and the status channel.
package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// ProjectFSAdapter abstracts filesystem operations on a WEPP project so the
// domain layer can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type ProjectFSAdapter interface {
	// Exists reports whether path exists. Errors other than "not found" are
	// returned as is.
	Exists(path m.Path) (bool, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path m.Path) error

	// Remove deletes a file. Missing files are not an error.
	Remove(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path

	// Diff returns a unified diff between the file at path and content. It is
	// empty when they are equal. A missing file diffs against nothing.
	Diff(path m.Path, content []byte) (string, error)
}

// LocalProjectFSAdapter implements ProjectFSAdapter on the local disk.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// Exists reports whether path exists.
func (a *LocalProjectFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalProjectFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalProjectFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths come from the project plan
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalProjectFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates path and any missing parents.
func (a *LocalProjectFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// Remove deletes a file, ignoring files that are already gone.
func (a *LocalProjectFSAdapter) Remove(path m.Path) error {
	err := os.Remove(string(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// JoinPath joins path elements into a single path.
func (a *LocalProjectFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// Diff compares the file at path with content.
func (a *LocalProjectFSAdapter) Diff(path m.Path, content []byte) (string, error) {
	current, err := a.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if bytes.Equal(current, content) {
		return "", nil
	}

	return UnifiedDiff(string(path), string(current), string(content))
}

// UnifiedDiff renders the changes from before to after with three lines of
// context.
func UnifiedDiff(name, before, after string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name,
		ToFile:   name + " (new)",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", name, err)
	}

	return text, nil
}
