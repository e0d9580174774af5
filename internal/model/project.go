// Package model defines the value types shared by the run builders, the
// simulation executor and the scheduler.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Path represents a file system path.
type Path string

// WeppID identifies one hillslope or flowpath unit within a project.
type WeppID int

// Validate reports ErrInvalidReference for negative ids.
func (id WeppID) Validate() error {
	if id < 0 {
		return fmt.Errorf("wepp id %d is negative: %w", int(id), ErrInvalidReference)
	}

	return nil
}

func (id WeppID) String() string {
	return strconv.Itoa(int(id))
}

// ParseWeppID parses a base-10, non-negative wepp id.
func ParseWeppID(s string) (WeppID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.ContainsAny(trimmed, "+-") {
		return 0, fmt.Errorf("wepp id %q: %w", s, ErrInvalidReference)
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("wepp id %q: %w", s, ErrInvalidReference)
	}

	return WeppID(n), nil
}

// Layout is the per-invocation project configuration threaded through every
// builder call.
type Layout struct {
	// RunsDir is the directory the simulator runs in. Every path embedded in a
	// run file is relative to it.
	RunsDir Path
	// OutputDir holds pass and report files, relative to RunsDir.
	OutputDir string
	// SimYears is the number of years simulated by continuous runs.
	SimYears int
	// Reveg selects the revegetation variant of continuous hillslope runs.
	Reveg bool
	// ParentRunsDir locates the hillslope runs directory from RunsDir when
	// flowpaths run elsewhere. Empty when both are the same directory.
	ParentRunsDir string
}

// DefaultOutputDir is where hillslope outputs land relative to the runs dir.
const DefaultOutputDir = "../output"

// Output returns the configured output dir or the default.
func (l Layout) Output() string {
	if strings.TrimSpace(l.OutputDir) == "" {
		return DefaultOutputDir
	}

	return l.OutputDir
}

// JoinRel joins a relative directory and a file name with a single '/'.
// Traversal segments are kept verbatim.
func JoinRel(dir, name string) string {
	if dir == "" {
		return name
	}

	return strings.TrimRight(dir, "/") + "/" + name
}
