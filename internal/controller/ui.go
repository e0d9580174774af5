// Package controller renders build and run progress for the CLI.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeBuild StartMode = iota
	ModeRun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithBuildMode sets the UI to run-file build mode.
func WithBuildMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBuild
	}
}

// WithRunMode sets the UI to simulation mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeBuild}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// RunFileChange describes one run file written by a build.
type RunFileChange struct {
	Path    m.Path
	Scope   m.Scope
	Created bool
	// Diff is the unified diff against the previous content, empty when the
	// file did not change.
	Diff string
}

// Changed reports whether the build altered the file.
func (c RunFileChange) Changed() bool {
	return c.Created || c.Diff != ""
}

// UI defines how the workflow reports progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayBuild(ctx context.Context, changes []RunFileChange, err error) error
	DisplayConcurrencyInfo(ctx context.Context, parallel int, total int)
	DisplayStartingRun(ctx context.Context, run m.RunFile)
	DisplayCompletedRun(ctx context.Context, result m.SimulationResult)
	DisplaySummary(ctx context.Context, results []m.SimulationResult)
}

// NewUI returns the interactive TUI on terminals and SimpleUI elsewhere.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Counts tallies results by status.
type Counts struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// CountResults tallies results by status.
func CountResults(results []m.SimulationResult) Counts {
	var c Counts

	for _, r := range results {
		switch r.Status {
		case m.StatusSuccess:
			c.Succeeded++
		case m.StatusFailure:
			c.Failed++
		case m.StatusSkipped:
			c.Skipped++
		}
	}

	return c
}
