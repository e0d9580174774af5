package model

import (
	"fmt"
	"time"
)

// Status represents the outcome of one simulator invocation or scheduled task.
type Status int

const (
	// StatusSuccess indicates the simulator exited cleanly.
	StatusSuccess Status = iota
	// StatusFailure indicates the simulator reported an error.
	StatusFailure
	// StatusSkipped indicates the run never started because a dependency failed.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// SimulationResult is the terminal outcome of executing one run file.
type SimulationResult struct {
	ExecutionID string
	RunName     string
	Scope       Scope
	Status      Status
	ExitCode    int
	Artifact    Path   // output artifact, set on success
	Diagnostics string // captured stderr, set on failure
	Log         Path   // combined stdout/stderr log written next to the run file
	Elapsed     time.Duration
}

// Succeeded reports whether the run produced its artifact.
func (r SimulationResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Err converts a failed result into an error wrapping ErrSimulationFailed.
func (r SimulationResult) Err() error {
	if r.Status == StatusSuccess {
		return nil
	}

	return &SimulationFailure{Result: r}
}

// SimulationFailure carries the diagnostics of a failed run.
type SimulationFailure struct {
	Result SimulationResult
}

func (f *SimulationFailure) Error() string {
	if f.Result.Status == StatusSkipped {
		return fmt.Sprintf("%s skipped: %s", f.Result.RunName, f.Result.Diagnostics)
	}

	return fmt.Sprintf("%s exited with code %d (see %s)", f.Result.RunName, f.Result.ExitCode, f.Result.Log)
}

func (f *SimulationFailure) Unwrap() error {
	return ErrSimulationFailed
}
