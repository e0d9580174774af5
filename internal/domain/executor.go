package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"weppcloud.dev/pkg/wepprunner/internal/adapter"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

const (
	hillslopeCompletionMarker = "WEPP COMPLETED HILLSLOPE SIMULATION SUCCESSFULLY"
	watershedCompletionMarker = "WEPP COMPLETED WATERSHED SIMULATION SUCCESSFULLY"
)

// CompletionMarker returns the line the simulator prints after a successful
// run of the given scope. Flowpaths report as hillslopes.
func CompletionMarker(scope m.Scope) string {
	if scope == m.ScopeWatershed {
		return watershedCompletionMarker
	}

	return hillslopeCompletionMarker
}

// SimulationExecutor runs one run file through the simulator.
type SimulationExecutor interface {
	// Execute writes run into runsDir, runs the simulator there and reports
	// the outcome. A failed simulation is a result, not an error; errors are
	// reserved for the run file that could not be written, the process that
	// could not be started and cancellation.
	Execute(ctx context.Context, run m.RunFile, runsDir m.Path) (m.SimulationResult, error)
}

// ExecutorOption configures a SimulationExecutor.
type ExecutorOption func(*simulationExecutor)

// WithCompletionMarker additionally requires the simulator's completion line
// in its output before a run counts as successful.
func WithCompletionMarker() ExecutorOption {
	return func(e *simulationExecutor) {
		e.requireMarker = true
	}
}

// WithFlowpathCleanup removes the run file, the loss and event outputs and the
// log of every successful flowpath run.
func WithFlowpathCleanup() ExecutorOption {
	return func(e *simulationExecutor) {
		e.cleanupFlowpaths = true
	}
}

// WithStatusPublisher streams every simulator output line to publisher.
func WithStatusPublisher(publisher adapter.StatusPublisher) ExecutorOption {
	return func(e *simulationExecutor) {
		e.publisher = publisher
	}
}

type simulationExecutor struct {
	fs               adapter.ProjectFSAdapter
	simulator        adapter.SimulatorAdapter
	publisher        adapter.StatusPublisher
	requireMarker    bool
	cleanupFlowpaths bool
	now              func() time.Time
}

// NewSimulationExecutor constructs a SimulationExecutor backed by the
// provided filesystem and simulator adapters.
func NewSimulationExecutor(fs adapter.ProjectFSAdapter, simulator adapter.SimulatorAdapter, opts ...ExecutorOption) SimulationExecutor {
	e := &simulationExecutor{
		fs:        fs,
		simulator: simulator,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *simulationExecutor) Execute(ctx context.Context, run m.RunFile, runsDir m.Path) (m.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return m.SimulationResult{}, err
	}

	if run.IsZero() {
		return m.SimulationResult{}, fmt.Errorf("empty run file: %w", m.ErrInvalidReference)
	}

	executionID := uuid.NewString()
	logger := slog.With("executionID", executionID, "run", run.Name(), "scope", run.Scope())

	if err := e.prepare(run, runsDir); err != nil {
		logger.Error("Failed to prepare run", "error", err)
		return m.SimulationResult{}, err
	}

	logger.Debug("Starting simulation", "runsDir", runsDir)

	start := e.now()

	out, err := e.simulator.Run(ctx, adapter.SimulatorRequest{
		Dir:    runsDir,
		Stdin:  []byte(run.Text()),
		OnLine: e.onLine(),
	})
	if err != nil {
		logger.Error("Simulator did not run", "error", err)
		return m.SimulationResult{}, fmt.Errorf("run %s: %w", run.Name(), err)
	}

	result := m.SimulationResult{
		ExecutionID: executionID,
		RunName:     run.Name(),
		Scope:       run.Scope(),
		ExitCode:    out.ExitCode,
		Log:         e.fs.JoinPath(string(runsDir), logName(run)),
		Elapsed:     e.now().Sub(start),
	}

	if err := e.fs.WriteFile(result.Log, []byte(out.Stdout+out.Stderr), 0o644); err != nil {
		logger.Error("Failed to write simulator log", "path", result.Log, "error", err)
		return m.SimulationResult{}, fmt.Errorf("write log %s: %w", result.Log, err)
	}

	if !e.succeeded(run, out) {
		result.Status = m.StatusFailure
		result.Diagnostics = out.Stderr

		if out.ExitCode == 0 {
			result.Diagnostics = missingMarkerDiagnostics(run, out.Stderr)
		}

		logger.Warn("Simulation failed", "exitCode", out.ExitCode, "log", result.Log)

		return result, nil
	}

	result.Status = m.StatusSuccess
	result.Artifact = e.fs.JoinPath(string(runsDir), run.Artifact())

	if run.Scope() == m.ScopeFlowpath && e.cleanupFlowpaths {
		e.cleanup(run, runsDir)
		result.Log = ""
	}

	logger.Info("Simulation completed", "elapsed", result.Elapsed, "artifact", result.Artifact)

	return result, nil
}

// prepare writes the run file and creates the directory of its artifact.
func (e *simulationExecutor) prepare(run m.RunFile, runsDir m.Path) error {
	runPath := e.fs.JoinPath(string(runsDir), run.Name())
	if err := e.fs.WriteFile(runPath, []byte(run.Text()), 0o644); err != nil {
		return fmt.Errorf("write run file %s: %w", runPath, err)
	}

	if dir := path.Dir(run.Artifact()); dir != "." && !path.IsAbs(dir) {
		outDir := e.fs.JoinPath(string(runsDir), dir)
		if err := e.fs.MkdirAll(outDir); err != nil {
			return fmt.Errorf("create output dir %s: %w", outDir, err)
		}
	}

	return nil
}

func (e *simulationExecutor) onLine() func(string) {
	if e.publisher == nil {
		return nil
	}

	return e.publisher.Publish
}

func (e *simulationExecutor) succeeded(run m.RunFile, out adapter.SimulatorOutput) bool {
	if out.ExitCode != 0 {
		return false
	}

	if !e.requireMarker {
		return true
	}

	marker := CompletionMarker(run.Scope())

	return strings.Contains(out.Stdout, marker) || strings.Contains(out.Stderr, marker)
}

// missingMarkerDiagnostics explains a zero exit that did not count as success.
func missingMarkerDiagnostics(run m.RunFile, stderr string) string {
	note := fmt.Sprintf("simulator exited 0 but never printed %q", CompletionMarker(run.Scope()))
	if strings.TrimSpace(stderr) == "" {
		return note
	}

	return strings.TrimRight(stderr, "\n") + "\n" + note
}

func (e *simulationExecutor) cleanup(run m.RunFile, runsDir m.Path) {
	base := runBase(run)

	for _, name := range []string{run.Name(), base + ".loss.dat", base + ".single_event.dat", logName(run)} {
		p := e.fs.JoinPath(string(runsDir), name)
		if err := e.fs.Remove(p); err != nil {
			slog.Warn("Failed to remove flowpath file", "path", p, "error", err)
		}
	}
}

func runBase(run m.RunFile) string {
	return strings.TrimSuffix(run.Name(), ".run")
}

func logName(run m.RunFile) string {
	return runBase(run) + ".err"
}
