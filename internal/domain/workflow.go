package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"weppcloud.dev/pkg/wepprunner/internal/adapter"
	"weppcloud.dev/pkg/wepprunner/internal/controller"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
	"weppcloud.dev/pkg/wepprunner/pkg"
)

// BuildArgs contains the arguments for writing a plan's run files.
type BuildArgs struct {
	Plan   m.Path
	Strict bool
	// DryRun reports the changes without writing anything.
	DryRun bool
}

// RunArgs contains the arguments for simulating a plan.
type RunArgs struct {
	Plan       m.Path
	Strict     bool
	Parallel   int
	JournalDir string
}

// Workflow turns a plan into run files and simulations.
type Workflow interface {
	Build(ctx context.Context, args BuildArgs) error
	Run(ctx context.Context, args RunArgs) error
}

type workflow struct {
	adapter.ProjectFSAdapter
	adapter.PlanLoader
	controller.UI
	SimulationExecutor
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.ProjectFSAdapter,
	planLoader adapter.PlanLoader,
	ui controller.UI,
	executor SimulationExecutor,
) Workflow {
	return &workflow{
		ProjectFSAdapter:   fsAdapter,
		PlanLoader:         planLoader,
		UI:                 ui,
		SimulationExecutor: executor,
	}
}

func (w *workflow) Build(ctx context.Context, args BuildArgs) error {
	if err := w.Start(ctx, controller.WithBuildMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	tasks, err := w.planTasks(args.Plan, args.Strict)
	if err != nil {
		_ = w.DisplayBuild(ctx, nil, err)
		return err
	}

	changes, err := w.writeRunFiles(ctx, tasks, args.DryRun)
	if displayErr := w.DisplayBuild(ctx, changes, err); displayErr != nil && err == nil {
		return fmt.Errorf("display: %w", displayErr)
	}

	return err
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	tasks, err := w.planTasks(args.Plan, args.Strict)
	if err != nil {
		return err
	}

	journal, err := pkg.CreateJournal[m.SimulationResult](args.JournalDir)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	defer func() {
		if err := journal.Close(); err != nil {
			slog.Error("Failed to close journal", "path", journal.Path(), "error", err)
		}
	}()

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayConcurrencyInfo(ctx, args.Parallel, len(tasks))

	observer := &runObserver{ui: w.UI, journal: journal}
	scheduler := NewScheduler(w.SimulationExecutor, args.Parallel, WithTaskObserver(observer))

	outcomes, err := scheduler.Run(ctx, tasks)
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	results := make([]m.SimulationResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		results = append(results, outcome.Result)
	}

	w.DisplaySummary(ctx, results)
	w.Wait(ctx)

	slog.Info("Run finished", "plan", args.Plan, "runs", len(results), "journal", journal.Path())

	return outcomeError(outcomes)
}

// planTasks loads the plan and builds every run file it describes.
func (w *workflow) planTasks(planPath m.Path, strict bool) ([]Task, error) {
	plan, err := w.Load(planPath)
	if err != nil {
		slog.Error("Failed to load plan", "plan", planPath, "error", err)
		return nil, fmt.Errorf("load plan: %w", err)
	}

	var opts []BuilderOption
	if strict || plan.Strict {
		opts = append(opts, WithStrictInputs(w.ProjectFSAdapter))
	}

	tasks, err := PlanTasks(plan, filepath.Dir(string(planPath)), opts...)
	if err != nil {
		slog.Error("Failed to build run files", "plan", planPath, "error", err)
		return nil, fmt.Errorf("build runs: %w", err)
	}

	return tasks, nil
}

func (w *workflow) writeRunFiles(ctx context.Context, tasks []Task, dryRun bool) ([]controller.RunFileChange, error) {
	changes := make([]controller.RunFileChange, 0, len(tasks))

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return changes, err
		}

		path := w.JoinPath(string(task.RunsDir), task.Run.Name())

		exists, err := w.Exists(path)
		if err != nil {
			return changes, fmt.Errorf("check %s: %w", path, err)
		}

		diff, err := w.Diff(path, []byte(task.Run.Text()))
		if err != nil {
			return changes, err
		}

		change := controller.RunFileChange{Path: path, Scope: task.Run.Scope(), Created: !exists}
		if exists {
			change.Diff = diff
		}

		changes = append(changes, change)

		if dryRun || !change.Changed() {
			continue
		}

		if err := w.WriteFile(path, []byte(task.Run.Text()), 0o644); err != nil {
			slog.Error("Failed to write run file", "path", path, "error", err)
			return changes, fmt.Errorf("write %s: %w", path, err)
		}
	}

	return changes, nil
}

// outcomeError summarizes the runs that did not succeed.
func outcomeError(outcomes []TaskOutcome) error {
	var errs []error

	for _, outcome := range outcomes {
		if !outcome.Failed() {
			continue
		}

		if outcome.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", outcome.Task.ID, outcome.Err))
			continue
		}

		errs = append(errs, outcome.Result.Err())
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%d of %d run(s) did not succeed: %w", len(errs), len(outcomes), errors.Join(errs...))
}

// runObserver journals and displays task progress.
type runObserver struct {
	ui      controller.UI
	journal pkg.Journal[m.SimulationResult]
}

func (o *runObserver) TaskStarted(ctx context.Context, task Task) {
	o.ui.DisplayStartingRun(ctx, task.Run)
}

func (o *runObserver) TaskFinished(ctx context.Context, outcome TaskOutcome) {
	if err := o.journal.Append(outcome.Result); err != nil {
		slog.Error("Failed to journal result", "task", outcome.Task.ID, "error", err)
	}

	o.ui.DisplayCompletedRun(ctx, outcome.Result)
}
