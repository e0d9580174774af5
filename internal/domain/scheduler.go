package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// Task is one run file waiting to be executed.
type Task struct {
	ID        string
	Run       m.RunFile
	RunsDir   m.Path
	DependsOn []string
}

// TaskOutcome is the terminal state of a scheduled task. Err is set when the
// executor could not run the task at all.
type TaskOutcome struct {
	Task   Task
	Result m.SimulationResult
	Err    error
}

// Failed reports whether the task did not produce its artifact.
func (o TaskOutcome) Failed() bool {
	return o.Err != nil || !o.Result.Succeeded()
}

// TaskObserver is told about every task that starts and finishes.
type TaskObserver interface {
	TaskStarted(ctx context.Context, task Task)
	TaskFinished(ctx context.Context, outcome TaskOutcome)
}

// Scheduler executes tasks in dependency order.
type Scheduler interface {
	// Run validates the task graph and executes it. A task starts only after
	// all of its dependencies succeeded; dependents of a failed task are
	// skipped. Outcomes are returned in task order. The error is reserved for
	// invalid graphs.
	Run(ctx context.Context, tasks []Task) ([]TaskOutcome, error)
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*scheduler)

// WithTaskObserver registers an observer for task progress.
func WithTaskObserver(observer TaskObserver) SchedulerOption {
	return func(s *scheduler) {
		s.observer = observer
	}
}

type scheduler struct {
	executor SimulationExecutor
	parallel int
	observer TaskObserver
}

// NewScheduler constructs a Scheduler running at most parallel tasks at once.
// Values below one run tasks one at a time.
func NewScheduler(executor SimulationExecutor, parallel int, opts ...SchedulerOption) Scheduler {
	if parallel < 1 {
		parallel = 1
	}

	s := &scheduler{executor: executor, parallel: parallel}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *scheduler) Run(ctx context.Context, tasks []Task) ([]TaskOutcome, error) {
	graph, err := newTaskGraph(tasks)
	if err != nil {
		return nil, err
	}

	outcomes := make(map[string]TaskOutcome, len(tasks))
	pending := make(map[string]int, len(tasks))

	for _, task := range tasks {
		pending[task.ID] = len(task.DependsOn)
	}

	done := make(chan TaskOutcome, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)

	launch := func(task Task) {
		g.Go(func() error {
			done <- s.execute(gctx, task)
			return nil
		})
	}

	for _, task := range tasks {
		if pending[task.ID] == 0 {
			launch(task)
		}
	}

	for len(outcomes) < len(tasks) {
		outcome := <-done
		id := outcome.Task.ID
		outcomes[id] = outcome
		s.notifyFinished(ctx, outcome)

		if outcome.Failed() {
			s.skipDependents(ctx, graph, id, outcomes)
			continue
		}

		for _, dependent := range graph.dependents[id] {
			if _, finished := outcomes[dependent]; finished {
				continue
			}

			pending[dependent]--
			if pending[dependent] == 0 {
				launch(graph.tasks[dependent])
			}
		}
	}

	_ = g.Wait()

	ordered := make([]TaskOutcome, 0, len(tasks))
	for _, task := range tasks {
		ordered = append(ordered, outcomes[task.ID])
	}

	return ordered, nil
}

func (s *scheduler) execute(ctx context.Context, task Task) TaskOutcome {
	if s.observer != nil {
		s.observer.TaskStarted(ctx, task)
	}

	result, err := s.executor.Execute(ctx, task.Run, task.RunsDir)
	if err != nil {
		slog.Error("Task did not run", "task", task.ID, "error", err)

		result = m.SimulationResult{
			RunName:     task.Run.Name(),
			Scope:       task.Run.Scope(),
			Status:      m.StatusFailure,
			Diagnostics: err.Error(),
		}
	}

	return TaskOutcome{Task: task, Result: result, Err: err}
}

// skipDependents recursively records every downstream task of id as skipped.
func (s *scheduler) skipDependents(ctx context.Context, graph *taskGraph, id string, outcomes map[string]TaskOutcome) {
	for _, dependent := range graph.dependents[id] {
		if _, finished := outcomes[dependent]; finished {
			continue
		}

		task := graph.tasks[dependent]

		slog.Warn("Skipping task due to upstream failure", "task", dependent, "dependency", id)

		outcome := TaskOutcome{
			Task: task,
			Result: m.SimulationResult{
				RunName:     task.Run.Name(),
				Scope:       task.Run.Scope(),
				Status:      m.StatusSkipped,
				Diagnostics: fmt.Sprintf("dependency %s failed", id),
			},
		}

		outcomes[dependent] = outcome
		s.notifyFinished(ctx, outcome)
		s.skipDependents(ctx, graph, dependent, outcomes)
	}
}

func (s *scheduler) notifyFinished(ctx context.Context, outcome TaskOutcome) {
	if s.observer != nil {
		s.observer.TaskFinished(ctx, outcome)
	}
}

type taskGraph struct {
	tasks      map[string]Task
	dependents map[string][]string
}

// newTaskGraph indexes tasks and rejects graphs that cannot be scheduled.
func newTaskGraph(tasks []Task) (*taskGraph, error) {
	graph := &taskGraph{
		tasks:      make(map[string]Task, len(tasks)),
		dependents: make(map[string][]string, len(tasks)),
	}

	for _, task := range tasks {
		if _, dup := graph.tasks[task.ID]; dup {
			return nil, fmt.Errorf("task %s: %w", task.ID, m.ErrDuplicateID)
		}

		graph.tasks[task.ID] = task
	}

	for _, task := range tasks {
		seen := map[string]bool{}

		for _, dep := range task.DependsOn {
			upstream, ok := graph.tasks[dep]
			if !ok {
				return nil, fmt.Errorf("task %s depends on unknown task %s: %w", task.ID, dep, m.ErrTopologyMismatch)
			}

			if seen[dep] {
				return nil, fmt.Errorf("task %s lists %s twice: %w", task.ID, dep, m.ErrDuplicateID)
			}

			if task.Run.Scope() == m.ScopeWatershed && !upstream.Run.Routable() {
				return nil, fmt.Errorf("watershed %s cannot consume %s: %w", task.ID, dep, m.ErrRoutingIncapable)
			}

			seen[dep] = true
			graph.dependents[dep] = append(graph.dependents[dep], task.ID)
		}
	}

	if err := graph.detectCycle(tasks); err != nil {
		return nil, err
	}

	return graph, nil
}

const (
	unvisited = iota
	visiting
	visited
)

// detectCycle runs a colouring DFS over the dependent edges.
func (g *taskGraph) detectCycle(tasks []Task) error {
	colors := make(map[string]int, len(tasks))

	for _, task := range tasks {
		if colors[task.ID] == unvisited && g.hasCycle(task.ID, colors) {
			return fmt.Errorf("starting from task %s: %w", task.ID, m.ErrDependencyCycle)
		}
	}

	return nil
}

func (g *taskGraph) hasCycle(id string, colors map[string]int) bool {
	colors[id] = visiting

	for _, next := range g.dependents[id] {
		switch colors[next] {
		case visiting:
			return true
		case unvisited:
			if g.hasCycle(next, colors) {
				return true
			}
		}
	}

	colors[id] = visited

	return false
}
