package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weppcloud.dev/pkg/wepprunner/internal/adapter"
	adaptermocks "weppcloud.dev/pkg/wepprunner/internal/adapter/mocks"
	"weppcloud.dev/pkg/wepprunner/internal/controller"
	controllermocks "weppcloud.dev/pkg/wepprunner/internal/controller/mocks"
	"weppcloud.dev/pkg/wepprunner/internal/domain"
	domainmocks "weppcloud.dev/pkg/wepprunner/internal/domain/mocks"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
	"weppcloud.dev/pkg/wepprunner/pkg"
)

const workflowPlan = `name: demo
runs_dir: wepp/runs
sim_years: 2
hillslopes: [1, 2]
watershed: {}
`

// writePlan lays out a project with the plan at its root and returns the plan
// path and the runs dir.
func writePlan(t *testing.T, content string) (m.Path, string) {
	t.Helper()

	root := t.TempDir()
	runsDir := filepath.Join(root, "wepp", "runs")
	require.NoError(t, os.MkdirAll(runsDir, 0o755))

	planPath := filepath.Join(root, "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte(content), 0o644))

	return m.Path(planPath), runsDir
}

func newTestWorkflow(ui controller.UI, executor domain.SimulationExecutor) domain.Workflow {
	fs := adapter.NewLocalProjectFSAdapter()
	return domain.NewWorkflow(fs, adapter.NewFilePlanLoader(fs), ui, executor)
}

func TestWorkflow_Build(t *testing.T) {
	t.Run("writes every run file", func(t *testing.T) {
		planPath, runsDir := writePlan(t, workflowPlan)

		var changes []controller.RunFileChange

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		ui.EXPECT().Close(mock.Anything).Return().Once()
		ui.EXPECT().
			DisplayBuild(mock.Anything, mock.Anything, nil).
			Run(func(_ context.Context, c []controller.RunFileChange, _ error) { changes = c }).
			Return(nil).
			Once()

		err := newTestWorkflow(ui, nil).Build(context.Background(), domain.BuildArgs{Plan: planPath})
		require.NoError(t, err)

		require.Len(t, changes, 3)
		for _, change := range changes {
			assert.True(t, change.Created)
			assert.FileExists(t, string(change.Path))
		}

		assert.Equal(t, m.ScopeWatershed, changes[2].Scope)

		text, err := os.ReadFile(filepath.Join(runsDir, "pw0.run"))
		require.NoError(t, err)
		assert.Contains(t, string(text), "../output/H2.pass.dat")
	})

	t.Run("rebuild reports unchanged files", func(t *testing.T) {
		planPath, _ := writePlan(t, workflowPlan)

		var last []controller.RunFileChange

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Times(2)
		ui.EXPECT().Close(mock.Anything).Return().Times(2)
		ui.EXPECT().
			DisplayBuild(mock.Anything, mock.Anything, nil).
			Run(func(_ context.Context, c []controller.RunFileChange, _ error) { last = c }).
			Return(nil).
			Times(2)

		wf := newTestWorkflow(ui, nil)
		require.NoError(t, wf.Build(context.Background(), domain.BuildArgs{Plan: planPath}))
		require.NoError(t, wf.Build(context.Background(), domain.BuildArgs{Plan: planPath}))

		for _, change := range last {
			assert.False(t, change.Changed(), change.Path)
		}
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		planPath, runsDir := writePlan(t, workflowPlan)

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		ui.EXPECT().Close(mock.Anything).Return().Once()
		ui.EXPECT().
			DisplayBuild(mock.Anything, mock.MatchedBy(func(c []controller.RunFileChange) bool { return len(c) == 3 }), nil).
			Return(nil).
			Once()

		err := newTestWorkflow(ui, nil).Build(context.Background(), domain.BuildArgs{Plan: planPath, DryRun: true})
		require.NoError(t, err)

		assert.NoFileExists(t, filepath.Join(runsDir, "p1.run"))
		assert.NoFileExists(t, filepath.Join(runsDir, "pw0.run"))
	})

	t.Run("strict build reports missing inputs", func(t *testing.T) {
		planPath, _ := writePlan(t, workflowPlan)

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		ui.EXPECT().Close(mock.Anything).Return().Once()
		ui.EXPECT().
			DisplayBuild(mock.Anything, mock.Anything, mock.MatchedBy(func(err error) bool { return errors.Is(err, m.ErrMissingInput) })).
			Return(nil).
			Once()

		err := newTestWorkflow(ui, nil).Build(context.Background(), domain.BuildArgs{Plan: planPath, Strict: true})
		require.ErrorIs(t, err, m.ErrMissingInput)
	})

	t.Run("plan load failure", func(t *testing.T) {
		loadErr := errors.New("no such plan")

		loader := adaptermocks.NewMockPlanLoader(t)
		loader.EXPECT().Load(m.Path("missing.yaml")).Return(m.Plan{}, loadErr).Once()

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		ui.EXPECT().Close(mock.Anything).Return().Once()
		ui.EXPECT().DisplayBuild(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		wf := domain.NewWorkflow(adaptermocks.NewMockProjectFSAdapter(t), loader, ui, nil)

		err := wf.Build(context.Background(), domain.BuildArgs{Plan: "missing.yaml"})
		require.ErrorIs(t, err, loadErr)
	})

	t.Run("UI start failure", func(t *testing.T) {
		startErr := errors.New("no terminal")

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything, mock.Anything).Return(startErr).Once()

		err := newTestWorkflow(ui, nil).Build(context.Background(), domain.BuildArgs{Plan: "plan.yaml"})
		require.ErrorIs(t, err, startErr)
	})
}

func expectRunUI(t *testing.T, ui *controllermocks.MockUI, runs int) {
	t.Helper()

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()
	ui.EXPECT().Wait(mock.Anything).Return().Once()
	ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 2, runs).Return().Once()
	ui.EXPECT().DisplayStartingRun(mock.Anything, mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayCompletedRun(mock.Anything, mock.Anything).Return().Times(runs)
	ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(r []m.SimulationResult) bool { return len(r) == runs })).Return().Once()
}

func journalResults(t *testing.T, dir string) []m.SimulationResult {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, pkg.JournalPattern))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	results, err := pkg.ReadJournal[m.SimulationResult](matches[0])
	require.NoError(t, err)

	return results
}

func TestWorkflow_Run(t *testing.T) {
	t.Run("simulates the plan and journals every result", func(t *testing.T) {
		planPath, runsDir := writePlan(t, workflowPlan)
		journalDir := t.TempDir()

		ui := controllermocks.NewMockUI(t)
		expectRunUI(t, ui, 3)

		executor := domainmocks.NewMockSimulationExecutor(t)
		executor.EXPECT().Execute(mock.Anything, mock.Anything, m.Path(runsDir)).RunAndReturn(succeed).Times(3)

		err := newTestWorkflow(ui, executor).Run(context.Background(), domain.RunArgs{
			Plan:       planPath,
			Parallel:   2,
			JournalDir: journalDir,
		})
		require.NoError(t, err)

		results := journalResults(t, journalDir)
		require.Len(t, results, 3)
		assert.Equal(t, "pw0.run", results[2].RunName)
	})

	t.Run("failed hillslope fails the run", func(t *testing.T) {
		planPath, _ := writePlan(t, workflowPlan)
		journalDir := t.TempDir()

		ui := controllermocks.NewMockUI(t)
		expectRunUI(t, ui, 3)

		executor := domainmocks.NewMockSimulationExecutor(t)
		executor.EXPECT().
			Execute(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, run m.RunFile, dir m.Path) (m.SimulationResult, error) {
				if run.Name() == "p1.run" {
					return m.SimulationResult{RunName: run.Name(), Status: m.StatusFailure, ExitCode: 1}, nil
				}

				return succeed(ctx, run, dir)
			}).
			Times(2)

		err := newTestWorkflow(ui, executor).Run(context.Background(), domain.RunArgs{
			Plan:       planPath,
			Parallel:   2,
			JournalDir: journalDir,
		})
		require.ErrorIs(t, err, m.ErrSimulationFailed)
		assert.Contains(t, err.Error(), "2 of 3")

		statuses := map[string]m.Status{}
		for _, r := range journalResults(t, journalDir) {
			statuses[r.RunName] = r.Status
		}

		assert.Equal(t, map[string]m.Status{
			"p1.run":  m.StatusFailure,
			"p2.run":  m.StatusSuccess,
			"pw0.run": m.StatusSkipped,
		}, statuses)
	})

	t.Run("invalid plan never starts the UI", func(t *testing.T) {
		planPath, _ := writePlan(t, "runs_dir: runs\nhillslopes: [1, 1]\n")

		ui := controllermocks.NewMockUI(t)
		executor := domainmocks.NewMockSimulationExecutor(t)

		err := newTestWorkflow(ui, executor).Run(context.Background(), domain.RunArgs{Plan: planPath, JournalDir: t.TempDir()})
		require.ErrorIs(t, err, m.ErrDuplicateID)
	})
}
