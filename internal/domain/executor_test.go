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
	"weppcloud.dev/pkg/wepprunner/internal/domain"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

func hillslopeRun(t *testing.T, id m.WeppID) m.RunFile {
	t.Helper()

	run, err := domain.NewHillslopeRunBuilder(m.Layout{RunsDir: "runs"}).Build(id, m.ModeContinuous, nil)
	require.NoError(t, err)

	return run
}

func TestSimulationExecutor_Execute(t *testing.T) {
	t.Run("success writes the run file and the log", func(t *testing.T) {
		root := t.TempDir()
		runsDir := filepath.Join(root, "runs")
		require.NoError(t, os.MkdirAll(runsDir, 0o755))

		run := hillslopeRun(t, 1)

		simulator := adaptermocks.NewMockSimulatorAdapter(t)
		simulator.EXPECT().
			Run(mock.Anything, mock.Anything).
			Run(func(_ context.Context, req adapter.SimulatorRequest) {
				assert.Equal(t, m.Path(runsDir), req.Dir)
				assert.Equal(t, run.Text(), string(req.Stdin))
				assert.Nil(t, req.OnLine)
			}).
			Return(adapter.SimulatorOutput{Stdout: "WEPP COMPLETED HILLSLOPE SIMULATION SUCCESSFULLY\n"}, nil).
			Once()

		executor := domain.NewSimulationExecutor(adapter.NewLocalProjectFSAdapter(), simulator)

		result, err := executor.Execute(context.Background(), run, m.Path(runsDir))
		require.NoError(t, err)

		assert.True(t, result.Succeeded())
		assert.NotEmpty(t, result.ExecutionID)
		assert.Equal(t, "p1.run", result.RunName)
		assert.Equal(t, m.Path(filepath.Join(runsDir, "..", "output", "H1.pass.dat")), result.Artifact)
		assert.Equal(t, m.Path(filepath.Join(runsDir, "p1.err")), result.Log)

		written, err := os.ReadFile(filepath.Join(runsDir, "p1.run"))
		require.NoError(t, err)
		assert.Equal(t, run.Text(), string(written))

		assert.DirExists(t, filepath.Join(root, "output"))

		log, err := os.ReadFile(string(result.Log))
		require.NoError(t, err)
		assert.Contains(t, string(log), "COMPLETED")
	})

	t.Run("non-zero exit is a failed result", func(t *testing.T) {
		runsDir := t.TempDir()

		simulator := adaptermocks.NewMockSimulatorAdapter(t)
		simulator.EXPECT().
			Run(mock.Anything, mock.Anything).
			Return(adapter.SimulatorOutput{Stderr: "*** error: soil file\n", ExitCode: 3}, nil).
			Once()

		executor := domain.NewSimulationExecutor(adapter.NewLocalProjectFSAdapter(), simulator)

		result, err := executor.Execute(context.Background(), hillslopeRun(t, 2), m.Path(runsDir))
		require.NoError(t, err)

		assert.Equal(t, m.StatusFailure, result.Status)
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "*** error: soil file\n", result.Diagnostics)
		assert.Empty(t, result.Artifact)
		require.ErrorIs(t, result.Err(), m.ErrSimulationFailed)
		assert.FileExists(t, filepath.Join(runsDir, "p2.err"))
	})

	markerCases := []struct {
		name            string
		stdout          string
		stderr          string
		want            m.Status
		wantDiagnostics []string
	}{
		{name: "marker present", stdout: "...\nWEPP COMPLETED HILLSLOPE SIMULATION SUCCESSFULLY\n", want: m.StatusSuccess},
		{
			name:            "marker missing",
			stdout:          "...\n",
			want:            m.StatusFailure,
			wantDiagnostics: []string{"exited 0", "WEPP COMPLETED HILLSLOPE SIMULATION SUCCESSFULLY"},
		},
		{
			name:            "marker missing keeps stderr",
			stdout:          "...\n",
			stderr:          "warning: slope truncated\n",
			want:            m.StatusFailure,
			wantDiagnostics: []string{"warning: slope truncated\n", "never printed"},
		},
		{
			name:            "watershed marker on a hillslope",
			stdout:          "WEPP COMPLETED WATERSHED SIMULATION SUCCESSFULLY\n",
			want:            m.StatusFailure,
			wantDiagnostics: []string{"HILLSLOPE"},
		},
	}

	for _, tt := range markerCases {
		t.Run(tt.name, func(t *testing.T) {
			simulator := adaptermocks.NewMockSimulatorAdapter(t)
			simulator.EXPECT().
				Run(mock.Anything, mock.Anything).
				Return(adapter.SimulatorOutput{Stdout: tt.stdout, Stderr: tt.stderr}, nil).
				Once()

			executor := domain.NewSimulationExecutor(adapter.NewLocalProjectFSAdapter(), simulator, domain.WithCompletionMarker())

			result, err := executor.Execute(context.Background(), hillslopeRun(t, 1), m.Path(t.TempDir()))
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Status)

			for _, want := range tt.wantDiagnostics {
				assert.Contains(t, result.Diagnostics, want)
			}

			if tt.want == m.StatusSuccess {
				assert.Empty(t, result.Diagnostics)
			}
		})
	}

	t.Run("streams lines to the status publisher", func(t *testing.T) {
		publisher := adaptermocks.NewMockStatusPublisher(t)
		publisher.EXPECT().Publish("YEAR 1").Once()
		publisher.EXPECT().Publish("YEAR 2").Once()

		simulator := adaptermocks.NewMockSimulatorAdapter(t)
		simulator.EXPECT().
			Run(mock.Anything, mock.Anything).
			Run(func(_ context.Context, req adapter.SimulatorRequest) {
				require.NotNil(t, req.OnLine)
				req.OnLine("YEAR 1")
				req.OnLine("YEAR 2")
			}).
			Return(adapter.SimulatorOutput{Stdout: "YEAR 1\nYEAR 2\n"}, nil).
			Once()

		executor := domain.NewSimulationExecutor(adapter.NewLocalProjectFSAdapter(), simulator, domain.WithStatusPublisher(publisher))

		_, err := executor.Execute(context.Background(), hillslopeRun(t, 1), m.Path(t.TempDir()))
		require.NoError(t, err)
	})

	t.Run("start failures are errors", func(t *testing.T) {
		startErr := errors.New("exec: not found")

		simulator := adaptermocks.NewMockSimulatorAdapter(t)
		simulator.EXPECT().Run(mock.Anything, mock.Anything).Return(adapter.SimulatorOutput{}, startErr).Once()

		executor := domain.NewSimulationExecutor(adapter.NewLocalProjectFSAdapter(), simulator)

		_, err := executor.Execute(context.Background(), hillslopeRun(t, 1), m.Path(t.TempDir()))
		require.ErrorIs(t, err, startErr)
	})

	t.Run("run file write failure", func(t *testing.T) {
		writeErr := errors.New("read-only filesystem")

		fs := adaptermocks.NewMockProjectFSAdapter(t)
		fs.EXPECT().JoinPath("runs", "p1.run").Return(m.Path("runs/p1.run")).Once()
		fs.EXPECT().WriteFile(m.Path("runs/p1.run"), mock.Anything, mock.Anything).Return(writeErr).Once()

		executor := domain.NewSimulationExecutor(fs, adaptermocks.NewMockSimulatorAdapter(t))

		_, err := executor.Execute(context.Background(), hillslopeRun(t, 1), "runs")
		require.ErrorIs(t, err, writeErr)
	})

	t.Run("zero run file", func(t *testing.T) {
		executor := domain.NewSimulationExecutor(adaptermocks.NewMockProjectFSAdapter(t), adaptermocks.NewMockSimulatorAdapter(t))

		_, err := executor.Execute(context.Background(), m.RunFile{}, "runs")
		require.ErrorIs(t, err, m.ErrInvalidReference)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		executor := domain.NewSimulationExecutor(adaptermocks.NewMockProjectFSAdapter(t), adaptermocks.NewMockSimulatorAdapter(t))

		_, err := executor.Execute(ctx, hillslopeRun(t, 1), "runs")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSimulationExecutor_FlowpathCleanup(t *testing.T) {
	run, err := domain.NewFlowpathRunBuilder(m.Layout{RunsDir: "flowpaths"}).
		Build(m.Flowpath{WeppID: 3, Name: "fp_3_1"}, m.ModeContinuous, nil)
	require.NoError(t, err)

	simulate := func(t *testing.T, opts ...domain.ExecutorOption) (string, m.SimulationResult) {
		runsDir := t.TempDir()

		simulator := adaptermocks.NewMockSimulatorAdapter(t)
		simulator.EXPECT().
			Run(mock.Anything, mock.Anything).
			Run(func(_ context.Context, req adapter.SimulatorRequest) {
				touch(t, string(req.Dir), "fp_3_1.loss.dat", "fp_3_1.plot.dat")
			}).
			Return(adapter.SimulatorOutput{}, nil).
			Once()

		executor := domain.NewSimulationExecutor(adapter.NewLocalProjectFSAdapter(), simulator, opts...)

		result, err := executor.Execute(context.Background(), run, m.Path(runsDir))
		require.NoError(t, err)

		return runsDir, result
	}

	t.Run("keeps files by default", func(t *testing.T) {
		runsDir, result := simulate(t)

		assert.True(t, result.Succeeded())
		assert.FileExists(t, filepath.Join(runsDir, "fp_3_1.run"))
		assert.FileExists(t, filepath.Join(runsDir, "fp_3_1.err"))
	})

	t.Run("removes intermediates and keeps the plot", func(t *testing.T) {
		runsDir, result := simulate(t, domain.WithFlowpathCleanup())

		assert.True(t, result.Succeeded())
		assert.Empty(t, result.Log)
		assert.Equal(t, m.Path(filepath.Join(runsDir, "fp_3_1.plot.dat")), result.Artifact)
		assert.FileExists(t, filepath.Join(runsDir, "fp_3_1.plot.dat"))
		assert.NoFileExists(t, filepath.Join(runsDir, "fp_3_1.run"))
		assert.NoFileExists(t, filepath.Join(runsDir, "fp_3_1.loss.dat"))
		assert.NoFileExists(t, filepath.Join(runsDir, "fp_3_1.err"))
	})
}

func TestCompletionMarker(t *testing.T) {
	assert.Contains(t, domain.CompletionMarker(m.ScopeHillslope), "HILLSLOPE")
	assert.Contains(t, domain.CompletionMarker(m.ScopeFlowpath), "HILLSLOPE")
	assert.Contains(t, domain.CompletionMarker(m.ScopeWatershed), "WATERSHED")
}
