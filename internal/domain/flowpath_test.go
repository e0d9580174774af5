package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weppcloud.dev/pkg/wepprunner/internal/adapter"
	"weppcloud.dev/pkg/wepprunner/internal/domain"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

func TestFlowpathName(t *testing.T) {
	assert.Equal(t, "fp_7_3", domain.FlowpathName(m.Flowpath{WeppID: 7, Name: "fp_7_3"}))
	assert.Equal(t, "p7", domain.FlowpathName(m.Flowpath{WeppID: 7, Name: "  "}))
}

func TestFlowpathRunBuilder_Build(t *testing.T) {
	layout := m.Layout{RunsDir: "flowpaths", SimYears: 5}

	t.Run("borrows parent inputs with its own slope", func(t *testing.T) {
		fp := m.Flowpath{WeppID: 7, Name: "fp_7_3"}

		run, err := domain.NewFlowpathRunBuilder(layout).Build(fp, m.ModeContinuous, m.OmniSpecs("../runs/"))
		require.NoError(t, err)

		assert.Equal(t, "fp_7_3.run", run.Name())
		assert.Equal(t, m.ScopeFlowpath, run.Scope())
		assert.False(t, run.Routable())
		assert.Equal(t, "fp_7_3.plot.dat", run.Artifact())

		slope, _ := run.Input(m.CategorySlope)
		assert.Equal(t, "fp_7_3.slp", slope, "the slope override never applies to the flowpath's own slope")
		climate, _ := run.Input(m.CategoryClimate)
		assert.Equal(t, "../runs/p7.cli", climate)
		soil, _ := run.Input(m.CategorySoil)
		assert.Equal(t, "p7.sol", soil)

		lines := runLines(run)
		assert.Equal(t, "1", lines[2])
		assert.Equal(t, "n", lines[4], "flowpaths never write a pass file")
		assert.Contains(t, lines, "fp_7_3.plot.dat")
		assert.Contains(t, lines, "fp_7_3.loss.dat")
		assert.Equal(t, "5", lines[len(lines)-2])
	})

	t.Run("separate runs dir rebases parent inputs", func(t *testing.T) {
		fpLayout := m.Layout{RunsDir: "wepp/flowpaths", ParentRunsDir: "../runs", SimYears: 5}
		specs := m.PathSpecs{
			m.CategoryClimate: {Dir: "../../parent/wepp/runs/"},
			m.CategorySoil:    {Dir: "/geodata/soils"},
			m.CategorySlope:   {Dir: "../../parent/wepp/runs/"},
		}

		run, err := domain.NewFlowpathRunBuilder(fpLayout).Build(m.Flowpath{WeppID: 1, Name: "fp_1_1"}, m.ModeContinuous, specs)
		require.NoError(t, err)

		assert.Equal(t, map[m.Category]string{
			m.CategorySoil:       "/geodata/soils/p1.sol",
			m.CategoryClimate:    "../runs/../../parent/wepp/runs/p1.cli",
			m.CategorySlope:      "fp_1_1.slp",
			m.CategoryManagement: "../runs/p1.man",
		}, run.Inputs())

		lines := runLines(run)
		assert.Contains(t, lines, "../runs/p1.man")
		assert.Contains(t, lines, "fp_1_1.slp")
	})

	t.Run("single storm", func(t *testing.T) {
		run, err := domain.NewFlowpathRunBuilder(layout).Build(m.Flowpath{WeppID: 2}, m.ModeSingleStorm, nil)
		require.NoError(t, err)

		assert.Equal(t, "p2.run", run.Name())
		assert.Equal(t, "2", runLines(run)[2])
	})

	errorCases := []struct {
		name    string
		fp      m.Flowpath
		mode    m.ClimateMode
		wantErr error
	}{
		{"batch mode", m.Flowpath{WeppID: 1}, m.ModeSingleStormBatch, m.ErrUnsupportedMode},
		{"name with separator", m.Flowpath{WeppID: 1, Name: "a/b"}, m.ModeContinuous, m.ErrInvalidReference},
		{"negative id", m.Flowpath{WeppID: -1, Name: "fp"}, m.ModeContinuous, m.ErrInvalidReference},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewFlowpathRunBuilder(layout).Build(tt.fp, tt.mode, nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFlowpathRunBuilder_Strict(t *testing.T) {
	runsDir := t.TempDir()
	touch(t, runsDir, "p4.sol", "p4.cli", "p4.man")

	builder := domain.NewFlowpathRunBuilder(m.Layout{RunsDir: m.Path(runsDir)},
		domain.WithStrictInputs(adapter.NewLocalProjectFSAdapter()))

	_, err := builder.Build(m.Flowpath{WeppID: 4, Name: "fp_4_1"}, m.ModeContinuous, nil)
	require.ErrorIs(t, err, m.ErrMissingInput)
	assert.Contains(t, err.Error(), "fp_4_1.slp")

	touch(t, runsDir, "fp_4_1.slp")

	_, err = builder.Build(m.Flowpath{WeppID: 4, Name: "fp_4_1"}, m.ModeContinuous, nil)
	require.NoError(t, err)
}

func TestPlanTasks_FlowpathsInTheirOwnRunsDir(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "wepp", "runs"), "p1.sol", "p1.cli", "p1.slp", "p1.man")
	touch(t, filepath.Join(root, "wepp", "flowpaths"), "fp_1_1.slp")

	fs := adapter.NewLocalProjectFSAdapter()
	plan := m.Plan{
		RunsDir:         "wepp/runs",
		FlowpathRunsDir: "wepp/flowpaths",
		Hillslopes:      []m.WeppID{1},
		Flowpaths:       []m.Flowpath{{WeppID: 1, Name: "fp_1_1"}},
	}

	tasks, err := domain.PlanTasks(plan, root, domain.WithStrictInputs(fs))
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	fpTask := tasks[1]
	assert.Equal(t, m.Path(filepath.Join(root, "wepp", "flowpaths")), fpTask.RunsDir)

	for category, embedded := range fpTask.Run.Inputs() {
		ok, err := fs.Exists(m.Path(filepath.Join(string(fpTask.RunsDir), filepath.FromSlash(embedded))))
		require.NoError(t, err)
		assert.True(t, ok, "%s input %s must resolve from the flowpath runs dir", category, embedded)
	}

	soil, _ := fpTask.Run.Input(m.CategorySoil)
	assert.Equal(t, "../runs/p1.sol", soil)
	slope, _ := fpTask.Run.Input(m.CategorySlope)
	assert.Equal(t, "fp_1_1.slp", slope)
}
