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

func TestWatershedRunBuilder_Build(t *testing.T) {
	layout := m.Layout{RunsDir: "runs", SimYears: 10}
	topology := m.Topology{Hillslopes: []m.WeppID{1, 2, 3}}

	run, err := domain.NewWatershedRunBuilder(layout).Build(topology, m.ModeContinuous, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "pw0.run", run.Name())
	assert.Equal(t, m.ScopeWatershed, run.Scope())
	assert.Equal(t, []m.WeppID{1, 2, 3}, run.Units())
	assert.Equal(t, []string{
		"../output/H1.pass.dat",
		"../output/H2.pass.dat",
		"../output/H3.pass.dat",
	}, run.PassFiles())
	assert.Equal(t, "../output/loss_pw0.txt", run.Artifact())

	climate, _ := run.Input(m.CategoryClimate)
	assert.Equal(t, "pw0.cli", climate)

	lines := runLines(run)
	assert.Equal(t, "1", lines[2])
	assert.Equal(t, "2", lines[3], "watershed version")
	assert.Equal(t, "../output/pass_pw0.txt", lines[4])
	assert.Equal(t, "3", lines[5])
	assert.Equal(t, []string{
		"M", "Y", "../output/H1.pass.dat",
		"M", "Y", "../output/H2.pass.dat",
		"M", "Y", "../output/H3.pass.dat",
	}, lines[6:15])
	assert.Contains(t, lines, "pw0.str")
	assert.Contains(t, lines, "pw0.chn")
	assert.Equal(t, "10", lines[len(lines)-2])
}

func TestWatershedRunBuilder_BuildWithContrasts(t *testing.T) {
	layout := m.Layout{RunsDir: "runs"}
	topology := m.Topology{Hillslopes: []m.WeppID{1, 2, 3}}
	builder := domain.NewWatershedRunBuilder(layout)

	t.Run("mixes local and external pass files", func(t *testing.T) {
		refs := []m.PassRef{m.Local(1), m.External(2, "../../../omni/contrasts/c1/wepp/output"), m.Local(3)}

		run, err := builder.BuildWithContrasts(topology, m.ModeContinuous, refs, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"../output/H1.pass.dat",
			"../../../omni/contrasts/c1/wepp/output/H2.pass.dat",
			"../output/H3.pass.dat",
		}, run.PassFiles())
		assert.Contains(t, runLines(run), "../../../omni/contrasts/c1/wepp/output/H2.pass.dat")
	})

	errorCases := []struct {
		name    string
		refs    []m.PassRef
		wantErr error
	}{
		{"fewer refs than hillslopes", []m.PassRef{m.Local(1), m.Local(2)}, m.ErrTopologyMismatch},
		{"misaligned refs", []m.PassRef{m.Local(1), m.Local(3), m.Local(2)}, m.ErrTopologyMismatch},
		{"bad external dir", []m.PassRef{m.Local(1), m.External(2, "a\nb"), m.Local(3)}, m.ErrInvalidReference},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.BuildWithContrasts(topology, m.ModeContinuous, tt.refs, nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("too many refs", func(t *testing.T) {
		two := m.Topology{Hillslopes: []m.WeppID{1, 2}}

		_, err := builder.BuildWithContrasts(two, m.ModeContinuous, []m.PassRef{m.Local(1), m.Local(2), m.Local(3)}, nil)
		require.ErrorIs(t, err, m.ErrTopologyMismatch)
	})
}

func TestWatershedRunBuilder_Errors(t *testing.T) {
	builder := domain.NewWatershedRunBuilder(m.Layout{RunsDir: "runs"})

	tests := []struct {
		name     string
		topology m.Topology
		mode     m.ClimateMode
		recorded m.ModeLedger
		wantErr  error
	}{
		{
			name:     "duplicates reported before an unsupported mode",
			topology: m.Topology{Hillslopes: []m.WeppID{1, 1}},
			mode:     m.ClimateMode("monsoon"),
			wantErr:  m.ErrDuplicateID,
		},
		{
			name:     "empty topology",
			topology: m.Topology{},
			mode:     m.ModeContinuous,
			wantErr:  m.ErrTopologyMismatch,
		},
		{
			name:     "batch mode needs a storm",
			topology: m.Topology{Hillslopes: []m.WeppID{1}},
			mode:     m.ModeSingleStormBatch,
			wantErr:  m.ErrUnsupportedMode,
		},
		{
			name:     "hillslopes ran in another mode",
			topology: m.Topology{Hillslopes: []m.WeppID{1, 2}},
			mode:     m.ModeContinuous,
			recorded: m.ModeLedger{1: m.ModeContinuous, 2: m.ModeSingleStorm},
			wantErr:  m.ErrClimateModeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.Build(tt.topology, tt.mode, nil, tt.recorded)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("matching ledger", func(t *testing.T) {
		_, err := builder.Build(m.Topology{Hillslopes: []m.WeppID{1, 2}}, m.ModeSingleStorm, nil,
			m.ModeLedger{1: m.ModeSingleStorm, 2: m.ModeSingleStorm})
		require.NoError(t, err)
	})
}

func TestWatershedRunBuilder_BuildBatch(t *testing.T) {
	builder := domain.NewWatershedRunBuilder(m.Layout{RunsDir: "runs"})
	topology := m.Topology{Hillslopes: []m.WeppID{1, 2}}

	run, err := builder.BuildBatch(topology, nil, m.Storm{ID: 3}, nil)
	require.NoError(t, err)

	assert.Equal(t, "pw0.3.run", run.Name())
	assert.Equal(t, []string{"../output/3/H1.pass.dat", "../output/3/H2.pass.dat"}, run.PassFiles())

	climate, _ := run.Input(m.CategoryClimate)
	assert.Equal(t, "pw0.3.cli", climate)

	storm, ok := run.Storm()
	require.True(t, ok)
	assert.Equal(t, 3, storm.ID)

	_, err = builder.BuildBatch(topology, nil, m.Storm{ID: -1}, nil)
	require.ErrorIs(t, err, m.ErrInvalidReference)
}

func TestWatershedRunBuilder_Strict(t *testing.T) {
	root := t.TempDir()
	runsDir := filepath.Join(root, "runs")
	touch(t, runsDir, "pw0.str", "pw0.chn", "pw0.imp", "pw0.sol", "pw0.cli", "pw0.slp", "pw0.man")
	touch(t, root, "output/H1.pass.dat")

	builder := domain.NewWatershedRunBuilder(m.Layout{RunsDir: m.Path(runsDir)},
		domain.WithStrictInputs(adapter.NewLocalProjectFSAdapter()))

	_, err := builder.Build(m.Topology{Hillslopes: []m.WeppID{1, 2}}, m.ModeContinuous, nil, nil)
	require.ErrorIs(t, err, m.ErrMissingInput)
	assert.Contains(t, err.Error(), "H2.pass.dat")

	_, err = builder.Build(m.Topology{Hillslopes: []m.WeppID{1}}, m.ModeContinuous, nil, nil)
	require.NoError(t, err)

	refs := []m.PassRef{m.External(1, "../missing")}
	_, err = builder.BuildWithContrasts(m.Topology{Hillslopes: []m.WeppID{1}}, m.ModeContinuous, refs, nil)
	require.ErrorIs(t, err, m.ErrMissingInput)
}

func TestValidateTopology(t *testing.T) {
	tests := []struct {
		name     string
		topology m.Topology
		wantErr  error
	}{
		{"routed", m.Topology{Hillslopes: []m.WeppID{1, 2}, Routes: []m.Route{{Hillslope: 1, Channel: 4}}}, nil},
		{"unknown route source", m.Topology{Hillslopes: []m.WeppID{1}, Routes: []m.Route{{Hillslope: 9}}}, m.ErrTopologyMismatch},
		{"routed twice", m.Topology{Hillslopes: []m.WeppID{1}, Routes: []m.Route{{Hillslope: 1}, {Hillslope: 1, Channel: 2}}}, m.ErrTopologyMismatch},
		{"negative channel", m.Topology{Hillslopes: []m.WeppID{1}, Routes: []m.Route{{Hillslope: 1, Channel: -4}}}, m.ErrInvalidReference},
		{"negative hillslope", m.Topology{Hillslopes: []m.WeppID{-1}}, m.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateTopology(tt.topology)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTopologyFromRuns(t *testing.T) {
	hillslopes := domain.NewHillslopeRunBuilder(m.Layout{RunsDir: "runs"})

	var runs []m.RunFile
	for _, id := range []m.WeppID{4, 2, 9} {
		run, err := hillslopes.Build(id, m.ModeSingleStorm, nil)
		require.NoError(t, err)

		runs = append(runs, run)
	}

	topology, ledger, err := domain.TopologyFromRuns(runs)
	require.NoError(t, err)
	assert.Equal(t, []m.WeppID{4, 2, 9}, topology.Hillslopes)
	assert.Equal(t, m.ModeLedger{4: m.ModeSingleStorm, 2: m.ModeSingleStorm, 9: m.ModeSingleStorm}, ledger)

	t.Run("rejects flowpaths", func(t *testing.T) {
		fp, err := domain.NewFlowpathRunBuilder(m.Layout{RunsDir: "flowpaths"}).Build(m.Flowpath{WeppID: 4}, m.ModeContinuous, nil)
		require.NoError(t, err)

		_, _, err = domain.TopologyFromRuns(append(runs, fp))
		require.ErrorIs(t, err, m.ErrRoutingIncapable)
	})

	t.Run("rejects mixed modes for one hillslope", func(t *testing.T) {
		continuous, err := hillslopes.Build(4, m.ModeContinuous, nil)
		require.NoError(t, err)

		_, _, err = domain.TopologyFromRuns(append(runs, continuous))
		require.ErrorIs(t, err, m.ErrClimateModeMismatch)
	})

	t.Run("batch storms collapse to one hillslope", func(t *testing.T) {
		batch, err := hillslopes.BuildBatch(5, nil, []m.Storm{{ID: 1}, {ID: 2}})
		require.NoError(t, err)

		topology, _, err := domain.TopologyFromRuns(batch)
		require.NoError(t, err)
		assert.Equal(t, []m.WeppID{5}, topology.Hillslopes)
	})
}
