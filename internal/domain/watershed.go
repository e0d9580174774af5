package domain

import (
	"fmt"
	"log/slog"
	"strings"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// WatershedRunName is the prefix of every watershed-level file.
const WatershedRunName = "pw0"

// WatershedRunBuilder assembles the single run file of a watershed from the
// pass files of its hillslopes.
type WatershedRunBuilder interface {
	// Build uses the project's own hillslope outputs.
	Build(topology m.Topology, mode m.ClimateMode, specs m.PathSpecs, recorded m.ModeLedger) (m.RunFile, error)
	// BuildWithContrasts takes one pass reference per hillslope, aligned with
	// the topology order. External references may point into sibling or
	// parent Omni projects.
	BuildWithContrasts(topology m.Topology, mode m.ClimateMode, refs []m.PassRef, recorded m.ModeLedger) (m.RunFile, error)
	// BuildBatch builds the watershed run for one storm of a single-storm batch.
	BuildBatch(topology m.Topology, specs m.PathSpecs, storm m.Storm, recorded m.ModeLedger) (m.RunFile, error)
}

type watershedRunBuilder struct {
	builderConfig
	layout   m.Layout
	resolver PathResolver
}

// NewWatershedRunBuilder constructs a WatershedRunBuilder for layout.
func NewWatershedRunBuilder(layout m.Layout, opts ...BuilderOption) WatershedRunBuilder {
	return &watershedRunBuilder{
		builderConfig: newBuilderConfig(opts),
		layout:        layout,
		resolver:      NewPathResolver(layout.RunsDir),
	}
}

func (b *watershedRunBuilder) Build(topology m.Topology, mode m.ClimateMode, specs m.PathSpecs, recorded m.ModeLedger) (m.RunFile, error) {
	refs, err := b.prepare(topology, mode, recorded, false)
	if err != nil {
		return m.RunFile{}, err
	}

	return b.build(topology, mode, refs, specs, nil)
}

func (b *watershedRunBuilder) BuildWithContrasts(topology m.Topology, mode m.ClimateMode, refs []m.PassRef, recorded m.ModeLedger) (m.RunFile, error) {
	if _, err := b.prepare(topology, mode, recorded, false); err != nil {
		return m.RunFile{}, err
	}

	if err := alignContrasts(topology, refs); err != nil {
		return m.RunFile{}, err
	}

	return b.build(topology, mode, refs, nil, nil)
}

func (b *watershedRunBuilder) BuildBatch(topology m.Topology, specs m.PathSpecs, storm m.Storm, recorded m.ModeLedger) (m.RunFile, error) {
	refs, err := b.prepare(topology, m.ModeSingleStormBatch, recorded, true)
	if err != nil {
		return m.RunFile{}, err
	}

	if err := validateStorms([]m.Storm{storm}); err != nil {
		return m.RunFile{}, fmt.Errorf("watershed: %w", err)
	}

	return b.build(topology, m.ModeSingleStormBatch, refs, specs, &storm)
}

// prepare runs the checks shared by every construction mode and returns the
// local pass references in topology order. Duplicate ids are reported before
// anything else.
func (b *watershedRunBuilder) prepare(topology m.Topology, mode m.ClimateMode, recorded m.ModeLedger, batch bool) ([]m.PassRef, error) {
	if err := ValidateTopology(topology); err != nil {
		return nil, err
	}

	directives, err := b.selector.DirectivesFor(mode)
	if err != nil {
		return nil, err
	}

	if directives.RequiresStorm != batch {
		return nil, fmt.Errorf("watershed: %s runs are built per storm: %w", mode, m.ErrUnsupportedMode)
	}

	if err := checkRecordedModes(topology, mode, recorded); err != nil {
		return nil, err
	}

	refs := make([]m.PassRef, 0, len(topology.Hillslopes))
	for _, id := range topology.Hillslopes {
		refs = append(refs, m.Local(id))
	}

	return refs, nil
}

func (b *watershedRunBuilder) build(topology m.Topology, mode m.ClimateMode, refs []m.PassRef, specs m.PathSpecs, storm *m.Storm) (m.RunFile, error) {
	directives, err := b.selector.DirectivesFor(mode)
	if err != nil {
		return m.RunFile{}, err
	}

	out := directives.OutputDir(b.layout.Output(), storm)

	passFiles := make([]string, 0, len(refs))
	for _, ref := range refs {
		passFiles = append(passFiles, passFilePath(out, ref))
	}

	inputs, err := b.resolveWatershedInputs(directives, specs, storm)
	if err != nil {
		return m.RunFile{}, fmt.Errorf("watershed: %w", err)
	}

	if err := b.checkStrict(refs, specs, passFiles, inputs); err != nil {
		return m.RunFile{}, fmt.Errorf("watershed: %w", err)
	}

	lossFile := m.JoinRel(out, "loss_"+WatershedRunName+".txt")

	text, err := renderRunTemplate(directives.WatershedTemplate, runTemplateData{
		SimulationType:   directives.SimulationType,
		SimYears:         b.layout.SimYears,
		CombinedPassFile: m.JoinRel(out, "pass_"+WatershedRunName+".txt"),
		LossFile:         lossFile,
		WaterFile:        m.JoinRel(out, "chnwb_"+WatershedRunName+".txt"),
		EventFile:        m.JoinRel(out, "ebe_"+WatershedRunName+".txt"),
		Structure:        WatershedRunName + ".str",
		Channel:          WatershedRunName + ".chn",
		Impoundment:      WatershedRunName + ".imp",
		Management:       inputs[m.CategoryManagement],
		Slope:            inputs[m.CategorySlope],
		Climate:          inputs[m.CategoryClimate],
		Soil:             inputs[m.CategorySoil],
		HillslopeCount:   len(passFiles),
		HillslopesBlock:  hillslopesBlock(passFiles),
	})
	if err != nil {
		return m.RunFile{}, err
	}

	run := m.NewRunFile(m.RunFileSpec{
		Name:      directives.RunFileName(WatershedRunName, storm),
		Scope:     m.ScopeWatershed,
		Mode:      directives.Mode,
		Units:     topology.Hillslopes,
		Inputs:    inputs,
		PassFiles: passFiles,
		Storm:     storm,
		Artifact:  lossFile,
		Text:      text,
	})

	slog.Debug("Built watershed run", "hillslopes", len(passFiles), "mode", directives.Mode, "run", run.Name())

	return run, nil
}

func (b *watershedRunBuilder) resolveWatershedInputs(directives Directives, specs m.PathSpecs, storm *m.Storm) (map[m.Category]string, error) {
	inputs := make(map[m.Category]string, len(m.Categories))

	for _, category := range m.Categories {
		name := WatershedRunName + "." + category.Ext()
		if category == m.CategoryClimate {
			name = directives.ClimateFileName(WatershedRunName, storm)
		}

		resolved, err := b.resolver.ResolveName(name, specs.For(category))
		if err != nil {
			return nil, err
		}

		inputs[category] = resolved
	}

	return inputs, nil
}

func (b *watershedRunBuilder) checkStrict(refs []m.PassRef, specs m.PathSpecs, passFiles []string, inputs map[m.Category]string) error {
	if !b.strict() {
		return nil
	}

	if err := b.requireDirs(b.resolver, specs); err != nil {
		return err
	}

	for _, ref := range refs {
		if ref.IsExternal() {
			if err := b.requireDir(b.resolver, ref.Dir()); err != nil {
				return fmt.Errorf("contrast for hillslope %d: %w", int(ref.ID), err)
			}
		}
	}

	structure := []string{WatershedRunName + ".str", WatershedRunName + ".chn", WatershedRunName + ".imp"}
	if err := b.requireFiles(b.resolver, structure...); err != nil {
		return err
	}

	if err := b.requireFiles(b.resolver, inputValues(inputs)...); err != nil {
		return err
	}

	return b.requireFiles(b.resolver, passFiles...)
}

// ValidateTopology checks that every hillslope appears once and that routes
// only reference known hillslopes.
func ValidateTopology(topology m.Topology) error {
	registry := NewIdentifierRegistry()

	for _, id := range topology.Hillslopes {
		if err := registry.Register(id); err != nil {
			return fmt.Errorf("topology: %w", err)
		}
	}

	if registry.Len() == 0 {
		return fmt.Errorf("topology has no hillslopes: %w", m.ErrTopologyMismatch)
	}

	routed := map[m.WeppID]bool{}

	for _, route := range topology.Routes {
		if !registry.Contains(route.Hillslope) {
			return fmt.Errorf("route from unknown hillslope %d: %w", int(route.Hillslope), m.ErrTopologyMismatch)
		}

		if routed[route.Hillslope] {
			return fmt.Errorf("hillslope %d routed twice: %w", int(route.Hillslope), m.ErrTopologyMismatch)
		}

		if route.Channel < 0 {
			return fmt.Errorf("hillslope %d routes to channel %d: %w", int(route.Hillslope), route.Channel, m.ErrInvalidReference)
		}

		routed[route.Hillslope] = true
	}

	return nil
}

// TopologyFromRuns derives the watershed topology and the mode ledger from
// built hillslope runs, in the order given. Flowpath runs are rejected.
func TopologyFromRuns(runs []m.RunFile) (m.Topology, m.ModeLedger, error) {
	topology := m.Topology{}
	ledger := m.ModeLedger{}

	for _, run := range runs {
		if !run.Routable() || run.Scope() != m.ScopeHillslope {
			return m.Topology{}, nil, fmt.Errorf("%s (%s): %w", run.Name(), run.Scope(), m.ErrRoutingIncapable)
		}

		for _, id := range run.Units() {
			if prev, ok := ledger[id]; ok && prev != run.Mode() {
				return m.Topology{}, nil, fmt.Errorf("hillslope %d built as %s and %s: %w", int(id), prev, run.Mode(), m.ErrClimateModeMismatch)
			}

			if _, ok := ledger[id]; !ok {
				topology.Hillslopes = append(topology.Hillslopes, id)
			}

			ledger[id] = run.Mode()
		}
	}

	return topology, ledger, nil
}

func alignContrasts(topology m.Topology, refs []m.PassRef) error {
	if len(refs) != len(topology.Hillslopes) {
		return fmt.Errorf("%d pass references for %d hillslopes: %w", len(refs), len(topology.Hillslopes), m.ErrTopologyMismatch)
	}

	for i, ref := range refs {
		if ref.ID != topology.Hillslopes[i] {
			return fmt.Errorf("pass reference %d is hillslope %d, topology has %d: %w",
				i, int(ref.ID), int(topology.Hillslopes[i]), m.ErrTopologyMismatch)
		}

		if ref.IsExternal() {
			if err := (m.RelativePathSpec{Dir: ref.Dir()}).Validate(); err != nil {
				return fmt.Errorf("pass reference for hillslope %d: %w", int(ref.ID), err)
			}
		}
	}

	return nil
}

func checkRecordedModes(topology m.Topology, mode m.ClimateMode, recorded m.ModeLedger) error {
	if recorded == nil {
		return nil
	}

	for _, id := range topology.Hillslopes {
		got, ok := recorded[id]
		if ok && got != mode {
			return fmt.Errorf("hillslope %d was run as %s, watershed asserts %s: %w", int(id), got, mode, m.ErrClimateModeMismatch)
		}
	}

	return nil
}

func passFilePath(outputDir string, ref m.PassRef) string {
	name := fmt.Sprintf("H%d.pass.dat", int(ref.ID))
	if ref.IsExternal() {
		return m.JoinRel(ref.Dir(), name)
	}

	return m.JoinRel(outputDir, name)
}

// hillslopesBlock renders the per-hillslope answers of a watershed run.
func hillslopesBlock(passFiles []string) string {
	lines := make([]string, 0, 3*len(passFiles))
	for _, p := range passFiles {
		lines = append(lines, "M", "Y", p)
	}

	return strings.Join(lines, "\n")
}
