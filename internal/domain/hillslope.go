package domain

import (
	"fmt"
	"log/slog"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// HillslopeRunBuilder assembles one run file per hillslope unit.
type HillslopeRunBuilder interface {
	Build(id m.WeppID, mode m.ClimateMode, specs m.PathSpecs) (m.RunFile, error)
	// BuildBatch produces one single-storm run file per storm. Only the climate
	// reference and the output locations differ between them.
	BuildBatch(id m.WeppID, specs m.PathSpecs, storms []m.Storm) ([]m.RunFile, error)
}

type hillslopeRunBuilder struct {
	builderConfig
	layout   m.Layout
	resolver PathResolver
}

// NewHillslopeRunBuilder constructs a HillslopeRunBuilder for layout.
func NewHillslopeRunBuilder(layout m.Layout, opts ...BuilderOption) HillslopeRunBuilder {
	return &hillslopeRunBuilder{
		builderConfig: newBuilderConfig(opts),
		layout:        layout,
		resolver:      NewPathResolver(layout.RunsDir),
	}
}

func (b *hillslopeRunBuilder) Build(id m.WeppID, mode m.ClimateMode, specs m.PathSpecs) (m.RunFile, error) {
	directives, err := b.selector.DirectivesFor(mode)
	if err != nil {
		return m.RunFile{}, err
	}

	if directives.RequiresStorm {
		return m.RunFile{}, fmt.Errorf("hillslope %d: %s runs are built per storm: %w", int(id), mode, m.ErrUnsupportedMode)
	}

	return b.build(id, directives, specs, nil)
}

func (b *hillslopeRunBuilder) BuildBatch(id m.WeppID, specs m.PathSpecs, storms []m.Storm) ([]m.RunFile, error) {
	directives, err := b.selector.DirectivesFor(m.ModeSingleStormBatch)
	if err != nil {
		return nil, err
	}

	if err := validateStorms(storms); err != nil {
		return nil, fmt.Errorf("hillslope %d: %w", int(id), err)
	}

	runs := make([]m.RunFile, 0, len(storms))

	for i := range storms {
		run, err := b.build(id, directives, specs, &storms[i])
		if err != nil {
			return nil, err
		}

		runs = append(runs, run)
	}

	return runs, nil
}

func (b *hillslopeRunBuilder) build(id m.WeppID, directives Directives, specs m.PathSpecs, storm *m.Storm) (m.RunFile, error) {
	inputs, err := resolveUnitInputs(b.resolver, id, directives, specs, storm)
	if err != nil {
		return m.RunFile{}, fmt.Errorf("hillslope %d: %w", int(id), err)
	}

	if err := b.requireDirs(b.resolver, specs); err != nil {
		return m.RunFile{}, fmt.Errorf("hillslope %d: %w", int(id), err)
	}

	if err := b.requireFiles(b.resolver, inputValues(inputs)...); err != nil {
		return m.RunFile{}, fmt.Errorf("hillslope %d: %w", int(id), err)
	}

	out := directives.OutputDir(b.layout.Output(), storm)
	passFile := m.JoinRel(out, fmt.Sprintf("H%d.pass.dat", int(id)))

	data := runTemplateData{
		SimulationType: directives.SimulationType,
		SimYears:       b.layout.SimYears,
		PassFile:       passFile,
		LossFile:       m.JoinRel(out, fmt.Sprintf("H%d.loss.dat", int(id))),
		WaterFile:      m.JoinRel(out, fmt.Sprintf("H%d.wat.dat", int(id))),
		EventFile:      m.JoinRel(out, fmt.Sprintf("H%d.ebe.dat", int(id))),
		Management:     inputs[m.CategoryManagement],
		Slope:          inputs[m.CategorySlope],
		Climate:        inputs[m.CategoryClimate],
		Soil:           inputs[m.CategorySoil],
	}

	tmpl := directives.HillslopeTemplate
	if b.layout.Reveg && directives.RevegHillslopeTemplate != "" {
		tmpl = directives.RevegHillslopeTemplate
		data.CropFile = m.JoinRel(out, fmt.Sprintf("H%d.crop.dat", int(id)))
		data.YieldFile = m.JoinRel(out, fmt.Sprintf("H%d.yield.dat", int(id)))
	}

	text, err := renderRunTemplate(tmpl, data)
	if err != nil {
		return m.RunFile{}, err
	}

	run := m.NewRunFile(m.RunFileSpec{
		Name:     directives.RunFileName(fmt.Sprintf("p%d", int(id)), storm),
		Scope:    m.ScopeHillslope,
		Mode:     directives.Mode,
		Units:    []m.WeppID{id},
		Inputs:   inputs,
		Storm:    storm,
		Artifact: passFile,
		Text:     text,
	})

	slog.Debug("Built hillslope run", "weppID", int(id), "mode", directives.Mode, "run", run.Name())

	return run, nil
}

// resolveUnitInputs resolves the four p<id>.* inputs of a unit.
func resolveUnitInputs(resolver PathResolver, id m.WeppID, directives Directives, specs m.PathSpecs, storm *m.Storm) (map[m.Category]string, error) {
	inputs := make(map[m.Category]string, len(m.Categories))

	for _, category := range m.Categories {
		var (
			resolved string
			err      error
		)

		if category == m.CategoryClimate {
			if err = id.Validate(); err != nil {
				return nil, err
			}

			name := directives.ClimateFileName(fmt.Sprintf("p%d", int(id)), storm)
			resolved, err = resolver.ResolveName(name, specs.For(category))
		} else {
			resolved, err = resolver.Resolve(category, id, specs.For(category))
		}

		if err != nil {
			return nil, err
		}

		inputs[category] = resolved
	}

	return inputs, nil
}

func inputValues(inputs map[m.Category]string) []string {
	values := make([]string, 0, len(inputs))
	for _, category := range m.Categories {
		if v, ok := inputs[category]; ok {
			values = append(values, v)
		}
	}

	return values
}

func validateStorms(storms []m.Storm) error {
	if len(storms) == 0 {
		return fmt.Errorf("no storms given: %w", m.ErrInvalidReference)
	}

	seen := map[int]bool{}
	for _, storm := range storms {
		if storm.ID < 0 {
			return fmt.Errorf("storm id %d is negative: %w", storm.ID, m.ErrInvalidReference)
		}

		if seen[storm.ID] {
			return fmt.Errorf("storm %d: %w", storm.ID, m.ErrDuplicateID)
		}

		seen[storm.ID] = true
	}

	return nil
}
