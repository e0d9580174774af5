package domain

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// FlowpathRunBuilder assembles run files for independent flowpaths. Flowpath
// runs never write pass files and cannot feed a watershed.
type FlowpathRunBuilder interface {
	Build(fp m.Flowpath, mode m.ClimateMode, specs m.PathSpecs) (m.RunFile, error)
}

type flowpathRunBuilder struct {
	builderConfig
	layout   m.Layout
	resolver PathResolver
}

// NewFlowpathRunBuilder constructs a FlowpathRunBuilder for the flowpath runs
// directory described by layout.
func NewFlowpathRunBuilder(layout m.Layout, opts ...BuilderOption) FlowpathRunBuilder {
	return &flowpathRunBuilder{
		builderConfig: newBuilderConfig(opts),
		layout:        layout,
		resolver:      NewPathResolver(layout.RunsDir),
	}
}

// FlowpathName returns the flowpath's file prefix, p<id> when unnamed.
func FlowpathName(fp m.Flowpath) string {
	if name := strings.TrimSpace(fp.Name); name != "" {
		return name
	}

	return fmt.Sprintf("p%d", int(fp.WeppID))
}

func (b *flowpathRunBuilder) Build(fp m.Flowpath, mode m.ClimateMode, specs m.PathSpecs) (m.RunFile, error) {
	directives, err := b.selector.DirectivesFor(mode)
	if err != nil {
		return m.RunFile{}, err
	}

	if directives.RequiresStorm {
		return m.RunFile{}, fmt.Errorf("flowpath %s: %w", fp.Name, m.ErrUnsupportedMode)
	}

	name := FlowpathName(fp)
	if strings.ContainsAny(name, "/\\ \n") {
		return m.RunFile{}, fmt.Errorf("flowpath name %q: %w", name, m.ErrInvalidReference)
	}

	parentSpecs := b.parentSpecs(specs)

	inputs, err := resolveUnitInputs(b.resolver, fp.WeppID, directives, parentSpecs, nil)
	if err != nil {
		return m.RunFile{}, fmt.Errorf("flowpath %s: %w", name, err)
	}

	// The flowpath's own slope always sits next to its run file.
	inputs[m.CategorySlope] = name + "." + m.CategorySlope.Ext()

	if err := b.requireDirs(b.resolver, parentSpecs); err != nil {
		return m.RunFile{}, fmt.Errorf("flowpath %s: %w", name, err)
	}

	if err := b.requireFiles(b.resolver, inputValues(inputs)...); err != nil {
		return m.RunFile{}, fmt.Errorf("flowpath %s: %w", name, err)
	}

	plotFile := name + ".plot.dat"

	text, err := renderRunTemplate(directives.FlowpathTemplate, runTemplateData{
		SimulationType: directives.SimulationType,
		SimYears:       b.layout.SimYears,
		LossFile:       name + ".loss.dat",
		PlotFile:       plotFile,
		Management:     inputs[m.CategoryManagement],
		Slope:          inputs[m.CategorySlope],
		Climate:        inputs[m.CategoryClimate],
		Soil:           inputs[m.CategorySoil],
	})
	if err != nil {
		return m.RunFile{}, err
	}

	run := m.NewRunFile(m.RunFileSpec{
		Name:     directives.RunFileName(name, nil),
		Scope:    m.ScopeFlowpath,
		Mode:     directives.Mode,
		Units:    []m.WeppID{fp.WeppID},
		Inputs:   inputs,
		Artifact: plotFile,
		Text:     text,
	})

	slog.Debug("Built flowpath run", "flowpath", name, "weppID", int(fp.WeppID), "mode", directives.Mode)

	return run, nil
}

// parentSpecs rebases the parent hillslope's soil, climate and management
// onto the flowpath runs directory. Overrides are written relative to the
// hillslope runs directory, so relative ones get the same prefix. Slope is
// left out.
func (b *flowpathRunBuilder) parentSpecs(specs m.PathSpecs) m.PathSpecs {
	rebased := make(m.PathSpecs, len(m.Categories))

	for _, category := range m.Categories {
		if category == m.CategorySlope {
			continue
		}

		dir := b.layout.ParentRunsDir

		if spec := specs.For(category); spec != nil {
			dir = spec.Dir
			if !path.IsAbs(spec.Dir) && !filepath.IsAbs(spec.Dir) {
				dir = m.JoinRel(b.layout.ParentRunsDir, spec.Dir)
			}
		}

		if dir != "" {
			rebased[category] = m.RelativePathSpec{Dir: dir}
		}
	}

	return rebased
}
