package domain

import (
	"fmt"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// Directives are the run-file tokens and naming conventions implied by a
// climate mode.
type Directives struct {
	Mode m.ClimateMode
	// SimulationType is the answer to the simulator's simulation-type prompt.
	SimulationType string
	// EmitsYears is true when the run file carries the number of years.
	EmitsYears bool
	// RequiresStorm is true when each run file is bound to one storm segment.
	RequiresStorm bool

	HillslopeTemplate string
	// RevegHillslopeTemplate replaces HillslopeTemplate for revegetation
	// runs. Empty when the mode has no revegetation variant.
	RevegHillslopeTemplate string
	FlowpathTemplate       string
	WatershedTemplate      string
}

// ClimateFileName returns the climate file name for a unit. Batch modes embed
// the storm id: p<id>.<storm>.cli.
func (d Directives) ClimateFileName(prefix string, storm *m.Storm) string {
	if d.RequiresStorm && storm != nil {
		return fmt.Sprintf("%s.%d.%s", prefix, storm.ID, m.CategoryClimate.Ext())
	}

	return prefix + "." + m.CategoryClimate.Ext()
}

// RunFileName returns the run file name for a unit.
func (d Directives) RunFileName(prefix string, storm *m.Storm) string {
	if d.RequiresStorm && storm != nil {
		return fmt.Sprintf("%s.%d.run", prefix, storm.ID)
	}

	return prefix + ".run"
}

// OutputDir returns where a run's outputs go. Batch runs write into a
// per-storm subdirectory.
func (d Directives) OutputDir(base string, storm *m.Storm) string {
	if d.RequiresStorm && storm != nil {
		return m.JoinRel(base, storm.BatchKey())
	}

	return base
}

// ClimateModeSelector maps a climate mode to its directives.
type ClimateModeSelector interface {
	DirectivesFor(mode m.ClimateMode) (Directives, error)
}

type climateModeSelector struct{}

// NewClimateModeSelector returns the stateless selector.
func NewClimateModeSelector() ClimateModeSelector {
	return climateModeSelector{}
}

var modeDirectives = map[m.ClimateMode]Directives{
	m.ModeContinuous: {
		Mode:                   m.ModeContinuous,
		SimulationType:         "1",
		EmitsYears:             true,
		HillslopeTemplate:      "hillslope.tmpl",
		RevegHillslopeTemplate: "reveg_hillslope.tmpl",
		FlowpathTemplate:       "flowpath.tmpl",
		WatershedTemplate:      "watershed.tmpl",
	},
	m.ModeSingleStorm: {
		Mode:              m.ModeSingleStorm,
		SimulationType:    "2",
		HillslopeTemplate: "ss_hillslope.tmpl",
		FlowpathTemplate:  "ss_flowpath.tmpl",
		WatershedTemplate: "ss_watershed.tmpl",
	},
	m.ModeSingleStormBatch: {
		Mode:              m.ModeSingleStormBatch,
		SimulationType:    "2",
		RequiresStorm:     true,
		HillslopeTemplate: "ss_hillslope.tmpl",
		FlowpathTemplate:  "ss_flowpath.tmpl",
		WatershedTemplate: "ss_watershed.tmpl",
	},
}

func (climateModeSelector) DirectivesFor(mode m.ClimateMode) (Directives, error) {
	d, ok := modeDirectives[mode]
	if !ok {
		return Directives{}, fmt.Errorf("climate mode %q: %w", mode, m.ErrUnsupportedMode)
	}

	return d, nil
}
