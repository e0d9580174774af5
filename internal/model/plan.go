package model

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Plan describes every run a project needs. It is decoded from YAML or HCL.
type Plan struct {
	Name            string            `yaml:"name" hcl:"name,optional"`
	RunsDir         string            `yaml:"runs_dir" hcl:"runs_dir"`
	FlowpathRunsDir string            `yaml:"flowpath_runs_dir,omitempty" hcl:"flowpath_runs_dir,optional"`
	OutputDir       string            `yaml:"output_dir,omitempty" hcl:"output_dir,optional"`
	Mode            string            `yaml:"mode,omitempty" hcl:"mode,optional"`
	SimYears        int               `yaml:"sim_years,omitempty" hcl:"sim_years,optional"`
	Strict          bool              `yaml:"strict,omitempty" hcl:"strict,optional"`
	Reveg           *bool             `yaml:"reveg,omitempty" hcl:"reveg,optional"`
	Omni            bool              `yaml:"omni,omitempty" hcl:"omni,optional"`
	OmniDir         string            `yaml:"omni_dir,omitempty" hcl:"omni_dir,optional"`
	Overrides       map[string]string `yaml:"overrides,omitempty" hcl:"overrides,optional"`
	Hillslopes      []WeppID          `yaml:"hillslopes,omitempty" hcl:"hillslopes,optional"`
	Flowpaths       []Flowpath        `yaml:"flowpaths,omitempty" hcl:"flowpath,block"`
	Storms          []Storm           `yaml:"storms,omitempty" hcl:"storm,block"`
	Watershed       *WatershedPlan    `yaml:"watershed,omitempty" hcl:"watershed,block"`
}

// WatershedPlan enables the watershed run and optionally mixes in hillslope
// outputs from other projects.
type WatershedPlan struct {
	Routes    []Route    `yaml:"routes,omitempty" hcl:"route,block"`
	Contrasts []Contrast `yaml:"contrasts,omitempty" hcl:"contrast,block"`
}

// Contrast replaces one hillslope's pass file with the one found in Dir.
type Contrast struct {
	WeppID WeppID `yaml:"wepp_id" hcl:"wepp_id"`
	Dir    string `yaml:"dir" hcl:"dir"`
}

// ClimateMode parses the plan's mode.
func (p Plan) ClimateMode() (ClimateMode, error) {
	return ParseClimateMode(p.Mode)
}

// Layout returns the builder configuration for the plan's hillslope runs dir.
// Relative runs dirs are resolved against base.
func (p Plan) Layout(base string) Layout {
	return Layout{
		RunsDir:   Path(resolveDir(base, p.RunsDir)),
		OutputDir: p.OutputDir,
		SimYears:  p.SimYears,
		Reveg:     p.RevegEnabled(),
	}
}

// RevegEnabled reports whether continuous hillslopes use the revegetation
// run. It is on unless the plan turns it off.
func (p Plan) RevegEnabled() bool {
	return p.Reveg == nil || *p.Reveg
}

// FlowpathLayout returns the configuration for flowpath runs. It falls back to
// the hillslope runs dir.
func (p Plan) FlowpathLayout(base string) Layout {
	l := p.Layout(base)
	if p.FlowpathRunsDir == "" {
		return l
	}

	parent := l.RunsDir
	l.RunsDir = Path(resolveDir(base, p.FlowpathRunsDir))
	l.ParentRunsDir = relativeDir(string(l.RunsDir), string(parent))

	return l
}

// relativeDir returns target as seen from dir in slash form, "" when they are
// the same directory. Unrelatable paths fall back to an absolute target.
func relativeDir(dir, target string) string {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		if abs, absErr := filepath.Abs(target); absErr == nil {
			return filepath.ToSlash(abs)
		}

		return filepath.ToSlash(target)
	}

	if rel == "." {
		return ""
	}

	return filepath.ToSlash(rel)
}

// PathSpecs converts overrides, applying the Omni parent lookup for climate and
// slope first so explicit overrides win.
func (p Plan) PathSpecs() (PathSpecs, error) {
	specs := PathSpecs{}
	if p.Omni {
		specs = OmniSpecs(p.OmniDir)
	}

	keys := make([]string, 0, len(p.Overrides))
	for k := range p.Overrides {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		category, err := ParseCategory(k)
		if err != nil {
			return nil, err
		}

		spec := RelativePathSpec{Dir: p.Overrides[k]}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("override %s: %w", k, err)
		}

		specs[category] = spec
	}

	return specs, nil
}

// PassRefs aligns the watershed contrasts with the plan's hillslope order.
// Hillslopes without a contrast use their local pass file.
func (p Plan) PassRefs() ([]PassRef, error) {
	external := map[WeppID]string{}

	if p.Watershed != nil {
		known := map[WeppID]bool{}
		for _, id := range p.Hillslopes {
			known[id] = true
		}

		for _, c := range p.Watershed.Contrasts {
			if !known[c.WeppID] {
				return nil, fmt.Errorf("contrast for hillslope %d not in plan: %w", c.WeppID, ErrTopologyMismatch)
			}

			if err := (RelativePathSpec{Dir: c.Dir}).Validate(); err != nil {
				return nil, fmt.Errorf("contrast for hillslope %d: %w", c.WeppID, err)
			}

			if _, dup := external[c.WeppID]; dup {
				return nil, fmt.Errorf("contrast for hillslope %d: %w", c.WeppID, ErrDuplicateID)
			}

			external[c.WeppID] = c.Dir
		}
	}

	refs := make([]PassRef, 0, len(p.Hillslopes))
	for _, id := range p.Hillslopes {
		if dir, ok := external[id]; ok {
			refs = append(refs, External(id, dir))
			continue
		}

		refs = append(refs, Local(id))
	}

	return refs, nil
}

func resolveDir(base, dir string) string {
	if dir == "" || filepath.IsAbs(dir) || base == "" {
		return dir
	}

	return filepath.Join(base, dir)
}
