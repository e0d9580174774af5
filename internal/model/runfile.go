package model

import (
	"maps"
	"slices"
)

// Scope is the spatial scope of a run file.
type Scope string

const (
	ScopeHillslope Scope = "hillslope"
	ScopeFlowpath  Scope = "flowpath"
	ScopeWatershed Scope = "watershed"
)

// Flowpath is an independent unit that borrows soil, climate and management
// from its parent hillslope but has its own slope file.
type Flowpath struct {
	WeppID WeppID `yaml:"wepp_id" hcl:"wepp_id"`
	Name   string `yaml:"name" hcl:"name,label"`
}

// RunFileSpec carries everything a builder resolved for a run file.
type RunFileSpec struct {
	Name      string
	Scope     Scope
	Mode      ClimateMode
	Units     []WeppID
	Inputs    map[Category]string
	PassFiles []string
	Storm     *Storm
	Artifact  string
	Text      string
}

// RunFile is a rendered simulator run file. It is never mutated after
// construction; accessors return copies.
type RunFile struct {
	name      string
	scope     Scope
	mode      ClimateMode
	units     []WeppID
	inputs    map[Category]string
	passFiles []string
	storm     *Storm
	artifact  string
	text      string
}

// NewRunFile freezes spec into a RunFile.
func NewRunFile(spec RunFileSpec) RunFile {
	rf := RunFile{
		name:      spec.Name,
		scope:     spec.Scope,
		mode:      spec.Mode,
		units:     slices.Clone(spec.Units),
		inputs:    maps.Clone(spec.Inputs),
		passFiles: slices.Clone(spec.PassFiles),
		artifact:  spec.Artifact,
		text:      spec.Text,
	}

	if spec.Storm != nil {
		storm := *spec.Storm
		rf.storm = &storm
	}

	return rf
}

// Name is the file name the run file is written under inside the runs dir.
func (r RunFile) Name() string { return r.name }

// Scope returns the spatial scope.
func (r RunFile) Scope() Scope { return r.scope }

// Mode returns the climate mode.
func (r RunFile) Mode() ClimateMode { return r.mode }

// Units returns the wepp ids referenced, in run order.
func (r RunFile) Units() []WeppID { return slices.Clone(r.units) }

// Input returns the embedded path for one category.
func (r RunFile) Input(c Category) (string, bool) {
	v, ok := r.inputs[c]
	return v, ok
}

// Inputs returns every embedded input path by category.
func (r RunFile) Inputs() map[Category]string { return maps.Clone(r.inputs) }

// PassFiles returns the hillslope pass files of a watershed run, in order.
func (r RunFile) PassFiles() []string { return slices.Clone(r.passFiles) }

// Storm returns the batch storm, if any.
func (r RunFile) Storm() (Storm, bool) {
	if r.storm == nil {
		return Storm{}, false
	}

	return *r.storm, true
}

// Artifact is the expected output file, relative to the runs dir.
func (r RunFile) Artifact() string { return r.artifact }

// Text is the rendered content fed to the simulator.
func (r RunFile) Text() string { return r.text }

// Routable reports whether the run's outputs can feed a watershed.
func (r RunFile) Routable() bool { return r.scope != ScopeFlowpath }

// IsZero reports whether the run file was never built.
func (r RunFile) IsZero() bool { return r.name == "" && r.text == "" }
