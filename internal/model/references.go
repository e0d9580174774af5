package model

import (
	"fmt"
	"strings"
)

// Category is one kind of hillslope input file.
type Category string

const (
	CategorySoil       Category = "soil"
	CategoryClimate    Category = "climate"
	CategorySlope      Category = "slope"
	CategoryManagement Category = "management"
)

// Categories lists the inputs every hillslope run references, in the order
// they are checked.
var Categories = []Category{CategorySoil, CategoryClimate, CategorySlope, CategoryManagement}

// Ext returns the file extension without the dot.
func (c Category) Ext() string {
	switch c {
	case CategorySoil:
		return "sol"
	case CategoryClimate:
		return "cli"
	case CategorySlope:
		return "slp"
	case CategoryManagement:
		return "man"
	}

	return ""
}

// ParseCategory accepts category names and extensions.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soil", "sol":
		return CategorySoil, nil
	case "climate", "cli":
		return CategoryClimate, nil
	case "slope", "slp":
		return CategorySlope, nil
	case "management", "man":
		return CategoryManagement, nil
	}

	return "", fmt.Errorf("input category %q: %w", s, ErrInvalidReference)
}

// RelativePathSpec points at the directory holding an input, relative to the
// runs directory.
type RelativePathSpec struct {
	Dir string
}

// Validate rejects specs that cannot be embedded in a run file.
func (s RelativePathSpec) Validate() error {
	if strings.TrimSpace(s.Dir) == "" {
		return fmt.Errorf("empty relative path: %w", ErrInvalidReference)
	}

	if strings.ContainsAny(s.Dir, "\n\r") {
		return fmt.Errorf("relative path %q contains a line break: %w", s.Dir, ErrInvalidReference)
	}

	return nil
}

// PathSpecs holds an optional override per category. A missing entry means
// the input is local to the runs directory.
type PathSpecs map[Category]RelativePathSpec

// For returns the override for c, or nil when the input is local.
func (p PathSpecs) For(c Category) *RelativePathSpec {
	spec, ok := p[c]
	if !ok {
		return nil
	}

	return &spec
}

// PassRef identifies the pass file of one hillslope. It is either local to the
// current project or external, living in a sibling or parent Omni project.
type PassRef struct {
	ID  WeppID
	dir string
}

// Local references the project's own pass file for id.
func Local(id WeppID) PassRef {
	return PassRef{ID: id}
}

// External references the pass file for id inside dir, a path relative to the
// runs directory.
func External(id WeppID, dir string) PassRef {
	return PassRef{ID: id, dir: dir}
}

// IsExternal reports whether the pass file lives outside the project.
func (r PassRef) IsExternal() bool {
	return r.dir != ""
}

// Dir returns the external directory, empty for local references.
func (r PassRef) Dir() string {
	return r.dir
}

// Route says which channel a hillslope drains to.
type Route struct {
	Hillslope WeppID `yaml:"hillslope" hcl:"hillslope"`
	Channel   int    `yaml:"channel" hcl:"channel"`
}

// Topology is the ordered set of hillslopes simulated by a watershed run.
type Topology struct {
	Hillslopes []WeppID
	Routes     []Route
}

// DefaultOmniDir is where an Omni child project finds its parent's climate and
// slope files, relative to the child's runs directory.
const DefaultOmniDir = "../../../../../wepp/runs/"

// OmniSpecs points climate and slope at the parent project's runs directory.
// An empty dir selects DefaultOmniDir.
func OmniSpecs(dir string) PathSpecs {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultOmniDir
	}

	return PathSpecs{
		CategoryClimate: {Dir: dir},
		CategorySlope:   {Dir: dir},
	}
}
