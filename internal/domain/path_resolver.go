package domain

import (
	"fmt"
	"path/filepath"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// PathResolver computes the input paths embedded in run files. It never
// touches the filesystem.
type PathResolver interface {
	// Resolve returns p<id>.<ext>, prefixed with the override's directory when
	// spec is non-nil.
	Resolve(category m.Category, id m.WeppID, spec *m.RelativePathSpec) (string, error)
	// ResolveName prefixes an arbitrary file name with the override's directory.
	ResolveName(name string, spec *m.RelativePathSpec) (string, error)
	// Locate maps an embedded path to where it lives from this process's point
	// of view, i.e. relative to the runs directory.
	Locate(embedded string) m.Path
}

type pathResolver struct {
	runsDir m.Path
}

// NewPathResolver returns a resolver rooted at runsDir.
func NewPathResolver(runsDir m.Path) PathResolver {
	return &pathResolver{runsDir: runsDir}
}

// UnitFileName is the project naming convention for per-unit inputs.
func UnitFileName(category m.Category, id m.WeppID) string {
	return fmt.Sprintf("p%d.%s", int(id), category.Ext())
}

func (r *pathResolver) Resolve(category m.Category, id m.WeppID, spec *m.RelativePathSpec) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}

	if category.Ext() == "" {
		return "", fmt.Errorf("input category %q: %w", category, m.ErrInvalidReference)
	}

	return r.ResolveName(UnitFileName(category, id), spec)
}

func (r *pathResolver) ResolveName(name string, spec *m.RelativePathSpec) (string, error) {
	if spec == nil {
		return name, nil
	}

	if err := spec.Validate(); err != nil {
		return "", err
	}

	return m.JoinRel(spec.Dir, name), nil
}

func (r *pathResolver) Locate(embedded string) m.Path {
	if filepath.IsAbs(embedded) {
		return m.Path(embedded)
	}

	return m.Path(filepath.Join(string(r.runsDir), filepath.FromSlash(embedded)))
}
