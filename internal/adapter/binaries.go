package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// LatestBinary is the name that selects the default simulator build.
const LatestBinary = "latest"

// DefaultBinaryName is the simulator file used for LatestBinary.
const DefaultBinaryName = "wepp"

// ListBinaries returns the selectable simulator builds in binDir: every
// wepp_* file without an extension, plus LatestBinary, sorted.
func ListBinaries(binDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(binDir, "wepp_*"))
	if err != nil {
		return nil, fmt.Errorf("list binaries in %s: %w", binDir, err)
	}

	names := make([]string, 0, len(matches)+1)

	for _, match := range matches {
		name := filepath.Base(match)
		if strings.Contains(name, ".") {
			continue
		}

		names = append(names, name)
	}

	names = append(names, LatestBinary)
	sort.Strings(names)

	return names, nil
}

// ResolveBinary returns the absolute path of the build called name in binDir.
// An empty name or LatestBinary selects DefaultBinaryName. Names are looked up
// in binDir only.
func ResolveBinary(binDir, name string) (string, error) {
	if name == "" || name == LatestBinary {
		name = DefaultBinaryName
	}

	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("binary %q: %w", name, m.ErrInvalidReference)
	}

	path, err := filepath.Abs(filepath.Join(binDir, name))
	if err != nil {
		return "", fmt.Errorf("resolve binary %s: %w", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("binary %s: %w", path, m.ErrMissingInput)
	}

	if info.IsDir() {
		return "", fmt.Errorf("binary %s is a directory: %w", path, m.ErrMissingInput)
	}

	return path, nil
}
