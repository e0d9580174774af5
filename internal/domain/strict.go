package domain

import (
	"fmt"
	"log/slog"

	"weppcloud.dev/pkg/wepprunner/internal/adapter"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// BuilderOption configures the run builders.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	fs       adapter.ProjectFSAdapter
	selector ClimateModeSelector
}

// WithStrictInputs makes the builder verify that every referenced file and
// override directory exists relative to the runs directory.
func WithStrictInputs(fs adapter.ProjectFSAdapter) BuilderOption {
	return func(c *builderConfig) {
		c.fs = fs
	}
}

// WithClimateModeSelector replaces the default selector.
func WithClimateModeSelector(selector ClimateModeSelector) BuilderOption {
	return func(c *builderConfig) {
		c.selector = selector
	}
}

func newBuilderConfig(opts []BuilderOption) builderConfig {
	cfg := builderConfig{selector: NewClimateModeSelector()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c builderConfig) strict() bool {
	return c.fs != nil
}

// requireFiles checks that every embedded path exists. It is a no-op outside
// strict mode.
func (c builderConfig) requireFiles(resolver PathResolver, embedded ...string) error {
	if !c.strict() {
		return nil
	}

	for _, p := range embedded {
		location := resolver.Locate(p)

		ok, err := c.fs.Exists(location)
		if err != nil {
			slog.Error("Failed to check input", "path", location, "error", err)
			return fmt.Errorf("check %s: %w", location, err)
		}

		if !ok {
			return fmt.Errorf("%s (looked in %s): %w", p, location, m.ErrMissingInput)
		}
	}

	return nil
}

// requireDirs checks that every override directory resolves to an existing
// directory.
func (c builderConfig) requireDirs(resolver PathResolver, specs m.PathSpecs) error {
	if !c.strict() {
		return nil
	}

	for _, category := range m.Categories {
		spec := specs.For(category)
		if spec == nil {
			continue
		}

		if err := c.requireDir(resolver, spec.Dir); err != nil {
			return fmt.Errorf("%s override: %w", category, err)
		}
	}

	return nil
}

func (c builderConfig) requireDir(resolver PathResolver, dir string) error {
	if !c.strict() {
		return nil
	}

	location := resolver.Locate(dir)

	info, err := c.fs.FileInfo(location)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory %s (looked in %s): %w", dir, location, m.ErrMissingInput)
	}

	return nil
}
