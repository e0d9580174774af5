package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// PlanLoader reads project plans from disk.
type PlanLoader interface {
	// Load decodes the plan at path. Files ending in .hcl are HCL, anything
	// else is YAML.
	Load(path m.Path) (m.Plan, error)
}

// FilePlanLoader implements PlanLoader on top of a ProjectFSAdapter.
type FilePlanLoader struct {
	fs      ProjectFSAdapter
	environ func() []string
}

// NewFilePlanLoader constructs a FilePlanLoader. HCL plans can read the
// process environment through the env object, e.g. "${env.HOME}/runs".
func NewFilePlanLoader(fs ProjectFSAdapter) *FilePlanLoader {
	return &FilePlanLoader{fs: fs, environ: os.Environ}
}

// Load decodes the plan at path and checks the fields every plan needs.
func (l *FilePlanLoader) Load(path m.Path) (m.Plan, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return m.Plan{}, fmt.Errorf("read %s: %w", path, err)
	}

	var plan m.Plan

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".hcl":
		plan, err = l.decodeHCL(string(path), data)
	default:
		plan, err = decodeYAML(string(path), data)
	}

	if err != nil {
		return m.Plan{}, err
	}

	if strings.TrimSpace(plan.RunsDir) == "" {
		return m.Plan{}, fmt.Errorf("%s: runs_dir is required: %w", path, m.ErrInvalidReference)
	}

	if _, err := plan.ClimateMode(); err != nil {
		return m.Plan{}, fmt.Errorf("%s: %w", path, err)
	}

	return plan, nil
}

func decodeYAML(name string, data []byte) (m.Plan, error) {
	var plan m.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return m.Plan{}, fmt.Errorf("unmarshal %s: %w", name, err)
	}

	return plan, nil
}

func (l *FilePlanLoader) decodeHCL(name string, data []byte) (m.Plan, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return m.Plan{}, fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}

	var plan m.Plan
	if diags := gohcl.DecodeBody(file.Body, l.evalContext(), &plan); diags.HasErrors() {
		return m.Plan{}, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	return plan, nil
}

func (l *FilePlanLoader) evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)

	for _, kv := range l.environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
