package domain

import (
	"fmt"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// Task ids are scope-prefixed so hillslopes, flowpaths and watersheds never
// collide.
func hillslopeTaskID(run m.RunFile) string { return "hillslope/" + runBase(run) }
func flowpathTaskID(run m.RunFile) string  { return "flowpath/" + runBase(run) }
func watershedTaskID(run m.RunFile) string { return "watershed/" + runBase(run) }

// PlanTasks builds every run file plan describes and wires them into tasks:
// hillslopes and flowpaths are independent, the watershed depends on the
// hillslopes whose pass files it reads. Relative directories in the plan are
// resolved against base.
func PlanTasks(plan m.Plan, base string, opts ...BuilderOption) ([]Task, error) {
	mode, err := plan.ClimateMode()
	if err != nil {
		return nil, err
	}

	specs, err := plan.PathSpecs()
	if err != nil {
		return nil, err
	}

	registry := NewIdentifierRegistry()
	if err := registry.RegisterAll(plan.Hillslopes); err != nil {
		return nil, fmt.Errorf("hillslopes: %w", err)
	}

	layout := plan.Layout(base)

	hillTasks, err := hillslopeTasks(plan, layout, mode, specs, registry.AllIDs(), opts)
	if err != nil {
		return nil, err
	}

	tasks := append([]Task(nil), hillTasks...)

	fpLayout := plan.FlowpathLayout(base)
	fpBuilder := NewFlowpathRunBuilder(fpLayout, opts...)

	for _, fp := range plan.Flowpaths {
		run, err := fpBuilder.Build(fp, mode, specs)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, Task{ID: flowpathTaskID(run), Run: run, RunsDir: fpLayout.RunsDir})
	}

	if plan.Watershed == nil {
		return tasks, nil
	}

	watershed, err := watershedTasks(plan, layout, mode, specs, hillTasks, opts)
	if err != nil {
		return nil, err
	}

	return append(tasks, watershed...), nil
}

func hillslopeTasks(plan m.Plan, layout m.Layout, mode m.ClimateMode, specs m.PathSpecs, ids []m.WeppID, opts []BuilderOption) ([]Task, error) {
	builder := NewHillslopeRunBuilder(layout, opts...)
	tasks := make([]Task, 0, len(ids))

	for _, id := range ids {
		var runs []m.RunFile

		if mode == m.ModeSingleStormBatch {
			batch, err := builder.BuildBatch(id, specs, plan.Storms)
			if err != nil {
				return nil, err
			}

			runs = batch
		} else {
			run, err := builder.Build(id, mode, specs)
			if err != nil {
				return nil, err
			}

			runs = []m.RunFile{run}
		}

		for _, run := range runs {
			tasks = append(tasks, Task{ID: hillslopeTaskID(run), Run: run, RunsDir: layout.RunsDir})
		}
	}

	return tasks, nil
}

func watershedTasks(plan m.Plan, layout m.Layout, mode m.ClimateMode, specs m.PathSpecs, hillTasks []Task, opts []BuilderOption) ([]Task, error) {
	runs := make([]m.RunFile, 0, len(hillTasks))
	for _, task := range hillTasks {
		runs = append(runs, task.Run)
	}

	topology, ledger, err := TopologyFromRuns(runs)
	if err != nil {
		return nil, err
	}

	topology.Routes = plan.Watershed.Routes

	builder := NewWatershedRunBuilder(layout, opts...)

	if mode == m.ModeSingleStormBatch {
		return batchWatershedTasks(plan, layout, builder, topology, specs, ledger, hillTasks)
	}

	var run m.RunFile

	local := map[m.WeppID]bool{}

	if len(plan.Watershed.Contrasts) > 0 {
		refs, err := plan.PassRefs()
		if err != nil {
			return nil, err
		}

		for _, ref := range refs {
			local[ref.ID] = !ref.IsExternal()
		}

		run, err = builder.BuildWithContrasts(topology, mode, refs, ledger)
		if err != nil {
			return nil, err
		}
	} else {
		for _, id := range topology.Hillslopes {
			local[id] = true
		}

		run, err = builder.Build(topology, mode, specs, ledger)
		if err != nil {
			return nil, err
		}
	}

	var deps []string

	for _, task := range hillTasks {
		if units := task.Run.Units(); len(units) > 0 && local[units[0]] {
			deps = append(deps, task.ID)
		}
	}

	return []Task{{ID: watershedTaskID(run), Run: run, RunsDir: layout.RunsDir, DependsOn: deps}}, nil
}

// batchWatershedTasks builds one watershed per storm, each depending on the
// hillslope runs of the same storm.
func batchWatershedTasks(plan m.Plan, layout m.Layout, builder WatershedRunBuilder, topology m.Topology, specs m.PathSpecs, ledger m.ModeLedger, hillTasks []Task) ([]Task, error) {
	if len(plan.Watershed.Contrasts) > 0 {
		return nil, fmt.Errorf("contrasts with %s: %w", m.ModeSingleStormBatch, m.ErrUnsupportedMode)
	}

	tasks := make([]Task, 0, len(plan.Storms))

	for _, storm := range plan.Storms {
		run, err := builder.BuildBatch(topology, specs, storm, ledger)
		if err != nil {
			return nil, err
		}

		var deps []string

		for _, task := range hillTasks {
			if s, ok := task.Run.Storm(); ok && s.ID == storm.ID {
				deps = append(deps, task.ID)
			}
		}

		tasks = append(tasks, Task{ID: watershedTaskID(run), Run: run, RunsDir: layout.RunsDir, DependsOn: deps})
	}

	return tasks, nil
}
