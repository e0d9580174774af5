package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// SimpleUI implements UI using cobra Command's output. It is safe for
// concurrent use; scheduler workers report progress through it.
type SimpleUI struct {
	mu  sync.Mutex
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayBuild prints the written run files and the diff of every changed one.
func (s *SimpleUI) DisplayBuild(ctx context.Context, changes []RunFileChange, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("build error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderBuildTable(changes))

	for _, change := range changes {
		if change.Diff != "" {
			s.printf("\n%s", change.Diff)
		}
	}

	return nil
}

func renderBuildTable(changes []RunFileChange) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run file", "Scope", "State"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	changed := 0

	for _, change := range changes {
		state := "unchanged"

		switch {
		case change.Created:
			state = "created"
			changed++
		case change.Diff != "":
			state = "updated"
			changed++
		}

		table.Append([]string{string(change.Path), string(change.Scope), state})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(changes)),
		"",
		fmt.Sprintf("%d changed", changed),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, parallel int, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running %d simulation(s) with %d worker(s)\n", total, parallel)
}

// DisplayStartingRun shows the run being started.
func (s *SimpleUI) DisplayStartingRun(ctx context.Context, run m.RunFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Starting %s (%s, %s)\n", run.Name(), run.Scope(), run.Mode())
}

// DisplayCompletedRun shows the outcome of one run.
func (s *SimpleUI) DisplayCompletedRun(ctx context.Context, result m.SimulationResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Completed %s -> %s\n", result.RunName, result.Status)

	if result.Status == m.StatusFailure && result.Diagnostics != "" {
		s.printf("%s\n", result.Diagnostics)
	}
}

// DisplaySummary prints a table of every result.
func (s *SimpleUI) DisplaySummary(ctx context.Context, results []m.SimulationResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(results))
}

func renderSummaryTable(results []m.SimulationResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Scope", "Status", "Elapsed", "Output"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, r := range results {
		output := string(r.Artifact)
		if r.Status != m.StatusSuccess {
			output = string(r.Log)
		}

		table.Append([]string{
			r.RunName,
			string(r.Scope),
			r.Status.String(),
			r.Elapsed.Round(time.Millisecond).String(),
			output,
		})
	}

	counts := CountResults(results)
	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(results)),
		"",
		fmt.Sprintf("%d ok", counts.Succeeded),
		fmt.Sprintf("%d failed", counts.Failed),
		fmt.Sprintf("%d skipped", counts.Skipped),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
