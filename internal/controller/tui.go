package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// recentLimit is how many finished runs stay on screen.
const recentLimit = 8

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	skipStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress display in run mode. Build mode prints
// directly and needs no program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeRun {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(newRunModel(), tea.WithOutput(t.output), tea.WithContext(ctx))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("Progress display stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the progress display and waits for it to restore the terminal.
func (t *TUI) Close(_ context.Context) {
	program, done := t.current()
	if program == nil {
		return
	}

	program.Quit()
	<-done

	t.mu.Lock()
	t.program = nil
	t.done = nil
	t.mu.Unlock()
}

// Wait blocks until the display finished rendering the summary or ctx ends.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.current()
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (t *TUI) current() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) send(msg tea.Msg) {
	if program, _ := t.current(); program != nil {
		program.Send(msg)
	}
}

// DisplayBuild prints the written run files with coloured states.
func (t *TUI) DisplayBuild(ctx context.Context, changes []RunFileChange, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		_, _ = fmt.Fprintln(t.output, failStyle.Render("build error: "+err.Error()))
		return err
	}

	_, writeErr := fmt.Fprint(t.output, renderBuildView(changes))

	return writeErr
}

func renderBuildView(changes []RunFileChange) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wepprunner build") + "\n\n")

	changed := 0

	for _, change := range changes {
		state := skipStyle.Render("unchanged")

		switch {
		case change.Created:
			state = okStyle.Render("created")
			changed++
		case change.Diff != "":
			state = okStyle.Render("updated")
			changed++
		}

		fmt.Fprintf(&b, "  %-10s %s  %s\n", change.Scope, change.Path, state)
	}

	b.WriteString("\n" + summaryStyle.Render(fmt.Sprintf("%d run file(s), %d changed", len(changes), changed)) + "\n")

	return b.String()
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(ctx context.Context, parallel int, total int) {
	if ctx.Err() != nil {
		return
	}

	t.send(concurrencyMsg{parallel: parallel, total: total})
}

// DisplayStartingRun marks run as in flight.
func (t *TUI) DisplayStartingRun(ctx context.Context, run m.RunFile) {
	if ctx.Err() != nil {
		return
	}

	t.send(runStartedMsg{name: run.Name(), scope: run.Scope()})
}

// DisplayCompletedRun records the outcome of one run.
func (t *TUI) DisplayCompletedRun(ctx context.Context, result m.SimulationResult) {
	if ctx.Err() != nil {
		return
	}

	t.send(runFinishedMsg{result: result})
}

// DisplaySummary shows the final counts and ends the display.
func (t *TUI) DisplaySummary(ctx context.Context, results []m.SimulationResult) {
	if ctx.Err() != nil {
		return
	}

	t.send(summaryMsg{counts: CountResults(results), total: len(results)})
}

type concurrencyMsg struct {
	parallel int
	total    int
}

type runStartedMsg struct {
	name  string
	scope m.Scope
}

type runFinishedMsg struct {
	result m.SimulationResult
}

type summaryMsg struct {
	counts Counts
	total  int
}

// runModel is the Bubble Tea model of a simulation batch in flight.
type runModel struct {
	spinner  spinner.Model
	progress progress.Model
	parallel int
	total    int
	running  map[string]m.Scope
	recent   []m.SimulationResult
	counts   Counts
	done     bool
	quitting bool
	started  time.Time
}

func newRunModel() runModel {
	return runModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		running:  map[string]m.Scope{},
		started:  time.Now(),
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		//nolint:exhaustive // We only handle quit keys
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			rm.quitting = true
			return rm, tea.Quit
		default:
		}

		if msg.String() == "q" {
			rm.quitting = true
			return rm, tea.Quit
		}

		return rm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd

	case concurrencyMsg:
		rm.parallel = msg.parallel
		rm.total = msg.total

		return rm, nil

	case runStartedMsg:
		rm.running[msg.name] = msg.scope
		return rm, nil

	case runFinishedMsg:
		return rm.finish(msg.result), nil

	case summaryMsg:
		rm.counts = msg.counts
		rm.total = msg.total
		rm.done = true

		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) finish(result m.SimulationResult) runModel {
	delete(rm.running, result.RunName)

	switch result.Status {
	case m.StatusSuccess:
		rm.counts.Succeeded++
	case m.StatusFailure:
		rm.counts.Failed++
	case m.StatusSkipped:
		rm.counts.Skipped++
	}

	rm.recent = append(rm.recent, result)
	if len(rm.recent) > recentLimit {
		rm.recent = rm.recent[len(rm.recent)-recentLimit:]
	}

	return rm
}

func (rm runModel) finished() int {
	return rm.counts.Succeeded + rm.counts.Failed + rm.counts.Skipped
}

func (rm runModel) percent() float64 {
	if rm.total == 0 {
		return 0
	}

	return float64(rm.finished()) / float64(rm.total)
}

func (rm runModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wepprunner") + "\n\n")
	fmt.Fprintf(&b, "  %s %d/%d", rm.progress.ViewAs(rm.percent()), rm.finished(), rm.total)

	if rm.parallel > 0 {
		fmt.Fprintf(&b, "  (%d worker(s))", rm.parallel)
	}

	b.WriteString("\n\n")

	names := make([]string, 0, len(rm.running))
	for name := range rm.running {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(&b, "  %s %s %s\n", rm.spinner.View(), name, skipStyle.Render(string(rm.running[name])))
	}

	for _, r := range rm.recent {
		b.WriteString("  " + resultLine(r) + "\n")
	}

	if rm.done {
		b.WriteString("\n" + summaryStyle.Render(fmt.Sprintf("  %d ok, %d failed, %d skipped in %s",
			rm.counts.Succeeded, rm.counts.Failed, rm.counts.Skipped,
			time.Since(rm.started).Round(time.Second))) + "\n")
	} else if !rm.quitting {
		b.WriteString("\n" + helpStyle.Render("  q: hide progress") + "\n")
	}

	return b.String()
}

func resultLine(r m.SimulationResult) string {
	switch r.Status {
	case m.StatusSuccess:
		return okStyle.Render("✓ "+r.RunName) + skipStyle.Render(" "+r.Elapsed.Round(time.Millisecond).String())
	case m.StatusFailure:
		return failStyle.Render(fmt.Sprintf("✗ %s (exit %d, see %s)", r.RunName, r.ExitCode, r.Log))
	default:
		return skipStyle.Render("- " + r.RunName + " skipped")
	}
}
