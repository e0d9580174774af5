package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// SimulatorRequest describes one invocation of the simulator binary.
type SimulatorRequest struct {
	// Dir is the working directory, the project's runs directory.
	Dir m.Path
	// Stdin is the run file text.
	Stdin []byte
	// OnLine, when set, receives every complete stdout line as it is written.
	OnLine func(line string)
}

// SimulatorOutput is what the simulator left behind.
type SimulatorOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// SimulatorAdapter abstracts running the external simulator.
type SimulatorAdapter interface {
	// Run starts the simulator and waits for it. A non-zero exit status is
	// reported through SimulatorOutput, not as an error. Errors are reserved
	// for processes that could not be started or were cancelled.
	Run(ctx context.Context, req SimulatorRequest) (SimulatorOutput, error)
}

// LocalSimulatorAdapter runs a simulator binary with os/exec.
type LocalSimulatorAdapter struct {
	binary string
}

// NewLocalSimulatorAdapter constructs a LocalSimulatorAdapter for binary.
func NewLocalSimulatorAdapter(binary string) *LocalSimulatorAdapter {
	return &LocalSimulatorAdapter{binary: binary}
}

// Binary returns the path of the executable.
func (a *LocalSimulatorAdapter) Binary() string {
	return a.binary
}

// Run feeds req.Stdin to the simulator with req.Dir as working directory.
func (a *LocalSimulatorAdapter) Run(ctx context.Context, req SimulatorRequest) (SimulatorOutput, error) {
	// #nosec G204 - the binary is chosen by the operator
	cmd := exec.CommandContext(ctx, a.binary)
	cmd.Dir = string(req.Dir)
	cmd.Stdin = bytes.NewReader(req.Stdin)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	var lines *lineWriter
	if req.OnLine != nil {
		lines = &lineWriter{emit: req.OnLine}
		cmd.Stdout = io.MultiWriter(&stdout, lines)
	}

	err := cmd.Run()

	if lines != nil {
		lines.Flush()
	}

	out := SimulatorOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, fmt.Errorf("simulator %s: %w", a.binary, ctxErr)
	}

	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}

	return out, fmt.Errorf("start simulator %s: %w", a.binary, err)
}

// lineWriter splits a byte stream into lines and hands each one to emit.
type lineWriter struct {
	mu      sync.Mutex
	pending []byte
	emit    func(string)
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)

	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}

		w.emit(strings.TrimRight(string(w.pending[:i]), "\r"))
		w.pending = w.pending[i+1:]
	}

	return len(p), nil
}

// Flush emits a trailing line without a newline.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pending) > 0 {
		w.emit(strings.TrimRight(string(w.pending), "\r"))
		w.pending = nil
	}
}
