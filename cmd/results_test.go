package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
	"weppcloud.dev/pkg/wepprunner/pkg"
)

func writeJournal(t *testing.T, dir string, results ...m.SimulationResult) string {
	t.Helper()

	journal, err := pkg.CreateJournal[m.SimulationResult](dir)
	require.NoError(t, err)

	for _, result := range results {
		require.NoError(t, journal.Append(result))
	}

	require.NoError(t, journal.Close())

	return journal.Path()
}

func executeResults(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newResultsCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"results"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestResultsCmd_PrintsJournal(t *testing.T) {
	path := writeJournal(t, t.TempDir(),
		m.SimulationResult{RunName: "p1.run", Scope: m.ScopeHillslope, Status: m.StatusSuccess, Artifact: "runs/../output/H1.pass.dat", Elapsed: time.Second},
		m.SimulationResult{RunName: "pw0.run", Scope: m.ScopeWatershed, Status: m.StatusFailure, ExitCode: 2, Log: "runs/pw0.err"},
	)

	out, err := executeResults(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "p1.run")
	assert.Contains(t, out, "H1.pass.dat")
	assert.Contains(t, out, "pw0.run")
	assert.Contains(t, out, "runs/pw0.err")
}

func TestResultsCmd_NewestJournalInDir(t *testing.T) {
	dir := t.TempDir()

	older := writeJournal(t, dir, m.SimulationResult{RunName: "p1.run", Status: m.StatusFailure})
	newer := writeJournal(t, dir, m.SimulationResult{RunName: "p7.run", Status: m.StatusSuccess})

	hourAgo := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, hourAgo, hourAgo))

	out, err := executeResults(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, newer)
	assert.Contains(t, out, "p7.run")
	assert.NotContains(t, out, "p1.run")
}

func TestResultsCmd_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target func(t *testing.T) string
	}{
		{"missing journal", func(t *testing.T) string { return filepath.Join(t.TempDir(), "journal-missing.gob") }},
		{"dir without journals", func(t *testing.T) string { return t.TempDir() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeResults(t, tt.target(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "read journal")
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}
