package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

func TestLocalProjectFSAdapter_Exists(t *testing.T) {
	fs := NewLocalProjectFSAdapter()
	dir := t.TempDir()
	file := filepath.Join(dir, "p1.sol")
	require.NoError(t, os.WriteFile(file, []byte("soil"), 0o644))

	ok, err := fs.Exists(m.Path(file))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fs.Exists(m.Path(filepath.Join(dir, "p2.sol")))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fs.Exists(m.Path(dir))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalProjectFSAdapter_WriteReadRemove(t *testing.T) {
	fs := NewLocalProjectFSAdapter()
	dir := fs.JoinPath(t.TempDir(), "output", "nested")

	require.NoError(t, fs.MkdirAll(dir))

	file := fs.JoinPath(string(dir), "H1.pass.dat")
	require.NoError(t, fs.WriteFile(file, []byte("pass"), 0o644))

	content, err := fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "pass", string(content))

	info, err := fs.FileInfo(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, fs.Remove(file))
	assert.NoFileExists(t, string(file))

	require.NoError(t, fs.Remove(file), "removing a missing file is not an error")
}

func TestLocalProjectFSAdapter_Diff(t *testing.T) {
	fs := NewLocalProjectFSAdapter()
	file := m.Path(filepath.Join(t.TempDir(), "p1.run"))

	t.Run("missing file diffs against nothing", func(t *testing.T) {
		diff, err := fs.Diff(file, []byte("m\ny\n"))
		require.NoError(t, err)
		assert.Contains(t, diff, "+m")
		assert.Contains(t, diff, "+y")
	})

	require.NoError(t, fs.WriteFile(file, []byte("m\ny\n1\n"), 0o644))

	t.Run("equal content", func(t *testing.T) {
		diff, err := fs.Diff(file, []byte("m\ny\n1\n"))
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("changed line", func(t *testing.T) {
		diff, err := fs.Diff(file, []byte("m\ny\n2\n"))
		require.NoError(t, err)
		assert.Contains(t, diff, "-1")
		assert.Contains(t, diff, "+2")
		assert.Contains(t, diff, string(file)+" (new)")
	})
}

func TestUnifiedDiff(t *testing.T) {
	diff, err := UnifiedDiff("p1.run", "a\nb\n", "a\nc\n")
	require.NoError(t, err)
	assert.Contains(t, diff, "--- p1.run")
	assert.Contains(t, diff, "+++ p1.run (new)")
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+c")
}
