package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFile(t *testing.T) *File {
	t.Helper()
	f, err := NewFile(t.TempDir(), nil)
	require.NoError(t, err)
	return f
}

func TestFileRoundTrip(t *testing.T) {
	f := newTestFile(t)

	in := []string{"AAPL", "TSLA"}
	require.NoError(t, f.Set(KeyRecentSearches, in))

	var out []string
	require.NoError(t, f.Get(KeyRecentSearches, &out))
	assert.Equal(t, in, out)
}

func TestFileMissingKey(t *testing.T) {
	f := newTestFile(t)

	var out []string
	err := f.Get("never_written", &out)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileWritesPrettyJSON(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir, nil)
	require.NoError(t, err)

	require.NoError(t, f.Set("k", map[string]int{"a": 1, "b": 2}))
	raw, err := os.ReadFile(filepath.Join(dir, "k.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n")
}

func TestFileRepairsSloppyJSON(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir, nil)
	require.NoError(t, err)

	// Trailing comma: invalid for encoding/json, recoverable by jsonrepair.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte(`["AAPL", "TSLA", ]`), 0o644))

	var out []string
	require.NoError(t, f.Get("k", &out))
	assert.Equal(t, []string{"AAPL", "TSLA"}, out)
}

func TestFileCorruptBeyondRepairFallsBack(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir, nil)
	require.NoError(t, err)

	// Valid JSON of the wrong shape: repair succeeds, decode still fails.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte(`{"a": 1}`), 0o644))

	var out []string
	err = f.Get("k", &out)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileDelete(t *testing.T) {
	f := newTestFile(t)

	require.NoError(t, f.Set("k", 42))
	require.NoError(t, f.Delete("k"))

	var out int
	assert.True(t, errors.Is(f.Get("k", &out), ErrNotFound))

	// Deleting again is not an error.
	assert.NoError(t, f.Delete("k"))
}
