package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Set("k", map[string]string{"a": "b"}))

	var out map[string]string
	require.NoError(t, m.Get("k", &out))
	assert.Equal(t, "b", out["a"])
}

func TestMemoryMissingKey(t *testing.T) {
	m := NewMemory()

	var out string
	assert.True(t, errors.Is(m.Get("k", &out), ErrNotFound))
}

func TestMemoryWrongShapeFallsBack(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("k", "just a string"))

	var out []string
	assert.True(t, errors.Is(m.Get("k", &out), ErrNotFound))
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("k", 1))
	require.NoError(t, m.Delete("k"))

	var out int
	assert.True(t, errors.Is(m.Get("k", &out), ErrNotFound))
	assert.NoError(t, m.Delete("k"))
}
