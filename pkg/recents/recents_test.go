package recents

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeep-jaiswar/stockscope/pkg/store"
)

func TestRecordPromotesWithoutDuplicating(t *testing.T) {
	l := New(store.NewMemory(), nil)

	l.Record("AAPL")
	l.Record("TSLA")
	l.Record("AAPL")

	assert.Equal(t, []string{"AAPL", "TSLA"}, l.List())
}

func TestRecordRepeatedSymbolIsStable(t *testing.T) {
	l := New(store.NewMemory(), nil)

	l.Record("NVDA")
	l.Record("NVDA")
	l.Record("NVDA")

	assert.Equal(t, []string{"NVDA"}, l.List())
}

func TestRecordCapsAtLimit(t *testing.T) {
	l := New(store.NewMemory(), nil)

	for i := 0; i < Limit+2; i++ {
		l.Record(fmt.Sprintf("SYM%d", i))
	}

	got := l.List()
	require.Len(t, got, Limit)
	assert.Equal(t, fmt.Sprintf("SYM%d", Limit+1), got[0])
	assert.NotContains(t, got, "SYM0")
	assert.NotContains(t, got, "SYM1")
}

func TestRecordNormalizesSymbol(t *testing.T) {
	l := New(store.NewMemory(), nil)

	l.Record(" aapl ")
	l.Record("")
	l.Record("   ")

	assert.Equal(t, []string{"AAPL"}, l.List())
}

func TestClearSurvivesReload(t *testing.T) {
	s := store.NewMemory()

	l := New(s, nil)
	l.Record("AAPL")
	l.Record("TSLA")
	l.Clear()
	assert.Empty(t, l.List())

	// A fresh ledger over the same store sees the cleared state.
	reloaded := New(s, nil)
	assert.Empty(t, reloaded.List())
}

func TestPersistsAcrossInstances(t *testing.T) {
	s := store.NewMemory()

	New(s, nil).Record("MSFT")
	assert.Equal(t, []string{"MSFT"}, New(s, nil).List())
}

func TestCorruptStateFallsBackToEmpty(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(store.KeyRecentSearches, "not a list"))

	l := New(s, nil)
	assert.Empty(t, l.List())

	// The ledger stays usable after the fallback.
	l.Record("AAPL")
	assert.Equal(t, []string{"AAPL"}, l.List())
}
