// Package recents tracks which symbols the user most recently navigated to,
// for display as quick-access chips on the search view.
package recents

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/sandeep-jaiswar/stockscope/pkg/store"
)

// Limit caps the ledger length.
const Limit = 5

// Ledger is a bounded, de-duplicated, most-recent-first list of symbols.
// State lives entirely in the backing store and is read-modify-written as a
// whole on every mutation.
type Ledger struct {
	store  store.Store
	logger *zap.Logger
}

// New returns a ledger over s. A nil logger is replaced with a nop logger.
func New(s store.Store, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{store: s, logger: logger}
}

// List returns the recorded symbols, newest first. Missing or corrupt
// persisted state yields an empty list.
func (l *Ledger) List() []string {
	var symbols []string
	if err := l.store.Get(store.KeyRecentSearches, &symbols); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.logger.Warn("reading recent searches", zap.Error(err))
		}
		return nil
	}
	if len(symbols) > Limit {
		symbols = symbols[:Limit]
	}
	return symbols
}

// Record moves symbol to the front of the ledger, removing any earlier
// occurrence, and truncates to the limit. Recording the same symbol twice in
// a row is a no-op with respect to ordering.
func (l *Ledger) Record(symbol string) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == "" {
		return
	}

	current := l.List()
	updated := make([]string, 0, len(current)+1)
	updated = append(updated, sym)
	for _, s := range current {
		if s != sym {
			updated = append(updated, s)
		}
	}
	if len(updated) > Limit {
		updated = updated[:Limit]
	}

	if err := l.store.Set(store.KeyRecentSearches, updated); err != nil {
		l.logger.Warn("saving recent searches", zap.String("symbol", sym), zap.Error(err))
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	if err := l.store.Set(store.KeyRecentSearches, []string{}); err != nil {
		l.logger.Warn("clearing recent searches", zap.Error(err))
	}
}
