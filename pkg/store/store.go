// Package store is the key/value persistence surface behind the recent-search
// and backtest-history ledgers. Values are whole JSON documents read and
// written in one piece; callers that receive ErrNotFound fall back to their
// zero state instead of failing.
package store

import "errors"

// Fixed keys used by the application ledgers.
const (
	KeyRecentSearches  = "recent_searches"
	KeyBacktestHistory = "backtest_history"
)

// ErrNotFound is returned when a key is absent or its stored payload cannot
// be decoded. Callers treat both the same way: start from the default.
var ErrNotFound = errors.New("store: key not found")

// Store reads and writes whole values under string keys.
type Store interface {
	// Get decodes the value stored under key into into, which must be a
	// pointer. Returns ErrNotFound when the key is absent or undecodable.
	Get(key string, into any) error

	// Set encodes value and stores it under key, replacing any prior value.
	Set(key string, value any) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
