// Package catalog holds the fixed security directory and answers text
// queries against it. The catalog is seeded at startup and never mutated;
// every lookup is a pure read.
package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested symbol is not in the catalog.
var ErrNotFound = errors.New("catalog: symbol not found")

// Security describes one tradable instrument: identity, last-known market
// snapshot and static fundamentals.
type Security struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Sector        string          `json:"sector"`
	Industry      string          `json:"industry"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent float64         `json:"changePercent"`
	Volume        int64           `json:"volume"`
	Description   string          `json:"description"`
	LastUpdated   time.Time       `json:"lastUpdated"`

	// Static fundamentals.
	MarketCap string          `json:"marketCap"`
	PE        float64         `json:"pe"`
	EPS       float64         `json:"eps"`
	High52W   decimal.Decimal `json:"high52w"`
	Low52W    decimal.Decimal `json:"low52w"`
	Dividend  decimal.Decimal `json:"dividend"`
	Beta      float64         `json:"beta"`
}

// All returns the securities in declaration order. The returned slice is a
// copy; callers may reorder it freely.
func All() []Security {
	out := make([]Security, len(securities))
	copy(out, securities)
	return out
}

// Search returns every security whose symbol, name, sector or industry
// contains the query as a case-insensitive substring. A blank query matches
// nothing. Results keep catalog declaration order; the catalog is small
// enough that the full scan is the index.
func Search(query string) []Security {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Security
	for _, s := range securities {
		if strings.Contains(strings.ToLower(s.Symbol), q) ||
			strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Sector), q) ||
			strings.Contains(strings.ToLower(s.Industry), q) {
			out = append(out, s)
		}
	}
	return out
}

// GetBySymbol looks up a security by its symbol, ignoring case. Only the
// symbol key participates in the match.
func GetBySymbol(symbol string) (Security, error) {
	key := strings.ToUpper(strings.TrimSpace(symbol))
	for _, s := range securities {
		if s.Symbol == key {
			return s, nil
		}
	}
	return Security{}, ErrNotFound
}
