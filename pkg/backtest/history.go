package backtest

import (
	"errors"

	"go.uber.org/zap"

	"github.com/sandeep-jaiswar/stockscope/pkg/store"
)

// HistoryLimit caps the number of retained reports.
const HistoryLimit = 10

// History is the capped, newest-first ledger of generated reports. Like the
// recent-search ledger, it is read-modify-written whole through the store.
type History struct {
	store  store.Store
	logger *zap.Logger
}

// NewHistory returns a history over s. A nil logger becomes a nop logger.
func NewHistory(s store.Store, logger *zap.Logger) *History {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &History{store: s, logger: logger}
}

// List returns the retained reports, newest first. Missing or corrupt
// persisted state yields an empty history.
func (h *History) List() []Report {
	var reports []Report
	if err := h.store.Get(store.KeyBacktestHistory, &reports); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.logger.Warn("reading backtest history", zap.Error(err))
		}
		return nil
	}
	if len(reports) > HistoryLimit {
		reports = reports[:HistoryLimit]
	}
	return reports
}

// Record prepends r and truncates to the limit, evicting the oldest entry.
func (h *History) Record(r Report) error {
	current := h.List()
	updated := make([]Report, 0, len(current)+1)
	updated = append(updated, r)
	updated = append(updated, current...)
	if len(updated) > HistoryLimit {
		updated = updated[:HistoryLimit]
	}
	if err := h.store.Set(store.KeyBacktestHistory, updated); err != nil {
		h.logger.Warn("saving backtest history", zap.String("id", r.ID), zap.Error(err))
		return err
	}
	return nil
}

// Clear empties the history.
func (h *History) Clear() {
	if err := h.store.Set(store.KeyBacktestHistory, []Report{}); err != nil {
		h.logger.Warn("clearing backtest history", zap.Error(err))
	}
}
