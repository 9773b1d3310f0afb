package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

// File persists one pretty-printed JSON document per key under a data
// directory. A payload that fails to decode is first run through jsonrepair
// (truncated or hand-edited files are common enough to be worth a rescue
// attempt); if it still will not decode it is treated as absent, never as a
// fatal condition.
type File struct {
	dir    string
	logger *zap.Logger
}

// NewFile creates the data directory if needed and returns a store rooted
// there.
func NewFile(dir string, logger *zap.Logger) (*File, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &File{dir: dir, logger: logger}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string, into any) error {
	raw, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		f.logger.Warn("state file unreadable", zap.String("key", key), zap.Error(err))
		return ErrNotFound
	}

	if err := json.Unmarshal(raw, into); err == nil {
		return nil
	}

	// Corrupt payload: try to repair before falling back to empty state.
	repaired, err := jsonrepair.JSONRepair(string(raw))
	if err != nil {
		f.logger.Warn("state file corrupt, discarding", zap.String("key", key), zap.Error(err))
		return ErrNotFound
	}
	if err := json.Unmarshal([]byte(repaired), into); err != nil {
		f.logger.Warn("state file corrupt after repair, discarding", zap.String("key", key), zap.Error(err))
		return ErrNotFound
	}
	f.logger.Info("state file repaired", zap.String("key", key))
	return nil
}

func (f *File) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	prettified := pretty.Pretty(raw)
	if err := os.WriteFile(f.path(key), prettified, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (f *File) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
