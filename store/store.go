// Package store persists the full item collection as a single JSON snapshot
// in the key-value area.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"quickshelf/model"
)

// itemsKey is the storage slot holding the serialized collection.
const itemsKey = "QUICKSHELF_ITEMS"

// KV is the persistent key-value area the item store writes to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// ItemStore saves and loads the whole item collection. Every Save replaces
// the previous snapshot; there is no per-item persistence.
type ItemStore struct {
	kv KV
}

// New returns an ItemStore backed by the given key-value area.
func New(kv KV) *ItemStore {
	return &ItemStore{kv: kv}
}

// Save serializes the full collection and replaces the stored snapshot.
// A nil collection is stored as an empty array. On failure the previous
// snapshot remains intact and the error is returned to the caller.
func (s *ItemStore) Save(ctx context.Context, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}

	if err := s.kv.Set(ctx, itemsKey, string(data)); err != nil {
		return fmt.Errorf("saving items: %w", err)
	}
	return nil
}

// Load returns the stored collection. A missing, unreadable, or unparsable
// snapshot degrades to an empty collection: an unreadable store is
// indistinguishable from one that was never written, and must not stop the
// user from adding items. Failures are logged, not returned.
func (s *ItemStore) Load(ctx context.Context) []model.Item {
	value, ok, err := s.kv.Get(ctx, itemsKey)
	if err != nil {
		slog.Warn("failed to load items, starting empty", "error", err)
		return []model.Item{}
	}
	if !ok {
		return []model.Item{}
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		slog.Warn("stored items are corrupt, starting empty", "error", err)
		return []model.Item{}
	}
	if items == nil {
		items = []model.Item{}
	}
	return items
}
