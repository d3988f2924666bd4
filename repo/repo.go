// Package repo holds the in-memory item collection and the mutation
// operations that keep it and the durable snapshot consistent.
package repo

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"quickshelf/model"
	"quickshelf/store"
)

// Repository is the single authoritative holder of the item collection.
// Each mutating operation updates the in-memory collection and then writes
// the full snapshot through to the store. The mutex is held across the
// persistence write, so mutations are applied and persisted strictly in
// invocation order and never race against a stale snapshot.
//
// A single-slot undo buffer remembers the most recently deleted item; only
// that one deletion can be undone.
type Repository struct {
	mu          sync.Mutex
	store       *store.ItemStore
	items       []model.Item
	lastDeleted *model.Item
}

// New returns an empty repository. Call Reload to populate it from storage.
func New(s *store.ItemStore) *Repository {
	return &Repository{store: s}
}

// Reload replaces the in-memory collection with the stored snapshot. The
// list screen calls this when it regains focus, to pick up changes made on
// other screens; there is no push notification between screens.
func (r *Repository) Reload(ctx context.Context) {
	items := r.store.Load(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
}

// Items returns a copy of the current collection in display order.
func (r *Repository) Items() []model.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]model.Item, len(r.items))
	copy(items, r.items)
	return items
}

// Find returns the item with the given id, if present.
func (r *Repository) Find(id string) (model.Item, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.Item{}, false
}

// Add validates the draft, assigns a fresh id, appends the item to the end
// of the collection, and persists. An empty title (after trimming) is
// rejected without mutating anything.
//
// If persistence fails, the returned item is still valid and in the
// collection; the error wraps ErrNotDurable.
func (r *Repository) Add(ctx context.Context, draft model.Draft) (model.Item, error) {
	title := model.TrimTitle(draft.Title)
	if title == "" {
		return model.Item{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	item := model.Item{
		ID:       uuid.NewString(),
		Title:    title,
		Location: draft.Location,
		Category: draft.Category,
		Image:    draft.Image,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	if err := r.persist(ctx); err != nil {
		return item, err
	}
	return item, nil
}

// Edit applies a partial update to the item with the given id, preserving
// its position in the collection, and persists. The id itself never changes.
// A patch that would leave the title empty is rejected without mutating.
func (r *Repository) Edit(ctx context.Context, id string, patch model.Patch) (model.Item, error) {
	if patch.Title != nil && model.TrimTitle(*patch.Title) == "" {
		return model.Item{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Item{}, fmt.Errorf("editing item %s: %w", id, ErrNotFound)
	}

	item := &r.items[i]
	if patch.Title != nil {
		item.Title = model.TrimTitle(*patch.Title)
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}

	if err := r.persist(ctx); err != nil {
		return *item, err
	}
	return *item, nil
}

// Delete removes the item with the given id, remembers it in the undo
// buffer, and persists the shorter collection. The removed item is returned
// so the caller can offer an undo affordance.
func (r *Repository) Delete(ctx context.Context, id string) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Item{}, fmt.Errorf("deleting item %s: %w", id, ErrNotFound)
	}

	removed := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)
	r.lastDeleted = &removed

	if err := r.persist(ctx); err != nil {
		return removed, err
	}
	return removed, nil
}

// UndoDelete restores the most recently deleted item and persists. The item
// is appended to the end of the collection, not reinserted at its original
// position. Returns false if there is nothing to undo; the buffer holds at
// most one item and is cleared on use.
func (r *Repository) UndoDelete(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastDeleted == nil {
		return false, nil
	}

	r.items = append(r.items, *r.lastDeleted)
	r.lastDeleted = nil

	if err := r.persist(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// Reorder rearranges the collection to match ids exactly and persists. The
// ids must be a permutation of the current collection's ids; anything else
// is rejected without mutating.
func (r *Repository) Reorder(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(ids) != len(r.items) {
		return &ValidationError{Field: "order", Reason: "id count does not match collection"}
	}

	byID := make(map[string]model.Item, len(r.items))
	for _, item := range r.items {
		byID[item.ID] = item
	}

	reordered := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return &ValidationError{Field: "order", Reason: fmt.Sprintf("unknown or duplicate id %s", id)}
		}
		delete(byID, id)
		reordered = append(reordered, item)
	}

	r.items = reordered
	return r.persist(ctx)
}

// persist writes the current collection through to the store. Callers must
// hold the mutex. A failed write is downgraded to a warning: the in-memory
// change stands, and the caller gets an error wrapping ErrNotDurable.
func (r *Repository) persist(ctx context.Context) error {
	if err := r.store.Save(ctx, r.items); err != nil {
		slog.Warn("failed to persist items", "error", err)
		return fmt.Errorf("%w: %v", ErrNotDurable, err)
	}
	return nil
}

// indexOf returns the position of the item with the given id, or -1.
// Callers must hold the mutex.
func (r *Repository) indexOf(id string) int {
	for i, item := range r.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
