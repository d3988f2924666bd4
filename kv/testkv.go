package kv

import "testing"

// NewTestStore creates a fresh in-memory key-value store with the schema
// applied.
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}

	t.Cleanup(func() { store.Close() })

	return store
}
