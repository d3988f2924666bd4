package kv

import (
	"context"
	"path/filepath"
	"testing"
)

func TestGetMissingKey(t *testing.T) {
	store := NewTestStore(t)

	_, ok, err := store.Get(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected ok=false for a key that was never set")
	}
}

func TestSetAndGet(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "greeting", "hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := store.Get(ctx, "greeting")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if value != "hello" {
		t.Errorf("expected %q, got %q", "hello", value)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	store.Set(ctx, "k", "first")
	if err := store.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, _, _ := store.Get(ctx, "k")
	if value != "second" {
		t.Errorf("expected %q, got %q", "second", value)
	}
}

func TestValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.sqlite3")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Set(ctx, "k", "persisted"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if !ok || value != "persisted" {
		t.Errorf("expected persisted value, got %q (ok=%v)", value, ok)
	}
}
