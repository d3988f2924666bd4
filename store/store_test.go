package store

import (
	"context"
	"reflect"
	"testing"

	"quickshelf/kv"
	"quickshelf/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	itemStore := New(kv.NewTestStore(t))
	ctx := context.Background()

	items := []model.Item{
		{ID: "1", Title: "Headphones", Location: "Desk", Category: "Electronics", Image: "file:///photos/1.jpg"},
		{ID: "2", Title: "Passport", Location: "Drawer"},
	}

	if err := itemStore.Save(ctx, items); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := itemStore.Load(ctx)
	if !reflect.DeepEqual(loaded, items) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", items, loaded)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	itemStore := New(kv.NewTestStore(t))

	items := itemStore.Load(context.Background())
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d items", len(items))
	}
}

func TestLoadCorruptSnapshot(t *testing.T) {
	kvStore := kv.NewTestStore(t)
	ctx := context.Background()

	// Write garbage directly under the items key.
	if err := kvStore.Set(ctx, "QUICKSHELF_ITEMS", "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	items := New(kvStore).Load(ctx)
	if len(items) != 0 {
		t.Errorf("expected corrupt snapshot to degrade to empty, got %d items", len(items))
	}
}

func TestSaveNilCollection(t *testing.T) {
	kvStore := kv.NewTestStore(t)
	itemStore := New(kvStore)
	ctx := context.Background()

	if err := itemStore.Save(ctx, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	value, ok, err := kvStore.Get(ctx, "QUICKSHELF_ITEMS")
	if err != nil || !ok {
		t.Fatalf("expected snapshot to exist, ok=%v err=%v", ok, err)
	}
	if value != "[]" {
		t.Errorf("expected empty array snapshot, got %q", value)
	}
}
