package backup

import (
	"os"
	"path/filepath"
	"testing"

	"shopcore/internal/kv"
)

func TestWriteSnapshot_PublishesManifest(t *testing.T) {
	dir := t.TempDir()
	store := kv.NewMemoryStore()
	_ = store.Set("cart_items", `[{"id":1,"quantity":2}]`)
	_ = store.Set("seller_inventory", `[]`)

	snap := NewSnapshotter(dir)
	if err := snap.WriteSnapshot("snap-1", store); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "snap-1", "state.json")); err != nil {
		t.Fatalf("state.json missing: %v", err)
	}
	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if m.SnapshotID != "snap-1" || m.KeyCount != 2 {
		t.Fatalf("unexpected manifest: %+v", m)
	}
}

func TestRestoreLatest_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := kv.NewMemoryStore()
	_ = src.Set("cart_items", `[{"id":1}]`)
	_ = src.Set("orders_jane@example.com", `[]`)

	snap := NewSnapshotter(dir)
	if err := snap.WriteSnapshot("snap-1", src); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	dst := kv.NewMemoryStore()
	_ = dst.Set("stale", "x")
	m, err := NewRestorer(dir).RestoreLatest(dst)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if m.SnapshotID != "snap-1" {
		t.Fatalf("restored wrong snapshot: %+v", m)
	}

	if _, ok, _ := dst.Get("stale"); ok {
		t.Fatalf("restore must drop keys not in the snapshot")
	}
	v, ok, _ := dst.Get("cart_items")
	if !ok || v != `[{"id":1}]` {
		t.Fatalf("cart not restored: %q %v", v, ok)
	}
}

func TestRestoreLatest_NoManifest(t *testing.T) {
	if _, err := NewRestorer(t.TempDir()).RestoreLatest(kv.NewMemoryStore()); err == nil {
		t.Fatalf("expected error when no manifest exists")
	}
}
