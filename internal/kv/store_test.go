package kv

import (
	"errors"
	"testing"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, _ := s.Get("k"); ok {
		t.Fatalf("empty store should not have k")
	}
	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("unexpected get result: %q %v %v", v, ok, err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatalf("k should be gone after delete")
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("deleting absent key should be a no-op: %v", err)
	}
}

func TestBoundedMemoryStore_QuotaKeepsOldValue(t *testing.T) {
	s := NewBoundedMemoryStore(10)
	if err := s.Set("k", "small"); err != nil {
		t.Fatalf("set within quota: %v", err)
	}

	err := s.Set("k", "this value is far too large for the quota")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	v, ok, _ := s.Get("k")
	if !ok || v != "small" {
		t.Fatalf("failed write must leave prior value intact, got %q %v", v, ok)
	}
}

func TestPebbleStore_RoundTrip(t *testing.T) {
	s, err := NewPebbleStore(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, ok, _ := s.Get("cart_items"); ok {
		t.Fatalf("fresh store should be empty")
	}
	if err := s.Set("cart_items", `[{"id":1}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get("cart_items")
	if err != nil || !ok || v != `[{"id":1}]` {
		t.Fatalf("unexpected get: %q %v %v", v, ok, err)
	}
	if err := s.Delete("cart_items"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("cart_items"); ok {
		t.Fatalf("key should be gone")
	}
}

func TestPebbleStore_RangeAndReplaceAll(t *testing.T) {
	s, err := NewPebbleStore(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	_ = s.Set("a", "1")
	_ = s.Set("b", "2")

	if err := s.ReplaceAll(map[string]string{"c": "3"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got := map[string]string{}
	if err := s.Range(func(k, v string) error {
		got[k] = v
		return nil
	}); err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(got) != 1 || got["c"] != "3" {
		t.Fatalf("replace should drop old keys, got %+v", got)
	}
}

func TestBadgerStore_RoundTrip(t *testing.T) {
	s, err := NewBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Set("orders_jane@example.com", `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get("orders_jane@example.com")
	if err != nil || !ok || v != `[]` {
		t.Fatalf("unexpected get: %q %v %v", v, ok, err)
	}
	if _, ok, _ := s.Get("orders_other@example.com"); ok {
		t.Fatalf("different identity key must be disjoint")
	}
}
