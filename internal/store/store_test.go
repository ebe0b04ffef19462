package store

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *SQLite {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetAndGet(t *testing.T) {
	s := testStore(t)

	if err := s.Set(Namespace+"cache", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok := s.Get(Namespace + "cache")
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(got) != `{"a":1}` {
		t.Errorf("got %q, want %q", got, `{"a":1}`)
	}
}

func TestGetMissing(t *testing.T) {
	s := testStore(t)

	if _, ok := s.Get(Namespace + "nope"); ok {
		t.Error("expected missing key to report absence")
	}
}

func TestSetOverwrites(t *testing.T) {
	s := testStore(t)

	if err := s.Set(Namespace+"k", []byte("old")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(Namespace+"k", []byte("new")); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, _ := s.Get(Namespace + "k")
	if string(got) != "new" {
		t.Errorf("expected last write to win, got %q", got)
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)

	s.Set(Namespace+"k", []byte("v"))
	s.Delete(Namespace + "k")

	if _, ok := s.Get(Namespace + "k"); ok {
		t.Error("expected deleted key to be absent")
	}

	// Deleting a missing key is a no-op.
	s.Delete(Namespace + "k")
}

func TestKeysPrefix(t *testing.T) {
	s := testStore(t)

	s.Set(Namespace+"cache", []byte("1"))
	s.Set(Namespace+"favorites", []byte("2"))
	s.Set("other:thing", []byte("3"))

	keys := s.Keys(Namespace)
	if len(keys) != 2 {
		t.Fatalf("expected 2 namespaced keys, got %d: %v", len(keys), keys)
	}
	if keys[0] != Namespace+"cache" || keys[1] != Namespace+"favorites" {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestClearNamespace(t *testing.T) {
	s := testStore(t)

	s.Set(Namespace+"cache", []byte("1"))
	s.Set(Namespace+"preferences", []byte("2"))
	s.Set("other:thing", []byte("3"))

	s.ClearNamespace()

	if got := s.Keys(Namespace); len(got) != 0 {
		t.Errorf("expected empty namespace after clear, got %v", got)
	}
	if _, ok := s.Get("other:thing"); !ok {
		t.Error("clear must not touch keys outside the namespace")
	}
}

func TestMemoryKV(t *testing.T) {
	m := NewMemory()

	if err := m.Set("a", []byte("1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := m.Get("a")
	if !ok || string(got) != "1" {
		t.Errorf("get = %q, %v", got, ok)
	}

	m.Delete("a")
	if _, ok := m.Get("a"); ok {
		t.Error("expected deleted key to be absent")
	}
}
