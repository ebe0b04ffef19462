package favorites

import (
	"errors"
	"testing"

	"github.com/dloza02/dlo-creative-lab/internal/store"
)

func TestAddIsIdempotent(t *testing.T) {
	s := New(store.NewMemory())

	if !s.Add("x") {
		t.Fatal("first add should report newly added")
	}
	if s.Add("x") {
		t.Error("second add of same id should report not newly added")
	}

	records := s.List()
	if len(records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(records))
	}
	if records[0].ID != "x" {
		t.Errorf("unexpected record id %q", records[0].ID)
	}
	if records[0].SavedAt.IsZero() {
		t.Error("expected SavedAt to be set")
	}
}

func TestRemove(t *testing.T) {
	s := New(store.NewMemory())

	s.Add("x")
	s.Add("y")
	s.Remove("x")

	records := s.List()
	if len(records) != 1 || records[0].ID != "y" {
		t.Errorf("expected only y left, got %v", records)
	}

	// Removing a missing id is a no-op.
	s.Remove("gone")
	if len(s.List()) != 1 {
		t.Error("remove of missing id must not change the store")
	}
}

func TestAddRemoveLeavesEmpty(t *testing.T) {
	s := New(store.NewMemory())

	s.Add("x")
	s.Add("x")
	s.Remove("x")

	if got := s.List(); len(got) != 0 {
		t.Errorf("expected empty store, got %v", got)
	}
}

func TestListInsertionOrder(t *testing.T) {
	s := New(store.NewMemory())

	for _, id := range []string{"c", "a", "b"} {
		s.Add(id)
	}

	records := s.List()
	want := []string{"c", "a", "b"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, id := range want {
		if records[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, records[i].ID, id)
		}
	}
}

func TestContains(t *testing.T) {
	s := New(store.NewMemory())

	s.Add("x")
	if !s.Contains("x") {
		t.Error("expected Contains to find saved id")
	}
	if s.Contains("y") {
		t.Error("expected Contains to miss unsaved id")
	}
}

func TestClear(t *testing.T) {
	s := New(store.NewMemory())

	s.Add("x")
	s.Add("y")
	s.Clear()

	if len(s.List()) != 0 {
		t.Error("expected empty store after clear")
	}
}

func TestStorageFailureDegrades(t *testing.T) {
	kv := store.NewMemory()
	kv.FailWrites = errors.New("storage disabled")
	s := New(kv)

	if s.Add("x") {
		t.Error("expected add to report failure when storage is down")
	}
	if len(s.List()) != 0 {
		t.Error("expected empty list when nothing could be written")
	}
	if s.Contains("x") {
		t.Error("expected Contains to be false when nothing could be written")
	}
}

func TestCorruptDataReadsAsEmpty(t *testing.T) {
	kv := store.NewMemory()
	kv.Set(store.Namespace+"favorites", []byte("{{nope"))
	s := New(kv)

	if got := s.List(); len(got) != 0 {
		t.Errorf("expected corrupt favorites to read as empty, got %v", got)
	}
}
