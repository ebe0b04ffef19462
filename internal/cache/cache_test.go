package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/dloza02/dlo-creative-lab/internal/store"
)

func sampleArticles() []Article {
	now := time.Now()
	return []Article{
		{ID: "aaa", Title: "Post A", Link: "https://a.com/1", Source: "A Com", Category: "ai-design-tools", Published: now.Add(-1 * time.Hour)},
		{ID: "bbb", Title: "Post B", Link: "https://b.com/2", Source: "B Com", Category: "industry-news", Published: now.Add(-2 * time.Hour)},
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := New(store.NewMemory())
	articles := sampleArticles()

	if err := s.Put(articles); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok := s.Get()
	if !ok {
		t.Fatal("expected cache hit right after put")
	}
	if len(got) != len(articles) {
		t.Fatalf("expected %d articles, got %d", len(articles), len(got))
	}
	for i := range got {
		if got[i].ID != articles[i].ID || got[i].Link != articles[i].Link {
			t.Errorf("article %d mismatch: got %+v", i, got[i])
		}
	}
}

func TestGetEmpty(t *testing.T) {
	s := New(store.NewMemory())

	if _, ok := s.Get(); ok {
		t.Error("expected no cache on a fresh store")
	}
}

func TestExpiryEvicts(t *testing.T) {
	kv := store.NewMemory()
	s := New(kv)

	now := time.Now()
	s.now = func() time.Time { return now }
	if err := s.Put(sampleArticles()); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Just inside the window.
	s.now = func() time.Time { return now.Add(TTL - time.Second) }
	if _, ok := s.Get(); !ok {
		t.Error("expected hit just inside the TTL window")
	}

	// At exactly the boundary the entry is invalid.
	s.now = func() time.Time { return now.Add(TTL) }
	if _, ok := s.Get(); ok {
		t.Error("expected miss at the TTL boundary")
	}

	// The expired read must have evicted the underlying entry.
	if _, ok := kv.Get(store.Namespace + "cache"); ok {
		t.Error("expected expired entry to be evicted from storage")
	}
}

func TestCorruptEntryTreatedAsAbsent(t *testing.T) {
	kv := store.NewMemory()
	kv.Set(store.Namespace+"cache", []byte("not json"))
	s := New(kv)

	if _, ok := s.Get(); ok {
		t.Error("expected corrupt entry to read as no cache")
	}
	if _, ok := kv.Get(store.Namespace + "cache"); ok {
		t.Error("expected corrupt entry to be evicted")
	}
}

func TestPutFailureEvictsPriorEntry(t *testing.T) {
	kv := store.NewMemory()
	s := New(kv)

	if err := s.Put(sampleArticles()); err != nil {
		t.Fatalf("put: %v", err)
	}

	kv.FailWrites = errors.New("quota exceeded")
	if err := s.Put(sampleArticles()); err == nil {
		t.Fatal("expected put to report the storage failure")
	}

	kv.FailWrites = nil
	if _, ok := s.Get(); ok {
		t.Error("expected prior entry to be evicted after a failed put")
	}
}

func TestClear(t *testing.T) {
	s := New(store.NewMemory())

	if err := s.Put(sampleArticles()); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Clear()
	if _, ok := s.Get(); ok {
		t.Error("expected miss after clear")
	}
}
