// Package cache persists the processed article collection for one hour so
// repeated launches inside that window skip the network entirely.
package cache

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dloza02/dlo-creative-lab/internal/store"
)

// TTL is the validity window of a cached collection.
const TTL = time.Hour

const key = store.Namespace + "cache"

// Store reads and writes the single cache entry. The zero value is not
// usable; construct with New.
type Store struct {
	kv  store.KV
	now func() time.Time
}

func New(kv store.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Put replaces the cached collection wholesale. A storage failure evicts
// any prior entry so a stale collection can never outlive its window, and
// is reported back without being treated as fatal by callers.
func (s *Store) Put(articles []Article) error {
	captured := s.now()
	entry := Entry{
		Articles:   articles,
		CapturedAt: captured,
		ExpiresAt:  captured.Add(TTL),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		s.kv.Delete(key)
		log.WithError(err).Warn("cache encode failed, entry evicted")
		return err
	}
	if err := s.kv.Set(key, data); err != nil {
		s.kv.Delete(key)
		log.WithError(err).Warn("cache write failed, entry evicted")
		return err
	}
	return nil
}

// Get returns the cached collection while it is still valid. Expired or
// unreadable entries are evicted; absence is an ordinary outcome, not an
// error.
func (s *Store) Get() ([]Article, bool) {
	data, ok := s.kv.Get(key)
	if !ok {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		s.kv.Delete(key)
		log.WithError(err).Warn("cache entry unreadable, evicted")
		return nil, false
	}

	if !s.now().Before(entry.ExpiresAt) {
		s.kv.Delete(key)
		return nil, false
	}
	return entry.Articles, true
}

// Clear removes the entry unconditionally.
func (s *Store) Clear() {
	s.kv.Delete(key)
}
