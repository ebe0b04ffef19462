// Package favorites keeps the user's saved article ids. Storage is
// best-effort: every operation degrades to a no-op, false, or an empty
// result when the underlying store misbehaves.
package favorites

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/dloza02/dlo-creative-lab/internal/store"
)

const key = store.Namespace + "favorites"

// Record is one saved article id with the time it was saved.
type Record struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"savedAt"`
}

type Store struct {
	kv  store.KV
	now func() time.Time
}

func New(kv store.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Add saves the id. Returns false when the id was already present or the
// write failed; adding twice never produces a duplicate record.
func (s *Store) Add(id string) bool {
	records := s.List()
	for _, r := range records {
		if r.ID == id {
			return false
		}
	}
	records = append(records, Record{ID: id, SavedAt: s.now()})
	return s.save(records)
}

// Remove drops the id if present. Absence is a no-op.
func (s *Store) Remove(id string) {
	records := s.List()
	filtered := lo.Filter(records, func(r Record, _ int) bool {
		return r.ID != id
	})
	if len(filtered) == len(records) {
		return
	}
	s.save(filtered)
}

// List returns the saved records in insertion order. Unreadable storage
// reads as an empty set.
func (s *Store) List() []Record {
	data, ok := s.kv.Get(key)
	if !ok {
		return nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.WithError(err).Warn("favorites unreadable, treating as empty")
		return nil
	}
	return records
}

// Contains reports whether the id is saved.
func (s *Store) Contains(id string) bool {
	_, found := lo.Find(s.List(), func(r Record) bool { return r.ID == id })
	return found
}

// IDs returns the saved ids as a lookup set.
func (s *Store) IDs() map[string]bool {
	ids := make(map[string]bool)
	for _, r := range s.List() {
		ids[r.ID] = true
	}
	return ids
}

// Clear removes the whole collection.
func (s *Store) Clear() {
	s.kv.Delete(key)
}

func (s *Store) save(records []Record) bool {
	data, err := json.Marshal(records)
	if err != nil {
		log.WithError(err).Warn("favorites encode failed")
		return false
	}
	if err := s.kv.Set(key, data); err != nil {
		log.WithError(err).Warn("favorites write failed")
		return false
	}
	return true
}
