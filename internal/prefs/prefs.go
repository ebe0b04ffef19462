// Package prefs stores the single user-preferences record.
package prefs

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dloza02/dlo-creative-lab/internal/store"
)

const key = store.Namespace + "preferences"

// Preferences is the singleton persisted between sessions.
type Preferences struct {
	LastVisit        *time.Time `json:"lastVisit"`
	SelectedCategory string     `json:"selectedCategory"`
}

type Store struct {
	kv  store.KV
	now func() time.Time
}

func New(kv store.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Load returns the stored preferences, or the zero value when absent or
// unreadable.
func (s *Store) Load() Preferences {
	data, ok := s.kv.Get(key)
	if !ok {
		return Preferences{}
	}
	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		log.WithError(err).Warn("preferences unreadable, using defaults")
		return Preferences{}
	}
	return p
}

// Save persists the record; failures are logged and swallowed.
func (s *Store) Save(p Preferences) {
	data, err := json.Marshal(p)
	if err != nil {
		log.WithError(err).Warn("preferences encode failed")
		return
	}
	if err := s.kv.Set(key, data); err != nil {
		log.WithError(err).Warn("preferences write failed")
	}
}

// TouchLastVisit stamps the current time, keeping other fields.
func (s *Store) TouchLastVisit() {
	p := s.Load()
	now := s.now()
	p.LastVisit = &now
	s.Save(p)
}
