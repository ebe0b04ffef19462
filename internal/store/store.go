// Package store provides the key-value persistence capability the rest of
// the application builds on. Values are opaque byte slices; callers own the
// encoding. Every key lives under the "creativelab:" namespace so a bulk
// clear never touches unrelated rows in a shared database file.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Namespace prefixes every persisted key.
const Namespace = "creativelab:"

// KV is the storage capability injected into the cache, favorites and
// preferences stores. Get treats unreadable data as absence.
type KV interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string)
	Keys(prefix string) []string
}

// SQLite is a KV backed by a single sqlite table.
type SQLite struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

// Open creates (if needed) and opens the database at dbPath.
func Open(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &SQLite{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func (s *SQLite) Get(key string) ([]byte, bool) {
	var value []byte
	err := s.readDB.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithField("key", key).WithError(err).Debug("kv read failed, treating as absent")
		}
		return nil, false
	}
	return value, true
}

func (s *SQLite) Set(key string, value []byte) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

func (s *SQLite) Delete(key string) {
	if _, err := s.writeDB.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		log.WithField("key", key).WithError(err).Warn("kv delete failed")
	}
}

func (s *SQLite) Keys(prefix string) []string {
	rows, err := s.readDB.Query("SELECT key FROM kv WHERE key LIKE ? ORDER BY key", prefix+"%")
	if err != nil {
		log.WithError(err).Debug("kv key scan failed")
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return keys
		}
		keys = append(keys, k)
	}
	return keys
}

// ClearNamespace removes every key under the application namespace.
func (s *SQLite) ClearNamespace() {
	if _, err := s.writeDB.Exec("DELETE FROM kv WHERE key LIKE ?", Namespace+"%"); err != nil {
		log.WithError(err).Warn("namespace clear failed")
	}
}
