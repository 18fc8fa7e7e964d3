// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: store/store.go
// Summary: SQLite-backed revision store for document autosave.
// Usage: The editor binary saves a revision after every committed edit
// and restores the latest one at startup.

package store

import (
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gridwell/gridwell/doc"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS revisions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created INTEGER NOT NULL,         -- UnixNano
    hash TEXT NOT NULL,               -- SHA-1 of body, integrity check
    body TEXT NOT NULL                -- document JSON
);

CREATE INDEX IF NOT EXISTS idx_revisions_created ON revisions(created);
`

// Revision is one stored document snapshot.
type Revision struct {
	ID      int64
	Created time.Time
	Hash    string
	Body    []byte
}

// RevisionStore persists timestamped, content-hashed document snapshots.
type RevisionStore struct {
	db  *sql.DB
	mu  sync.Mutex
	max int
}

// Open creates or opens the revision database at dbPath. maxRevisions
// bounds how many snapshots are kept; older ones are pruned on save
// (0 means unbounded).
func Open(dbPath string, maxRevisions int) (*RevisionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	dsn := dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := db.Exec(
		"INSERT INTO schema_version (version) SELECT ? WHERE NOT EXISTS (SELECT 1 FROM schema_version)",
		schemaVersion,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to record schema version: %w", err)
	}

	return &RevisionStore{db: db, max: maxRevisions}, nil
}

// Save writes a new revision of the document.
func (s *RevisionStore) Save(d *doc.Document) error {
	body, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	hasher := sha1.New()
	hasher.Write(body)
	hash := hex.EncodeToString(hasher.Sum(nil))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(
		"INSERT INTO revisions (created, hash, body) VALUES (?, ?, ?)",
		time.Now().UTC().UnixNano(), hash, string(body),
	); err != nil {
		return fmt.Errorf("failed to insert revision: %w", err)
	}

	if s.max > 0 {
		if _, err := s.db.Exec(
			"DELETE FROM revisions WHERE id NOT IN (SELECT id FROM revisions ORDER BY id DESC LIMIT ?)",
			s.max,
		); err != nil {
			return fmt.Errorf("failed to prune revisions: %w", err)
		}
	}
	return nil
}

// Latest loads the most recent revision's document. ok is false when the
// store is empty.
func (s *RevisionStore) Latest() (*doc.Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rev Revision
	var created int64
	var body string
	err := s.db.QueryRow(
		"SELECT id, created, hash, body FROM revisions ORDER BY id DESC LIMIT 1",
	).Scan(&rev.ID, &created, &rev.Hash, &body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query latest revision: %w", err)
	}

	hasher := sha1.New()
	hasher.Write([]byte(body))
	if hex.EncodeToString(hasher.Sum(nil)) != rev.Hash {
		return nil, false, fmt.Errorf("revision %d failed integrity check", rev.ID)
	}

	var d doc.Document
	if err := json.Unmarshal([]byte(body), &d); err != nil {
		return nil, false, fmt.Errorf("failed to decode revision %d: %w", rev.ID, err)
	}
	return &d, true, nil
}

// Revisions lists stored revisions, newest first, without bodies.
func (s *RevisionStore) Revisions(limit int) ([]Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		"SELECT id, created, hash FROM revisions ORDER BY id DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		var rev Revision
		var created int64
		if err := rows.Scan(&rev.ID, &created, &rev.Hash); err != nil {
			return nil, err
		}
		rev.Created = time.Unix(0, created)
		out = append(out, rev)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *RevisionStore) Close() error {
	return s.db.Close()
}
