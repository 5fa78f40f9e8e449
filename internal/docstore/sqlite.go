package docstore

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"task-tracker/internal/docstore/migrations"
	"task-tracker/internal/errors"
)

// SQLiteStore implements Store on top of a local SQLite database. Each
// collection lives in one row of the documents table as a JSON blob
// with a revision counter.
type SQLiteStore struct {
	db *sqlx.DB

	mu        sync.Mutex
	subs      map[string]map[int64]SubscribeFunc
	nextSubID int64
}

// New opens (or creates) a SQLite-backed document store at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewPersistenceError("open database", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.NewPersistenceError("enable WAL mode", err)
	}

	if err := migrations.RunMigrations(db.DB); err != nil {
		db.Close()
		return nil, errors.NewPersistenceError("run migrations", err)
	}

	return &SQLiteStore{
		db:   db,
		subs: make(map[string]map[int64]SubscribeFunc),
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns the document stored under key, or nil if absent.
func (s *SQLiteStore) Load(ctx context.Context, key string) (*Document, error) {
	var row struct {
		Revision  int64  `db:"revision"`
		Body      string `db:"body"`
		UpdatedAt string `db:"updated_at"`
	}

	err := s.db.GetContext(ctx, &row,
		"SELECT revision, body, updated_at FROM documents WHERE doc_key = ?", key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewPersistenceError("load document", err).WithContext("key", key)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, row.UpdatedAt)
	if err != nil {
		return nil, errors.NewPersistenceError("parse document timestamp", err).WithContext("key", key)
	}

	return &Document{
		Key:       key,
		Revision:  row.Revision,
		Body:      []byte(row.Body),
		UpdatedAt: updatedAt,
	}, nil
}

// Save replaces the document body under key, bumps its revision, and
// notifies subscribers with the new document.
func (s *SQLiteStore) Save(ctx context.Context, key string, body []byte) (int64, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.NewPersistenceError("begin save", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (doc_key, revision, body, updated_at)
		VALUES (?, 1, ?, ?)
		ON CONFLICT(doc_key) DO UPDATE SET
			revision = documents.revision + 1,
			body = excluded.body,
			updated_at = excluded.updated_at`,
		key, string(body), now.Format(time.RFC3339Nano))
	if err != nil {
		return 0, errors.NewPersistenceError("save document", err).WithContext("key", key)
	}

	var revision int64
	err = tx.GetContext(ctx, &revision,
		"SELECT revision FROM documents WHERE doc_key = ?", key)
	if err != nil {
		return 0, errors.NewPersistenceError("read saved revision", err).WithContext("key", key)
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.NewPersistenceError("commit save", err)
	}

	s.notify(Document{Key: key, Revision: revision, Body: body, UpdatedAt: now})
	return revision, nil
}

// Subscribe registers fn for changes to key and returns an unsubscribe
// function.
func (s *SQLiteStore) Subscribe(key string, fn SubscribeFunc) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	if s.subs[key] == nil {
		s.subs[key] = make(map[int64]SubscribeFunc)
	}
	s.subs[key][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[key], id)
	}
}

// notify delivers the document to each subscriber on its own goroutine
// so a save never blocks on, or deadlocks with, a subscriber that
// re-enters the store.
func (s *SQLiteStore) notify(doc Document) {
	s.mu.Lock()
	fns := make([]SubscribeFunc, 0, len(s.subs[doc.Key]))
	for _, fn := range s.subs[doc.Key] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		go fn(doc)
	}
}
