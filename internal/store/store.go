// Package store owns durable item state. Everything the board renders is
// reloaded from here after each mutation; in-memory copies are caches.
package store

import (
	"sync"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/pkg/errors"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
)

const (
	kvBucket     = "kv"
	layoutKey    = "layout"
	versionKey   = "schema_version"
	schemaLatest = 1
)

// Store is a storm (bbolt) backed record store for triage items plus a
// small keyed bucket for layout state. The database is opened lazily on
// first use; concurrent first uses share one open via sync.Once.
type Store struct {
	path string

	once sync.Once
	db   *storm.DB
	err  error
}

// New returns a Store for the database file at path. Nothing is touched
// on disk until the first operation.
func New(path string) *Store {
	return &Store{path: path}
}

// open opens the database exactly once and runs schema migration.
func (s *Store) open() (*storm.DB, error) {
	s.once.Do(func() {
		db, err := storm.Open(s.path)
		if err != nil {
			s.err = errors.Wrap(err, "open database")
			return
		}
		if err := migrate(db); err != nil {
			db.Close()
			s.err = err
			return
		}
		s.db = db
	})
	return s.db, s.err
}

// migrate creates buckets and indexes for the current schema version.
// Older databases are stepped forward; newer ones are left untouched.
func migrate(db *storm.DB) error {
	var version int
	err := db.Get(kvBucket, versionKey, &version)
	if err != nil && err != storm.ErrNotFound {
		return errors.Wrap(err, "read schema version")
	}
	if version >= schemaLatest {
		return nil
	}
	if err := db.Init(&model.TriageItem{}); err != nil {
		return errors.Wrap(err, "init item bucket")
	}
	return errors.Wrap(db.Set(kvBucket, versionKey, schemaLatest), "write schema version")
}

// Init opens the database and runs migration without touching records.
// Useful for an explicit init command; every other operation opens
// lazily anyway.
func (s *Store) Init() error {
	_, err := s.open()
	return err
}

// GetAll returns every stored item. Order is whatever the engine yields;
// callers sort for display.
func (s *Store) GetAll() ([]model.TriageItem, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	items := make([]model.TriageItem, 0)
	if err := db.All(&items); err != nil {
		return nil, errors.Wrap(err, "load items")
	}
	return items, nil
}

// Put upserts the item by id and stamps UpdatedAt (CreatedAt on first
// write). The item keeps whatever id the caller assigned.
func (s *Store) Put(item model.TriageItem) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	stamp(&item)
	return errors.Wrap(db.Save(&item), "save item")
}

// Delete removes the item with the given id. Deleting an absent id is
// not an error.
func (s *Store) Delete(id string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	err = db.DeleteStruct(&model.TriageItem{ID: id})
	if err == storm.ErrNotFound {
		return nil
	}
	return errors.Wrap(err, "delete item")
}

// BulkPut upserts every item in a single transaction: either the whole
// batch lands or none of it does.
func (s *Store) BulkPut(items []model.TriageItem) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	tx, err := db.Begin(true)
	if err != nil {
		return errors.Wrap(err, "begin bulk put")
	}
	defer tx.Rollback()

	for i := range items {
		item := items[i]
		stamp(&item)
		if err := tx.Save(&item); err != nil {
			return errors.Wrapf(err, "bulk put item %q", item.ID)
		}
	}
	return errors.Wrap(tx.Commit(), "commit bulk put")
}

// SetLayout stores the opaque grid-layout blob under the "layout" key.
func (s *Store) SetLayout(raw []byte) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	return errors.Wrap(db.Set(kvBucket, layoutKey, raw), "save layout")
}

// GetLayout returns the stored layout blob, or nil when none was saved.
func (s *Store) GetLayout() ([]byte, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	var raw []byte
	err = db.Get(kvBucket, layoutKey, &raw)
	if err == storm.ErrNotFound {
		return nil, nil
	}
	return raw, errors.Wrap(err, "load layout")
}

// Close closes the underlying database if it was ever opened.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func stamp(item *model.TriageItem) {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
}
