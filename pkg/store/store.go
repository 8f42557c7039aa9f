// Package store implements storedefs.Store on top of a bbolt database. It
// keeps the command history and named snapshots of lists.
package store

import (
	"fmt"
	"time"

	"github.com/elves/linkedlist/pkg/logutil"
	"github.com/elves/linkedlist/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

var logger = logutil.GetLogger("[store] ")

const (
	bucketCmd  = "cmd"
	bucketList = "list"
)

var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend for lls. It is not thread-safe.
// In particular, the store may be closed while another goroutine is still
// accessing the store.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
