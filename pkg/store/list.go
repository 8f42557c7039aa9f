package store

import (
	"encoding/json"

	"github.com/elves/linkedlist/pkg/list"
	. "github.com/elves/linkedlist/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

func init() {
	initDB["initialize saved list table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketList))
		return err
	}
}

// SaveList saves the elements of a list under the given name, replacing any
// list previously saved under it.
func (s *dbStore) SaveList(name string, l *list.List[string]) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketList)).Put([]byte(name), data)
	})
}

// List returns a new list with the elements saved under the given name.
func (s *dbStore) List(name string) (*list.List[string], error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketList)).Get([]byte(name))
		if v == nil {
			return ErrNoList
		}
		// v is only valid during the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	l := list.New[string]()
	if err := json.Unmarshal(data, l); err != nil {
		return nil, err
	}
	return l, nil
}

// DelList deletes a saved list. It returns ErrNoList if there is no list
// saved under the name.
func (s *dbStore) DelList(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketList))
		if b.Get([]byte(name)) == nil {
			return ErrNoList
		}
		return b.Delete([]byte(name))
	})
}

// ListNames returns the names of all saved lists, sorted.
func (s *dbStore) ListNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketList)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
