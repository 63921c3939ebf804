package goleveldb

import (
	"bytes"
	"errors"
	"os"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/pacfind/pacfind/database"
)

type storage struct {
	path string
	db   *leveldb.DB
}

// Check interface
var (
	_ database.Storage = &storage{}
)

// Get key value from database
func (s *storage) Get(key []byte) ([]byte, error) {
	if s.db == nil {
		return nil, database.ErrClosed
	}

	value, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, database.ErrNotFound
	}
	return value, err
}

// Put saves key to database, if key has the same value in DB already, it is not saved
func (s *storage) Put(key []byte, value []byte) error {
	if s.db == nil {
		return database.ErrClosed
	}

	old, err := s.db.Get(key, nil)
	if err == nil && bytes.Equal(old, value) {
		return nil
	}
	if err != nil && err != leveldb.ErrNotFound {
		return err
	}
	return s.db.Put(key, value, nil)
}

// Delete removes key from DB
func (s *storage) Delete(key []byte) error {
	if s.db == nil {
		return database.ErrClosed
	}
	return s.db.Delete(key, nil)
}

// KeysByPrefix returns all keys that start with prefix, in key order
func (s *storage) KeysByPrefix(prefix []byte) [][]byte {
	result := make([][]byte, 0, 20)
	if s.db == nil {
		return result
	}

	iterator := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iterator.Release()

	for iterator.Next() {
		result = append(result, append([]byte(nil), iterator.Key()...))
	}

	return result
}

// HasPrefix checks whether it can find any key with given prefix and returns true if one exists
func (s *storage) HasPrefix(prefix []byte) bool {
	if s.db == nil {
		return false
	}

	iterator := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iterator.Release()
	return iterator.Next()
}

// Close finishes DB work
func (s *storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Open opens the database, it is no-op if it's already open
func (s *storage) Open() error {
	if s.db != nil {
		return nil
	}

	var err error
	s.db, err = internalOpen(s.path)
	return err
}

// CreateBatch creates a Batch object
func (s *storage) CreateBatch() database.Batch {
	return &batch{
		db: s.db,
		b:  &leveldb.Batch{},
	}
}

// CompactDB compacts database by merging layers
func (s *storage) CompactDB() error {
	if s.db == nil {
		return database.ErrClosed
	}
	return s.db.CompactRange(util.Range{})
}

// Drop removes all the DB files (DANGEROUS!)
func (s *storage) Drop() error {
	if s.db != nil {
		return errors.New("DB is still open")
	}

	return os.RemoveAll(s.path)
}
