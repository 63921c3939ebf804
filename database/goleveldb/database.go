// Package goleveldb implements database.Storage on top of LevelDB
package goleveldb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	leveldbstorage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/pacfind/pacfind/database"
)

func internalOpen(path string) (*leveldb.DB, error) {
	o := &opt.Options{
		Filter:                 filter.NewBloomFilter(10),
		OpenFilesCacheCapacity: 64,
		// cached sync databases are already compact msgpack
		Compression: opt.NoCompression,
	}

	return leveldb.OpenFile(path, o)
}

// NewDB creates new instance of DB, but doesn't open it (yet)
func NewDB(path string) (database.Storage, error) {
	return &storage{path: path}, nil
}

// NewOpenDB creates new instance of DB and opens it
func NewOpenDB(path string) (database.Storage, error) {
	db, err := NewDB(path)
	if err != nil {
		return nil, err
	}

	return db, db.Open()
}

// RecoverDB recovers LevelDB database from corruption
func RecoverDB(path string) error {
	stor, err := leveldbstorage.OpenFile(path, false)
	if err != nil {
		return err
	}
	defer stor.Close()

	db, err := leveldb.Recover(stor, nil)
	if err != nil {
		return err
	}

	return db.Close()
}
