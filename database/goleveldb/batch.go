package goleveldb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/pacfind/pacfind/database"
)

type batch struct {
	db *leveldb.DB
	b  *leveldb.Batch
}

// batch should implement database.Batch
var (
	_ database.Batch = &batch{}
)

func (b *batch) Put(key, value []byte) error {
	b.b.Put(key, value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.b.Delete(key)
	return nil
}

// Write applies accumulated operations, empty batch is not written at all
func (b *batch) Write() error {
	if b.b.Len() == 0 {
		return nil
	}
	if b.db == nil {
		return database.ErrClosed
	}
	return b.db.Write(b.b, &opt.WriteOptions{Sync: true})
}
