// Package database provides KV database for cached package metadata
package database

import "errors"

// Errors for Storage
var (
	ErrNotFound = errors.New("key not found")
	ErrClosed   = errors.New("database is not open")
)

// Reader provides KV read calls
type Reader interface {
	Get(key []byte) ([]byte, error)
}

// PrefixReader provides prefixed operations
type PrefixReader interface {
	HasPrefix(prefix []byte) bool
	KeysByPrefix(prefix []byte) [][]byte
}

// Writer provides KV update/delete calls
type Writer interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error
}

// Storage is an interface to KV storage
type Storage interface {
	Reader
	Writer

	PrefixReader

	CreateBatch() Batch

	Open() error
	Close() error
	CompactDB() error
	Drop() error
}

// Batch provides a way to pack many writes, which are applied atomically
type Batch interface {
	Writer

	// Write closes batch and send accumulated writes to the database
	Write() error
}
