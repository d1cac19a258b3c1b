package kv

import "github.com/dgraph-io/badger/v4"

type Database interface {
	DB() *badger.DB
	Close() error
}
