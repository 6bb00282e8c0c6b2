// Package store is the persistent storage of styled texts.
//
// Texts are stored by content in the "blobs" bucket, keyed by the hex BLAKE3
// digest of their JSON encoding and compressed with xz. The "names" bucket
// maps names to digests, so texts with identical content share one blob.
package store

import (
	"fmt"
	"time"

	"github.com/styledstring/styledstring/pkg/logutil"
	. "github.com/styledstring/styledstring/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

var logger = logutil.GetLogger("[store] ")

const (
	bucketBlobs = "blobs"
	bucketNames = "names"
)

var initDB = map[string]func(*bolt.Tx) error{
	"initialize blob table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketBlobs))
		return err
	},
	"initialize name table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketNames))
		return err
	},
}

// DB is a Store backed by a bbolt database.
type DB struct {
	db *bolt.DB
}

var _ Store = (*DB)(nil)

// Open opens the database at path, creating it if it does not exist.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("opened", path)
	return &DB{db}, nil
}

// Close closes the database.
func (s *DB) Close() error {
	return s.db.Close()
}
