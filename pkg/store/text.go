package store

import (
	"bytes"
	"fmt"

	"github.com/styledstring/styledstring/pkg/styled"
	. "github.com/styledstring/styledstring/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

// Put stores t under name and returns its digest.
func (s *DB) Put(name string, t styled.Text) (string, error) {
	digest, blob, err := encodeBlob(t)
	if err != nil {
		return "", err
	}
	key := []byte(digest)
	err = s.db.Update(func(tx *bolt.Tx) error {
		blobs := tx.Bucket([]byte(bucketBlobs))
		if blobs.Get(key) == nil {
			if err := blobs.Put(key, blob); err != nil {
				return err
			}
		}
		names := tx.Bucket([]byte(bucketNames))
		// Copied since the value is only valid until the Put below.
		old := bytes.Clone(names.Get([]byte(name)))
		if err := names.Put([]byte(name), key); err != nil {
			return err
		}
		if old != nil && !bytes.Equal(old, key) {
			return collectBlob(tx, old)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return digest, nil
}

// Get returns the text stored under name.
func (s *DB) Get(name string) (styled.Text, error) {
	var digest string
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketNames)).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		digest = string(v)
		b := tx.Bucket([]byte(bucketBlobs)).Get(v)
		if b == nil {
			return fmt.Errorf("%s: missing blob %s", name, digest)
		}
		blob = bytes.Clone(b)
		return nil
	})
	if err != nil {
		return styled.Text{}, err
	}
	return decodeBlob(digest, blob)
}

// Digest returns the digest of the text stored under name.
func (s *DB) Digest(name string) (string, error) {
	var digest string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketNames)).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		digest = string(v)
		return nil
	})
	return digest, err
}

// Delete removes name, and the blob it refers to if no other name does.
func (s *DB) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		names := tx.Bucket([]byte(bucketNames))
		digest := bytes.Clone(names.Get([]byte(name)))
		if digest == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		if err := names.Delete([]byte(name)); err != nil {
			return err
		}
		return collectBlob(tx, digest)
	})
}

// Names returns all names, sorted.
func (s *DB) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketNames)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
