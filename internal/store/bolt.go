package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketDocuments = "documents"

type boltBackend struct {
	db *bolt.DB
}

func newBoltBackend(dbPath string) (*boltBackend, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketDocuments)); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketDocuments, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &boltBackend{db: db}, nil
}

func (b *boltBackend) get(name string) ([]byte, error) {
	var body []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketDocuments))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", bucketDocuments)
		}

		data := bucket.Get([]byte(name))
		if data == nil {
			return ErrNotFound
		}

		// Copy the value since it's only valid during the transaction.
		body = make([]byte, len(data))
		copy(body, data)
		return nil
	})
	return body, err
}

func (b *boltBackend) put(name string, body []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketDocuments))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", bucketDocuments)
		}
		return bucket.Put([]byte(name), body)
	})
}

func (b *boltBackend) close() error {
	return b.db.Close()
}
