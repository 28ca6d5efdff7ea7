package kvdb

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

const boltFile = "datasets.db"

type boltStore struct {
	db *bbolt.DB
}

func openBolt(dir string) (*boltStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "kvdb: bbolt dir")
	}

	db, err := bbolt.Open(filepath.Join(dir, boltFile), 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "kvdb: bbolt open")
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Save(name string, data []int) error {
	if err := validateName(name); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := []byte(name)
		if tx.Bucket(bucket) != nil {
			if err := tx.DeleteBucket(bucket); err != nil {
				return err
			}
		}

		b, err := tx.CreateBucket(bucket)
		if err != nil {
			return err
		}
		if err := b.Put(lenSuffix(), encodeLen(len(data))); err != nil {
			return err
		}
		return forEachChunk(data, func(idx uint32, vals []int) error {
			return b.Put(chunkSuffix(idx), encodeChunk(vals))
		})
	})
	return errors.Wrapf(err, "kvdb: bbolt save %q", name)
}

func (s *boltStore) Load(name string) ([]int, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	var data []int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return errors.Wrapf(ErrNotFound, "%q", name)
		}

		n, err := decodeLen(b.Get(lenSuffix()))
		if err != nil {
			return err
		}

		data = make([]int, 0, n)
		c := b.Cursor()
		for k, v := c.Seek([]byte{chunkTag}); k != nil && k[0] == chunkTag; k, v = c.Next() {
			if data, err = decodeChunk(data, v); err != nil {
				return err
			}
		}

		data, err = checkLen(name, n, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *boltStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := []byte(name)
		if tx.Bucket(bucket) == nil {
			return errors.Wrapf(ErrNotFound, "%q", name)
		}
		return errors.Wrapf(tx.DeleteBucket(bucket), "kvdb: bbolt delete %q", name)
	})
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
