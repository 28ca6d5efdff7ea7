package kvdb

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

type badgerStore struct {
	db *badger.DB
}

func openBadger(dir string) (*badgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrap(err, "kvdb: badger open")
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Save(name string, data []int) error {
	if err := validateName(name); err != nil {
		return err
	}

	p := prefix(name)
	if err := s.db.DropPrefix(p); err != nil {
		return errors.Wrapf(err, "kvdb: badger drop %q", name)
	}

	wb := s.db.NewWriteBatch()
	err := wb.Set(withPrefix(p, lenSuffix()), encodeLen(len(data)))
	if err == nil {
		err = forEachChunk(data, func(idx uint32, vals []int) error {
			return wb.Set(withPrefix(p, chunkSuffix(idx)), encodeChunk(vals))
		})
	}
	if err != nil {
		wb.Cancel()
		return errors.Wrapf(err, "kvdb: badger save %q", name)
	}

	return errors.Wrapf(wb.Flush(), "kvdb: badger flush %q", name)
}

func (s *badgerStore) Load(name string) ([]int, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	p := prefix(name)
	var data []int
	err := s.db.View(func(txn *badger.Txn) error {
		n, err := s.length(txn, name, p)
		if err != nil {
			return err
		}

		lower, _ := chunkRange(p)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = lower

		data = make([]int, 0, n)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var err error
				data, err = decodeChunk(data, v)
				return err
			})
			if err != nil {
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

func (s *badgerStore) length(txn *badger.Txn, name string, p []byte) (int, error) {
	item, err := txn.Get(withPrefix(p, lenSuffix()))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "kvdb: badger get %q", name)
	}

	v, err := item.ValueCopy(nil)
	if err != nil {
		return 0, err
	}
	return decodeLen(v)
}

func (s *badgerStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	p := prefix(name)
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := s.length(txn, name, p)
		return err
	})
	if err != nil {
		return err
	}
	return errors.Wrapf(s.db.DropPrefix(p), "kvdb: badger delete %q", name)
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
