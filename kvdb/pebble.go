package kvdb

import (
	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

type pebbleStore struct {
	db *pebble.DB
}

func openPebble(dir string) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "kvdb: pebble open")
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Save(name string, data []int) error {
	if err := validateName(name); err != nil {
		return err
	}

	p := prefix(name)
	batch := s.db.NewBatch()
	defer batch.Close()

	// 같은 배치 안에서 범위 삭제 후 쓰기 (뒤의 Set 이 더 높은 시퀀스)
	if err := batch.DeleteRange(p, prefixEnd(p), nil); err != nil {
		return errors.Wrapf(err, "kvdb: pebble save %q", name)
	}
	if err := batch.Set(withPrefix(p, lenSuffix()), encodeLen(len(data)), nil); err != nil {
		return errors.Wrapf(err, "kvdb: pebble save %q", name)
	}
	err := forEachChunk(data, func(idx uint32, vals []int) error {
		return batch.Set(withPrefix(p, chunkSuffix(idx)), encodeChunk(vals), nil)
	})
	if err != nil {
		return errors.Wrapf(err, "kvdb: pebble save %q", name)
	}

	return errors.Wrapf(batch.Commit(pebble.Sync), "kvdb: pebble commit %q", name)
}

func (s *pebbleStore) Load(name string) ([]int, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	p := prefix(name)
	n, err := s.length(name, p)
	if err != nil {
		return nil, err
	}

	lower, upper := chunkRange(p)
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return nil, errors.Wrapf(err, "kvdb: pebble iter %q", name)
	}

	data := make([]int, 0, n)
	for it.First(); it.Valid(); it.Next() {
		if data, err = decodeChunk(data, it.Value()); err != nil {
			it.Close()
			return nil, err
		}
	}
	if err := it.Close(); err != nil {
		return nil, errors.Wrapf(err, "kvdb: pebble iter %q", name)
	}

	return checkLen(name, n, data)
}

func (s *pebbleStore) length(name string, p []byte) (int, error) {
	v, closer, err := s.db.Get(withPrefix(p, lenSuffix()))
	if errors.Is(err, pebble.ErrNotFound) {
		return 0, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "kvdb: pebble get %q", name)
	}
	defer closer.Close()

	return decodeLen(v)
}

func (s *pebbleStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	p := prefix(name)
	if _, err := s.length(name, p); err != nil {
		return err
	}
	return errors.Wrapf(s.db.DeleteRange(p, prefixEnd(p), pebble.Sync), "kvdb: pebble delete %q", name)
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
