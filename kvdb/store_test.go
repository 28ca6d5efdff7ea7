package kvdb_test

import (
	"path/filepath"
	"testing"

	"gapsort/dataset"
	"gapsort/kvdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forEachBackend 백엔드마다 새 저장소를 열어 fn 실행
func forEachBackend(t *testing.T, fn func(t *testing.T, s kvdb.Store)) {
	for _, backend := range kvdb.Backends {
		t.Run(string(backend), func(t *testing.T) {
			s, err := kvdb.Open(backend, filepath.Join(t.TempDir(), string(backend)))
			require.NoError(t, err)
			defer func() { assert.NoError(t, s.Close()) }()

			fn(t, s)
		})
	}
}

func TestStore_RoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s kvdb.Store) {
		// 청크 경계를 넘는 크기 + 음수
		data := dataset.Generate(3*kvdb.ChunkSize+17, 42)
		data[0], data[1] = -5, -1<<40

		require.NoError(t, s.Save("1000/input", data))
		got, err := s.Load("1000/input")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}

func TestStore_Empty(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s kvdb.Store) {
		require.NoError(t, s.Save("empty", []int{}))
		got, err := s.Load("empty")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}

// TestStore_Replace 짧은 데이터로 덮어쓰면 이전 청크가 남지 않아야 함
func TestStore_Replace(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s kvdb.Store) {
		require.NoError(t, s.Save("ds", dataset.Generate(2*kvdb.ChunkSize+1, 1)))
		require.NoError(t, s.Save("ds", []int{3, 2, 1}))

		got, err := s.Load("ds")
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 1}, got)
	})
}

// TestStore_PrefixIsolation 이름이 다른 이름의 접두어여도 섞이지 않음
func TestStore_PrefixIsolation(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s kvdb.Store) {
		require.NoError(t, s.Save("a", []int{1}))
		require.NoError(t, s.Save("ab", []int{2, 2}))
		require.NoError(t, s.Save("a/b", []int{3, 3, 3}))

		got, err := s.Load("a")
		require.NoError(t, err)
		assert.Equal(t, []int{1}, got)

		require.NoError(t, s.Delete("a"))
		got, err = s.Load("ab")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 2}, got)
		got, err = s.Load("a/b")
		require.NoError(t, err)
		assert.Equal(t, []int{3, 3, 3}, got)
	})
}

func TestStore_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s kvdb.Store) {
		_, err := s.Load("missing")
		assert.ErrorIs(t, err, kvdb.ErrNotFound)
		assert.ErrorIs(t, s.Delete("missing"), kvdb.ErrNotFound)

		require.NoError(t, s.Save("gone", []int{1}))
		require.NoError(t, s.Delete("gone"))
		_, err = s.Load("gone")
		assert.ErrorIs(t, err, kvdb.ErrNotFound)
	})
}

func TestStore_BadName(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s kvdb.Store) {
		assert.ErrorIs(t, s.Save("", []int{1}), kvdb.ErrBadName)
		assert.ErrorIs(t, s.Save("a\x00b", []int{1}), kvdb.ErrBadName)
		_, err := s.Load("")
		assert.ErrorIs(t, err, kvdb.ErrBadName)
	})
}

// TestStore_Reopen 닫았다 다시 열어도 유지
func TestStore_Reopen(t *testing.T) {
	for _, backend := range kvdb.Backends {
		t.Run(string(backend), func(t *testing.T) {
			dir := t.TempDir()
			s, err := kvdb.Open(backend, dir)
			require.NoError(t, err)
			require.NoError(t, s.Save("ds", []int{5, 4, 3}))
			require.NoError(t, s.Close())

			s, err = kvdb.Open(backend, dir)
			require.NoError(t, err)
			defer s.Close()

			got, err := s.Load("ds")
			require.NoError(t, err)
			assert.Equal(t, []int{5, 4, 3}, got)
		})
	}
}

func TestParseBackend(t *testing.T) {
	b, err := kvdb.ParseBackend("Pebble")
	require.NoError(t, err)
	assert.Equal(t, kvdb.Pebble, b)

	_, err = kvdb.ParseBackend("leveldb")
	assert.ErrorIs(t, err, kvdb.ErrUnknownBackend)

	_, err = kvdb.Open("leveldb", t.TempDir())
	assert.ErrorIs(t, err, kvdb.ErrUnknownBackend)
}
