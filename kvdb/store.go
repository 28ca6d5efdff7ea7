// Package kvdb 데이터셋(정수 슬라이스)을 임베디드 KV 엔진에 저장.
//
// 백엔드는 bbolt, BadgerDB, PebbleDB 중 하나. 모두 같은 레코드 형식을 쓴다.
package kvdb

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("kvdb: dataset not found")
	ErrCorrupt        = errors.New("kvdb: dataset corrupt")
	ErrBadName        = errors.New("kvdb: invalid dataset name")
	ErrUnknownBackend = errors.New("kvdb: unknown backend")
)

// Backend 저장 엔진 종류
type Backend string

const (
	Bolt   Backend = "bbolt"
	Badger Backend = "badger"
	Pebble Backend = "pebble"
)

// Backends 지원 백엔드 목록
var Backends = []Backend{Bolt, Badger, Pebble}

// ParseBackend 이름으로 백엔드 찾기
func ParseBackend(s string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == strings.ToLower(s) {
			return b, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownBackend, "%q", s)
}

// Store 이름 붙은 데이터셋 저장소
type Store interface {
	// Save 같은 이름의 기존 데이터셋을 대체
	Save(name string, data []int) error
	Load(name string) ([]int, error)
	Delete(name string) error
	Close() error
}

// Open dir 아래에 backend 저장소를 연다
func Open(backend Backend, dir string) (Store, error) {
	switch backend {
	case Bolt:
		return openBolt(dir)
	case Badger:
		return openBadger(dir)
	case Pebble:
		return openPebble(dir)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
	}
}

func validateName(name string) error {
	if name == "" || strings.IndexByte(name, 0) >= 0 {
		return errors.Wrapf(ErrBadName, "%q", name)
	}
	return nil
}
