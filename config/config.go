// Package config 벤치마크 실행 계획 (YAML).
package config

import (
	"io"
	"os"

	"gapsort/kvdb"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalid 설정 값 검증 실패
var ErrInvalid = errors.New("config: invalid")

// FileBackend 입력을 텍스트 파일(한 줄에 정수 하나)로 쓰고 다시 읽는 소스
const FileBackend = "file"

// AllAlgorithms 기본으로 돌리는 정렬 알고리즘
var AllAlgorithms = []string{"gapsort", "mergesort", "quicksort"}

// Config 벤치마크 계획
type Config struct {
	Sizes      []int    `yaml:"sizes"`
	Runs       int      `yaml:"runs"`
	Algorithms []string `yaml:"algorithms"`
	Seed       int64    `yaml:"seed"`
	// GapThreshold 0이면 기본값(3), 음수면 삽입 병합 비활성
	GapThreshold int    `yaml:"gap_threshold"`
	Store        Store  `yaml:"store"`
	Output       Output `yaml:"output"`
}

// Store 데이터셋 저장소. Backend 가 비어 있으면 메모리에서만 실행,
// "file" 이면 Dir 아래 텍스트 파일, 그 외는 kvdb 백엔드 이름
type Store struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"`
}

// Output 결과 파일 위치
type Output struct {
	Dir string `yaml:"dir"`
}

// Default 기본 계획
func Default() Config {
	return Config{
		Sizes:        []int{1000, 10000, 100000},
		Runs:         3,
		Algorithms:   append([]string(nil), AllAlgorithms...),
		Seed:         42,
		GapThreshold: 3,
		Store:        Store{Dir: "data"},
		Output:       Output{Dir: "."},
	}
}

// Load path 의 YAML 을 기본값 위에 덮어씀. path 가 비면 기본값
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: open")
	}
	defer file.Close()

	return Parse(file)
}

// Parse r 에서 YAML 을 읽어 검증. 알 수 없는 키는 거부
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "config: parse")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 값 범위 확인
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.Wrap(ErrInvalid, "sizes is empty")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return errors.Wrapf(ErrInvalid, "size %d must be positive", n)
		}
	}
	if c.Runs <= 0 {
		return errors.Wrapf(ErrInvalid, "runs %d must be positive", c.Runs)
	}
	if len(c.Algorithms) == 0 {
		return errors.Wrap(ErrInvalid, "algorithms is empty")
	}
	for _, name := range c.Algorithms {
		if !knownAlgorithm(name) {
			return errors.Wrapf(ErrInvalid, "unknown algorithm %q", name)
		}
	}
	if c.Store.Backend != "" {
		if c.Store.Backend != FileBackend {
			if _, err := kvdb.ParseBackend(c.Store.Backend); err != nil {
				return errors.Wrapf(ErrInvalid, "store: %v", err)
			}
		}
		if c.Store.Dir == "" {
			return errors.Wrap(ErrInvalid, "store.dir is empty")
		}
	}
	return nil
}

func knownAlgorithm(name string) bool {
	for _, a := range AllAlgorithms {
		if a == name {
			return true
		}
	}
	return false
}
