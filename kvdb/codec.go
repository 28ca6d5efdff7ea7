package kvdb

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ChunkSize 레코드 하나에 담는 값 개수
const ChunkSize = 4096

const (
	chunkTag = 'c'
	lenTag   = 'n'
	wordSize = 8
)

// 레코드 키 = prefix(name + 0x00) + 태그 [+ BE uint32 청크 번호]
// bbolt 는 데이터셋마다 버킷을 쓰므로 prefix 없이 태그부터 시작

func prefix(name string) []byte {
	return append([]byte(name), 0)
}

// prefixEnd prefix 로 시작하는 모든 키보다 큰 첫 키
func prefixEnd(p []byte) []byte {
	end := append([]byte(nil), p...)
	end[len(end)-1]++
	return end
}

func lenSuffix() []byte {
	return []byte{lenTag}
}

func chunkSuffix(idx uint32) []byte {
	k := make([]byte, 5)
	k[0] = chunkTag
	binary.BigEndian.PutUint32(k[1:], idx)
	return k
}

func withPrefix(p, suffix []byte) []byte {
	k := make([]byte, 0, len(p)+len(suffix))
	k = append(k, p...)
	return append(k, suffix...)
}

// chunkRange p 아래 청크 레코드의 [lower, upper) 키 범위
func chunkRange(p []byte) ([]byte, []byte) {
	return withPrefix(p, []byte{chunkTag}), withPrefix(p, []byte{chunkTag + 1})
}

func encodeLen(n int) []byte {
	buf := make([]byte, wordSize)
	binary.BigEndian.PutUint64(buf, uint64(n))
	return buf
}

func decodeLen(b []byte) (int, error) {
	if len(b) != wordSize {
		return 0, errors.Wrapf(ErrCorrupt, "length record has %d bytes", len(b))
	}
	return int(binary.BigEndian.Uint64(b)), nil
}

func encodeChunk(vals []int) []byte {
	buf := make([]byte, wordSize*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint64(buf[wordSize*i:], uint64(int64(v)))
	}
	return buf
}

// decodeChunk b 를 dst 뒤에 붙임. b 는 복사되므로 호출 후 재사용 가능
func decodeChunk(dst []int, b []byte) ([]int, error) {
	if len(b)%wordSize != 0 {
		return dst, errors.Wrapf(ErrCorrupt, "chunk has %d bytes", len(b))
	}
	for i := 0; i < len(b); i += wordSize {
		dst = append(dst, int(int64(binary.BigEndian.Uint64(b[i:]))))
	}
	return dst, nil
}

// forEachChunk data 를 ChunkSize 단위로 잘라 fn 호출
func forEachChunk(data []int, fn func(idx uint32, vals []int) error) error {
	for i, idx := 0, uint32(0); i < len(data); i, idx = i+ChunkSize, idx+1 {
		end := min(i+ChunkSize, len(data))
		if err := fn(idx, data[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func checkLen(name string, want int, got []int) ([]int, error) {
	if len(got) != want {
		return nil, errors.Wrapf(ErrCorrupt, "%q: length record %d, decoded %d", name, want, len(got))
	}
	if got == nil {
		got = []int{}
	}
	return got, nil
}
