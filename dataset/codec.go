package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const ioBufferSize = 64 * 1024

// Write 한 줄에 하나씩 기록
func Write(w io.Writer, data []int) error {
	writer := bufio.NewWriterSize(w, ioBufferSize)

	// 숫자 변환용 스크래치 버퍼 재사용
	scratch := make([]byte, 0, 24)
	for _, num := range data {
		scratch = strconv.AppendInt(scratch[:0], int64(num), 10)
		scratch = append(scratch, '\n')
		if _, err := writer.Write(scratch); err != nil {
			return errors.Wrap(err, "dataset: write")
		}
	}

	return errors.Wrap(writer.Flush(), "dataset: flush")
}

// Read 한 줄에 하나씩 읽음. 빈 줄은 건너뛰고 정수가 아니면 ErrNotNumeric
func Read(r io.Reader) ([]int, error) {
	return readInto(r, nil)
}

func readInto(r io.Reader, data []int) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, ioBufferSize), bufio.MaxScanTokenSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		num, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(ErrNotNumeric, "line %d: %q", line, text)
		}
		data = append(data, num)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "dataset: read")
	}
	if data == nil {
		data = []int{}
	}
	return data, nil
}

// WriteFile path 에 기록
func WriteFile(path string, data []int) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "dataset: create")
	}

	if err := Write(file, data); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "dataset: close")
}

// ReadFile path 에서 읽음
func ReadFile(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: open")
	}
	defer file.Close()

	// 파일 크기로 대략적인 개수 추정 (평균 6자리 + 개행)
	var data []int
	if info, err := file.Stat(); err == nil {
		data = make([]int, 0, info.Size()/7)
	}
	return readInto(file, data)
}
