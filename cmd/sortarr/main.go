// Command sortarr 100만 개 난수를 정렬해 한 줄에 하나씩 표준 출력으로 씀.
package main

import (
	"os"
	"time"

	"gapsort/dataset"
	"gapsort/mergesort"

	"github.com/convox/logger"
)

const numItems = 1_000_000

func main() {
	log := logger.NewWriter("ns=sortarr", os.Stderr)

	data := dataset.Generate(numItems, time.Now().UnixNano())
	sorted := mergesort.Sort(data)

	if err := dataset.Write(os.Stdout, sorted); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
