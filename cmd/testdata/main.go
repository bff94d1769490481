package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/fanreduce/cmd/testdata/generator"
)

var (
	format     = flag.String("format", "words", "Data format to generate (see -list)")
	outputPath = flag.String("output", "var/testdata.log", "Output file path")
	count      = flag.Int64("count", 0, "Lines to generate (0 = format default)")
	vocabSize  = flag.Int("vocab", 100, "Vocabulary size for word formats")
	keyCount   = flag.Int("keys", 10, "Distinct keys for metric formats")
	seed       = flag.Uint64("seed", 0, "Random seed (0 = time-based)")
	list       = flag.Bool("list", false, "List available formats")
)

func main() {
	flag.Parse()

	if *list {
		fmt.Printf("%-12s %s\n", "FORMAT", "DESCRIPTION")
		for _, name := range generator.List() {
			gen, err := generator.Get(name)
			if err != nil {
				continue
			}
			fmt.Printf("%-12s %s\n", name, gen.Description())
		}
		return
	}

	generator.SetVocabSize(*format, *vocabSize)
	generator.SetKeyCount(*format, *keyCount)

	gen, err := generator.Get(*format)
	if err != nil {
		log.Fatalf("%v (try -list)", err)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	gen.Init(rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)))

	total := *count
	if total == 0 {
		total = gen.DefaultCount()
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	file, err := os.Create(*outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i := int64(0); i < total; i++ {
		if err := gen.WriteLine(w); err != nil {
			log.Fatalf("Failed to write line: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}

	fmt.Printf("Wrote %s lines of %s data to %s\n", humanize.Comma(total), *format, *outputPath)
}
