package generator

import (
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
)

// WordsGenerator generates lines of space-separated words, the input
// format for the wordcount, lines, and longest presets.
type WordsGenerator struct {
	VocabSize    int
	WordsPerLine int
	rand         *rand.Rand
	linePool     [][]byte // Pre-generated complete lines
}

var baseWords = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"time", "flies", "like", "an", "arrow", "fruit", "banana",
	"server", "request", "response", "cache", "miss", "hit", "retry",
	"queue", "worker", "chunk", "merge", "stream", "batch", "commit",
	"index", "shard", "replica", "leader", "follower", "quorum",
	"read", "write", "flush", "sync", "scan",
}

const linePoolSize = 10000 // Pre-generate this many unique lines

func (g *WordsGenerator) Init(r *rand.Rand) {
	g.rand = r

	vocab := make([]string, g.VocabSize)
	for i := range vocab {
		if i < len(baseWords) {
			vocab[i] = baseWords[i]
		} else {
			vocab[i] = baseWords[i%len(baseWords)] + strconv.Itoa(i/len(baseWords))
		}
	}

	// Pre-generate a pool of complete lines
	g.linePool = make([][]byte, linePoolSize)
	for i := 0; i < linePoolSize; i++ {
		n := 3 + r.IntN(g.WordsPerLine)
		words := make([]string, n)
		for j := range words {
			words[j] = vocab[r.IntN(len(vocab))]
		}
		g.linePool[i] = []byte(strings.Join(words, " ") + "\n")
	}
}

func (g *WordsGenerator) WriteLine(w io.Writer) error {
	// Pick a random pre-generated line and write it
	line := g.linePool[g.rand.IntN(linePoolSize)]
	_, err := w.Write(line)
	return err
}

func (g *WordsGenerator) Description() string {
	return "Text lines of space-separated words (for wordcount, lines, longest)"
}

func (g *WordsGenerator) DefaultCount() int64 {
	return 1e4 // 10,000 lines
}
