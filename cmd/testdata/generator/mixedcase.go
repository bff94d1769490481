package generator

import (
	"io"
	"math/rand/v2"
	"strings"
)

// MixedCaseGenerator generates one word per line with the spelling
// varied between lower, Title, and UPPER case, the input format for
// the linededup and linefold presets.
type MixedCaseGenerator struct {
	rand *rand.Rand
}

var caseWords = []string{
	"apple", "banana", "cherry", "grape", "lemon", "mango",
	"orange", "peach", "pear", "plum", "berlin", "cairo",
	"dublin", "helsinki", "lisbon", "madrid", "oslo", "prague",
}

func (g *MixedCaseGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *MixedCaseGenerator) WriteLine(w io.Writer) error {
	word := caseWords[g.rand.IntN(len(caseWords))]
	switch g.rand.IntN(3) {
	case 1:
		word = strings.ToUpper(word[:1]) + word[1:]
	case 2:
		word = strings.ToUpper(word)
	}
	_, err := io.WriteString(w, word+"\n")
	return err
}

func (g *MixedCaseGenerator) Description() string {
	return "Words with varied casing, one per line (for linededup, linefold)"
}

func (g *MixedCaseGenerator) DefaultCount() int64 {
	return 5e4 // 50,000 lines with lots of case collisions
}
