package generator

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// NumbersGenerator generates one float per line, the input format for
// the numstats preset.
type NumbersGenerator struct {
	rand *rand.Rand
}

func (g *NumbersGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *NumbersGenerator) WriteLine(w io.Writer) error {
	// Values between -200 and 800 with 3 decimal places
	value := g.rand.Float64()*1000 - 200
	_, err := fmt.Fprintf(w, "%.3f\n", value)
	return err
}

func (g *NumbersGenerator) Description() string {
	return "Plain numbers, one per line (for numstats)"
}

func (g *NumbersGenerator) DefaultCount() int64 {
	return 1e5 // 100,000 lines
}
