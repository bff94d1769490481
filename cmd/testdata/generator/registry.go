package generator

import (
	"fmt"
	"sort"
)

// Registry maps generator names to generator factory functions
// We use factory functions to allow parameterization (e.g., VocabSize)
var Registry = map[string]func() Generator{
	"words":     func() Generator { return &WordsGenerator{VocabSize: 100, WordsPerLine: 8} },
	"wordcount": func() Generator { return &WordsGenerator{VocabSize: 100, WordsPerLine: 8} }, // Same format as words
	"longest":   func() Generator { return &WordsGenerator{VocabSize: 100, WordsPerLine: 8} }, // Same format as words
	"mixedcase": func() Generator { return &MixedCaseGenerator{} },
	"linededup": func() Generator { return &MixedCaseGenerator{} }, // Same format as mixedcase
	"linefold":  func() Generator { return &MixedCaseGenerator{} }, // Same format as mixedcase
	"metrics":   func() Generator { return &MetricsGenerator{KeyCount: 10} },
	"maxvalue":  func() Generator { return &MetricsGenerator{KeyCount: 10} }, // Same format as metrics
	"numbers":   func() Generator { return &NumbersGenerator{} },
	"numstats":  func() Generator { return &NumbersGenerator{} }, // Same format as numbers
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return factory(), nil
}

// List returns all available generator names, sorted
func List() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetVocabSize updates the vocabulary size for word-format generators
func SetVocabSize(name string, size int) {
	switch name {
	case "words", "wordcount", "longest":
		Registry[name] = func() Generator { return &WordsGenerator{VocabSize: size, WordsPerLine: 8} }
	}
}

// SetKeyCount updates the key count for metric-format generators
func SetKeyCount(name string, count int) {
	switch name {
	case "metrics", "maxvalue":
		Registry[name] = func() Generator { return &MetricsGenerator{KeyCount: count} }
	}
}
