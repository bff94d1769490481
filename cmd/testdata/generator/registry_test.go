package generator

import (
	"bytes"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"testing"
)

func TestGetUnknownFormat(t *testing.T) {
	if _, err := Get("no-such-format"); err == nil {
		t.Error("Expected error for unknown format, got nil")
	}
}

func TestListIsSorted(t *testing.T) {
	names := List()
	if len(names) == 0 {
		t.Fatal("No generators registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("List() not sorted: %v", names)
	}
}

func TestGeneratorsProduceParseableLines(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			gen, err := Get(name)
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", name, err)
			}
			gen.Init(rand.New(rand.NewPCG(1, 2)))

			var buf bytes.Buffer
			for i := 0; i < 100; i++ {
				if err := gen.WriteLine(&buf); err != nil {
					t.Fatalf("WriteLine() failed: %v", err)
				}
			}

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			if len(lines) != 100 {
				t.Fatalf("Got %d lines, want 100", len(lines))
			}
			for _, line := range lines {
				if line == "" {
					t.Fatal("Generator produced an empty line")
				}
				checkLineFormat(t, name, line)
			}
		})
	}
}

func checkLineFormat(t *testing.T, name, line string) {
	t.Helper()
	switch name {
	case "metrics", "maxvalue":
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			t.Fatalf("Got line %q, want key:value", line)
		}
		if _, err := strconv.ParseFloat(parts[1], 64); err != nil {
			t.Fatalf("Got unparseable value in %q: %v", line, err)
		}
	case "numbers", "numstats":
		if _, err := strconv.ParseFloat(line, 64); err != nil {
			t.Fatalf("Got unparseable number %q: %v", line, err)
		}
	case "mixedcase", "linededup", "linefold":
		if strings.ContainsAny(line, " \t") {
			t.Fatalf("Got multi-word line %q, want one word", line)
		}
	}
}

func TestMetricsRespectsKeyCount(t *testing.T) {
	gen := &MetricsGenerator{KeyCount: 2}
	gen.Init(rand.New(rand.NewPCG(3, 4)))

	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		if err := gen.WriteLine(&buf); err != nil {
			t.Fatalf("WriteLine() failed: %v", err)
		}
	}

	keys := make(map[string]bool)
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		keys[strings.SplitN(line, ":", 2)[0]] = true
	}
	if len(keys) > 2 {
		t.Errorf("Got %d distinct keys, want at most 2", len(keys))
	}
}

func TestMixedCaseVariesSpelling(t *testing.T) {
	gen := &MixedCaseGenerator{}
	gen.Init(rand.New(rand.NewPCG(5, 6)))

	var buf bytes.Buffer
	for i := 0; i < 500; i++ {
		if err := gen.WriteLine(&buf); err != nil {
			t.Fatalf("WriteLine() failed: %v", err)
		}
	}

	folded := make(map[string]map[string]bool)
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		key := strings.ToLower(line)
		if folded[key] == nil {
			folded[key] = make(map[string]bool)
		}
		folded[key][line] = true
	}

	multi := 0
	for _, spellings := range folded {
		if len(spellings) > 1 {
			multi++
		}
	}
	if multi == 0 {
		t.Error("Expected at least one word with multiple spellings in 500 lines")
	}
}
