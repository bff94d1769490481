package wordcount

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// WordCountPreset counts word occurrences across the whole input.
// Chunk outputs are "word<TAB>count" lines; the reduce sums counts per
// word, orders by count descending (ties by word), and appends a
// "total<TAB>N" line.
type WordCountPreset struct{}

// MapChunk counts words within the chunk and emits one line per
// distinct word, in first-seen order.
func (p WordCountPreset) MapChunk(_ context.Context, lines []string) ([]string, error) {
	counts := make(map[string]int)
	var order []string
	for _, line := range lines {
		for _, word := range strings.Fields(line) {
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	out := make([]string, 0, len(order))
	for _, word := range order {
		out = append(out, fmt.Sprintf("%s\t%d", word, counts[word]))
	}
	return out, nil
}

func (p WordCountPreset) Reduce(outcomes []fanreduce.Outcome[[]string], pc fanreduce.PhaseContext) (fanreduce.Merged[[]string], error) {
	typed := fanreduce.ConvertOutcomes(outcomes, parseEntries)

	reducer := fanreduce.NewDeterministic(fanreduce.DedupConfig[entry, string, int]{
		Key: func(e entry) string { return e.Word },
		Merge: func(existing, incoming entry) entry {
			existing.Count += incoming.Count
			return existing
		},
		Less: func(a, b entry) bool {
			if a.Count != b.Count {
				return a.Count > b.Count
			}
			return a.Word < b.Word
		},
		Summarize: func(items []entry) int {
			total := 0
			for _, e := range items {
				total += e.Count
			}
			return total
		},
	})

	merged, err := reducer.Reduce(typed, pc)
	if err != nil {
		return fanreduce.Merged[[]string]{}, err
	}

	out := make([]string, 0, len(merged.Output.Items)+1)
	for _, e := range merged.Output.Items {
		out = append(out, fmt.Sprintf("%s\t%d", e.Word, e.Count))
	}
	if merged.Output.Summary != nil {
		out = append(out, fmt.Sprintf("total\t%d", *merged.Output.Summary))
	}

	return fanreduce.Merged[[]string]{Output: out, Stats: merged.Stats}, nil
}

func (p WordCountPreset) Description() string {
	return "Counts occurrences of each word, sorted by count descending"
}

type entry struct {
	Word  string
	Count int
}

// parseEntries decodes "word<TAB>count" lines, skipping malformed ones.
func parseEntries(lines []string) []entry {
	entries := make([]entry, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		entries = append(entries, entry{Word: parts[0], Count: count})
	}
	return entries
}
