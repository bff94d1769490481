package longest

import (
	"context"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// LongestPreset finds the single longest line in the input. Ties keep
// the earlier line.
type LongestPreset struct{}

// MapChunk emits only the longest line of the chunk.
func (p LongestPreset) MapChunk(_ context.Context, lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	longest := lines[0]
	for _, line := range lines[1:] {
		if len(line) > len(longest) {
			longest = line
		}
	}
	return []string{longest}, nil
}

func (p LongestPreset) Reduce(outcomes []fanreduce.Outcome[[]string], pc fanreduce.PhaseContext) (fanreduce.Merged[[]string], error) {
	reducer := fanreduce.NewAggregate(func(outputs [][]string) string {
		longest := ""
		for _, lines := range outputs {
			for _, line := range lines {
				if len(line) > len(longest) {
					longest = line
				}
			}
		}
		return longest
	}, "")

	merged, err := reducer.Reduce(outcomes, pc)
	if err != nil {
		return fanreduce.Merged[[]string]{}, err
	}

	return fanreduce.Merged[[]string]{
		Output: []string{merged.Output},
		Stats:  merged.Stats,
	}, nil
}

func (p LongestPreset) Description() string {
	return "Finds the longest line in the input"
}
