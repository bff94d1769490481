package maxvalue

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// MaxValuePreset keeps the largest value seen for each key.
// Input format: "key:value" per line (e.g., "temperature:72.5")
type MaxValuePreset struct{}

// MapChunk parses key:value lines, keeps the per-chunk maximum for each
// key and emits normalized "key:value" lines in first-seen key order.
// Malformed lines are skipped.
func (p MaxValuePreset) MapChunk(_ context.Context, lines []string) ([]string, error) {
	maxima := make(map[string]float64)
	var order []string
	for _, line := range lines {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		if existing, seen := maxima[key]; !seen || value > existing {
			if !seen {
				order = append(order, key)
			}
			maxima[key] = value
		}
	}

	out := make([]string, 0, len(order))
	for _, key := range order {
		out = append(out, formatMetric(key, maxima[key]))
	}
	return out, nil
}

func (p MaxValuePreset) Reduce(outcomes []fanreduce.Outcome[[]string], pc fanreduce.PhaseContext) (fanreduce.Merged[[]string], error) {
	typed := fanreduce.ConvertOutcomes(outcomes, parseMetrics)

	reducer := fanreduce.NewDeterministic(fanreduce.DedupConfig[metric, string, struct{}]{
		Key: func(m metric) string { return m.Key },
		Merge: func(existing, incoming metric) metric {
			if incoming.Value > existing.Value {
				return incoming
			}
			return existing
		},
		Less: func(a, b metric) bool {
			if a.Value != b.Value {
				return a.Value > b.Value
			}
			return a.Key < b.Key
		},
	})

	merged, err := reducer.Reduce(typed, pc)
	if err != nil {
		return fanreduce.Merged[[]string]{}, err
	}

	out := make([]string, 0, len(merged.Output.Items))
	for _, m := range merged.Output.Items {
		out = append(out, formatMetric(m.Key, m.Value))
	}

	return fanreduce.Merged[[]string]{Output: out, Stats: merged.Stats}, nil
}

func (p MaxValuePreset) Description() string {
	return "Finds the maximum numeric value for each key (format: key:value)"
}

type metric struct {
	Key   string
	Value float64
}

// parseMetrics decodes normalized "key:value" lines produced by
// MapChunk, skipping anything malformed.
func parseMetrics(lines []string) []metric {
	metrics := make([]metric, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		value, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		metrics = append(metrics, metric{Key: parts[0], Value: value})
	}
	return metrics
}

func formatMetric(key string, value float64) string {
	return fmt.Sprintf("%s:%s", key, strconv.FormatFloat(value, 'f', -1, 64))
}
