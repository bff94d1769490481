package numstats

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// NumStatsPreset computes sum, count, average, min and max over all
// numeric input lines. Non-numeric lines are dropped during map.
type NumStatsPreset struct{}

func (p NumStatsPreset) MapChunk(_ context.Context, lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := strconv.ParseFloat(line, 64); err != nil {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func (p NumStatsPreset) Reduce(outcomes []fanreduce.Outcome[[]string], pc fanreduce.PhaseContext) (fanreduce.Merged[[]string], error) {
	typed := fanreduce.ConvertOutcomes(outcomes, parseNumbers)

	merged, err := fanreduce.NewNumericAggregation().Reduce(typed, pc)
	if err != nil {
		return fanreduce.Merged[[]string]{}, err
	}

	stats := merged.Output
	out := []string{
		fmt.Sprintf("sum\t%s", formatNumber(stats.Sum)),
		fmt.Sprintf("count\t%d", stats.Count),
		fmt.Sprintf("average\t%s", formatNumber(stats.Average)),
		fmt.Sprintf("min\t%s", formatNumber(stats.Min)),
		fmt.Sprintf("max\t%s", formatNumber(stats.Max)),
	}

	return fanreduce.Merged[[]string]{Output: out, Stats: merged.Stats}, nil
}

func (p NumStatsPreset) Description() string {
	return "Computes sum, count, average, min and max over numeric lines"
}

func parseNumbers(lines []string) []float64 {
	values := make([]float64, 0, len(lines))
	for _, line := range lines {
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
