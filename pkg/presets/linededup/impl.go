package linededup

import (
	"context"
	"strings"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// LineDedupPreset removes exact duplicate lines, keeping the first
// occurrence. Input: arbitrary text, one entry per line.
type LineDedupPreset struct{}

// MapChunk trims lines and drops empty ones.
func (p LineDedupPreset) MapChunk(_ context.Context, lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func (p LineDedupPreset) Reduce(outcomes []fanreduce.Outcome[[]string], pc fanreduce.PhaseContext) (fanreduce.Merged[[]string], error) {
	return fanreduce.NewStringDedup(false).Reduce(outcomes, pc)
}

func (p LineDedupPreset) Description() string {
	return "Removes duplicate lines, keeping the first occurrence (case-sensitive)"
}
