package linefold

import (
	"context"
	"strings"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// LineFoldPreset removes duplicate lines ignoring case. The first-seen
// spelling wins, so "Apple" survives a later "apple".
type LineFoldPreset struct{}

// MapChunk trims lines and drops empty ones. Case is left untouched so
// the reduce can keep the original spelling of the first occurrence.
func (p LineFoldPreset) MapChunk(_ context.Context, lines []string) ([]string, error) {
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

func (p LineFoldPreset) Reduce(outcomes []fanreduce.Outcome[[]string], pc fanreduce.PhaseContext) (fanreduce.Merged[[]string], error) {
	return fanreduce.NewStringDedup(true).Reduce(outcomes, pc)
}

func (p LineFoldPreset) Description() string {
	return "Removes duplicate lines ignoring case, keeping the first-seen spelling"
}
