package lines

import (
	"context"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// LinesPreset passes mapped lines through unchanged and concatenates
// all chunk outputs in delivered order.
type LinesPreset struct{}

func (p LinesPreset) MapChunk(_ context.Context, lines []string) ([]string, error) {
	return lines, nil
}

func (p LinesPreset) Reduce(outcomes []fanreduce.Outcome[[]string], pc fanreduce.PhaseContext) (fanreduce.Merged[[]string], error) {
	return fanreduce.NewFlatten[string]().Reduce(outcomes, pc)
}

func (p LinesPreset) Description() string {
	return "Concatenates all chunk lines in delivered order"
}
