package pipeline

import (
	"context"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// Preset is a named strategy bundle: a map function over chunks of
// input lines paired with the reduction that merges the per-chunk
// outputs into the final line list.
type Preset interface {
	// MapChunk transforms one chunk of input lines into output lines.
	MapChunk(ctx context.Context, lines []string) ([]string, error)

	// Reduce merges all chunk outcomes into the final result.
	Reduce(outcomes []fanreduce.Outcome[[]string], pc fanreduce.PhaseContext) (fanreduce.Merged[[]string], error)

	Description() string
}
