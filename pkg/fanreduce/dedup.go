package fanreduce

import "sort"

// DedupConfig configures a Deterministic strategy.
//
// Key and Merge are required. Merge resolves a key collision and is
// called in encounter order: existing is the item already retained,
// incoming the one just found. A non-commutative Merge therefore sees
// items in the order the scheduler delivered them; the framework does
// not reorder collisions to impose commutativity.
type DedupConfig[T any, K comparable, S any] struct {
	// Key extracts a stable identity from an item.
	Key func(item T) K

	// Merge resolves a collision between two items that share a key.
	Merge func(existing, incoming T) T

	// Less, when non-nil, is a total order applied to the final
	// deduplicated list. When nil, final order is first-seen encounter
	// order (the position is first-seen; the value reflects the final
	// merge).
	Less func(a, b T) bool

	// Summarize, when non-nil, is computed once over the final ordered
	// list and attached alongside it. It may receive an empty list when
	// outcomes exist but no items survive.
	Summarize func(items []T) S
}

// DedupOutput is the payload produced by a Deterministic reduction.
// Summary is nil unless a Summarize function was configured and the
// outcome list was non-empty.
type DedupOutput[T, S any] struct {
	Items   []T
	Summary *S
}

// Deterministic deduplicates items from all successful outcomes by a
// caller-defined key, resolving collisions with a caller-defined merge.
// The result is independent of parallel completion order: any permutation
// of the outcome list that preserves which items succeeded yields the
// same final key set and, for a commutative merge, the same values.
//
// InputCount is the total number of items concatenated before
// deduplication, OutputCount the surviving unique items, and MergedCount
// the collisions resolved.
type Deterministic[T any, K comparable, S any] struct {
	cfg DedupConfig[T, K, S]
}

// NewDeterministic creates a deduplicating strategy from its
// configuration.
func NewDeterministic[T any, K comparable, S any](cfg DedupConfig[T, K, S]) Deterministic[T, K, S] {
	return Deterministic[T, K, S]{cfg: cfg}
}

// Reduce concatenates the item lists of successful outcomes, walks them
// once deduplicating by key, then applies the configured sort and
// summary.
func (d Deterministic[T, K, S]) Reduce(outcomes []Outcome[[]T], _ PhaseContext) (Merged[DedupOutput[T, S]], error) {
	flat := flattenOutputs(outcomes)

	var (
		items       []T
		index       = make(map[K]int)
		mergedCount int
	)

	for _, item := range flat {
		key := d.cfg.Key(item)
		if i, seen := index[key]; seen {
			items[i] = d.cfg.Merge(items[i], item)
			mergedCount++
			continue
		}

		index[key] = len(items)
		items = append(items, item)
	}

	if d.cfg.Less != nil {
		sort.SliceStable(items, func(i, j int) bool {
			return d.cfg.Less(items[i], items[j])
		})
	}

	output := DedupOutput[T, S]{Items: items}

	// No summary for an empty outcome list. With outcomes present, an
	// empty surviving list is passed through to Summarize as-is.
	if d.cfg.Summarize != nil && len(outcomes) > 0 {
		summary := d.cfg.Summarize(items)
		output.Summary = &summary
	}

	return Merged[DedupOutput[T, S]]{
		Output: output,
		Stats: Stats{
			InputCount:  len(flat),
			OutputCount: len(items),
			MergedCount: mergedCount,
		},
	}, nil
}
