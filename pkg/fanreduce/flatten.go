package fanreduce

// Flatten concatenates the list outputs of all successful outcomes into
// one flat list. Relative arrival order is preserved (list A's items come
// before list B's if A appeared earlier in the outcome list); there is no
// cross-item ordering guarantee beyond that.
//
// InputCount is the sum of the per-item list lengths, not the number of
// outcomes. Item granularity is the unit meaningful downstream.
// OutputCount equals InputCount since flatten filters nothing once an
// item is included.
type Flatten[T any] struct{}

// NewFlatten creates a flattening strategy.
func NewFlatten[T any]() Flatten[T] {
	return Flatten[T]{}
}

// Reduce concatenates successful list outputs. Outcomes with empty lists
// contribute zero items without being treated as errors.
func (Flatten[T]) Reduce(outcomes []Outcome[[]T], _ PhaseContext) (Merged[[]T], error) {
	flat := flattenOutputs(outcomes)

	return Merged[[]T]{
		Output: flat,
		Stats: Stats{
			InputCount:  len(flat),
			OutputCount: len(flat),
		},
	}, nil
}

// flattenOutputs concatenates successful list payloads in outcome order.
// Shared by Flatten and the deduplicating strategies, which all operate
// at item granularity.
func flattenOutputs[T any](outcomes []Outcome[[]T]) []T {
	var flat []T
	for _, o := range outcomes {
		if o.Success {
			flat = append(flat, o.Output...)
		}
	}
	return flat
}
