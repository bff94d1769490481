package fanreduce

// Identity returns the outputs of all successful outcomes as-is,
// preserving scheduler-delivered order. Parallel completion order is not
// guaranteed upstream and this strategy makes no attempt to restore any
// particular order.
//
// InputCount is the total number of outcomes received; OutputCount is the
// number of successful ones.
type Identity[T any] struct{}

// NewIdentity creates an identity (pass-through) strategy.
func NewIdentity[T any]() Identity[T] {
	return Identity[T]{}
}

// Reduce filters out failed outcomes and returns the surviving payloads.
func (Identity[T]) Reduce(outcomes []Outcome[T], _ PhaseContext) (Merged[[]T], error) {
	outputs := successfulOutputs(outcomes)

	return Merged[[]T]{
		Output: outputs,
		Stats: Stats{
			InputCount:  len(outcomes),
			OutputCount: len(outputs),
		},
	}, nil
}
