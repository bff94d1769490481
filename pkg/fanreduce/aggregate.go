package fanreduce

// Aggregate folds the full list of successful outputs into one aggregate
// value with a caller-supplied function. The fold sees the whole list at
// once; it is applied exactly once per reduction, not pairwise.
//
// InputCount is the number of successful outcomes folded. OutputCount is
// always 1: a single aggregate value is produced whether or not there
// were any inputs.
type Aggregate[T, R any] struct {
	fold func(outputs []T) R
	def  R
}

// NewAggregate creates an aggregating strategy. The default value is
// returned when there are zero successful outputs, without invoking the
// fold function, so fold does not have to handle the empty case.
func NewAggregate[T, R any](fold func(outputs []T) R, def R) Aggregate[T, R] {
	return Aggregate[T, R]{fold: fold, def: def}
}

// Reduce applies the fold once over the successful outputs.
func (a Aggregate[T, R]) Reduce(outcomes []Outcome[T], _ PhaseContext) (Merged[R], error) {
	outputs := successfulOutputs(outcomes)

	output := a.def
	if len(outputs) > 0 {
		output = a.fold(outputs)
	}

	return Merged[R]{
		Output: output,
		Stats: Stats{
			InputCount:  len(outputs),
			OutputCount: 1,
		},
	}, nil
}
