package fanreduce

import "time"

// Outcome is the result of one parallel map work item.
type Outcome[T any] struct {
	WorkItemID    string
	Success       bool
	Output        T             // only meaningful when Success is true
	ExecutionTime time.Duration // informational, never used by reduction logic
}

// PhaseContext describes the map phase that produced an outcome list.
// Strategies read it for statistics propagation, never for control flow.
type PhaseContext struct {
	ExecutionID    string
	MapPhaseTime   time.Duration
	SuccessfulMaps int
	FailedMaps     int
}

// Stats reports what a reduction did with its inputs. The meaning of
// InputCount and OutputCount varies by strategy; each strategy documents
// its own definition.
type Stats struct {
	InputCount  int
	OutputCount int
	MergedCount int // inputs collapsed away by deduplication

	// UsedAIReduce is reserved for a higher pipeline stage that may layer
	// a non-deterministic reduction on top. Deterministic strategies
	// always report false.
	UsedAIReduce bool
}

// Merged is the result of a reduction: the merged payload plus stats.
type Merged[R any] struct {
	Output R
	Stats  Stats
}

// Reducer merges an unordered collection of per-item outcomes into a
// single result. Implementations must never read Output of a failed
// outcome and must treat an empty outcome list as a valid input.
//
// The built-in strategies never return a non-nil error; the error slot
// exists for custom strategies layered by consumers.
type Reducer[T, R any] interface {
	Reduce(outcomes []Outcome[T], pc PhaseContext) (Merged[R], error)
}

// ConvertOutcomes retypes an outcome list, applying convert to the
// payload of each successful outcome. Failed outcomes keep their
// metadata and a zero payload; convert is never called for them.
func ConvertOutcomes[T, U any](outcomes []Outcome[T], convert func(T) U) []Outcome[U] {
	converted := make([]Outcome[U], len(outcomes))
	for i, o := range outcomes {
		converted[i] = Outcome[U]{
			WorkItemID:    o.WorkItemID,
			Success:       o.Success,
			ExecutionTime: o.ExecutionTime,
		}
		if o.Success {
			converted[i].Output = convert(o.Output)
		}
	}
	return converted
}

// successfulOutputs extracts the payloads of successful outcomes in
// scheduler-delivered order.
func successfulOutputs[T any](outcomes []Outcome[T]) []T {
	var outputs []T
	for _, o := range outcomes {
		if o.Success {
			outputs = append(outputs, o.Output)
		}
	}
	return outputs
}
