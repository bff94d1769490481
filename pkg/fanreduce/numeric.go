package fanreduce

// NumericStats is the aggregate record produced by NumericAggregation.
// Min and Max have no mathematically correct empty-input value; they
// default to 0 when Count is 0 and callers must not read meaning into
// them in that case.
type NumericStats struct {
	Sum     float64
	Count   int
	Average float64
	Min     float64
	Max     float64
}

// NumericAggregation folds a flattened list of numbers into sum, count,
// average, min and max. It is a dedicated fold, not a configuration of
// the deduplicating strategy: numbers carry no identity to deduplicate
// by. Negative numbers and zero need no special handling.
//
// InputCount is the number of values considered; OutputCount is 1 when
// any value was seen, 0 otherwise.
type NumericAggregation struct{}

// NewNumericAggregation creates a numeric aggregation strategy.
func NewNumericAggregation() NumericAggregation {
	return NumericAggregation{}
}

// Reduce computes the aggregate record over all numbers from successful
// outcomes. Empty input yields the all-zero record.
func (NumericAggregation) Reduce(outcomes []Outcome[[]float64], _ PhaseContext) (Merged[NumericStats], error) {
	values := flattenOutputs(outcomes)

	var stats NumericStats
	if len(values) > 0 {
		stats.Min = values[0]
		stats.Max = values[0]

		for _, v := range values {
			stats.Sum += v
			if v < stats.Min {
				stats.Min = v
			}
			if v > stats.Max {
				stats.Max = v
			}
		}

		stats.Count = len(values)
		stats.Average = stats.Sum / float64(stats.Count)
	}

	outputCount := 0
	if stats.Count > 0 {
		outputCount = 1
	}

	return Merged[NumericStats]{
		Output: stats,
		Stats: Stats{
			InputCount:  len(values),
			OutputCount: outputCount,
		},
	}, nil
}
