package fanreduce

import "strings"

// StringDedup deduplicates plain string payloads: the key is the string
// itself, or its lower-cased form when case-insensitive. The first-seen
// copy is kept, output order is first-seen order, and no summary is
// produced.
//
// MergedCount is InputCount minus OutputCount (duplicates removed),
// reported directly rather than tracked per collision.
type StringDedup struct {
	caseInsensitive bool
}

// NewStringDedup creates a string deduplication strategy. With
// caseInsensitive set, strings differing only in case collapse into the
// first-seen spelling.
func NewStringDedup(caseInsensitive bool) StringDedup {
	return StringDedup{caseInsensitive: caseInsensitive}
}

// Reduce keeps the first occurrence of each distinct string.
func (s StringDedup) Reduce(outcomes []Outcome[[]string], _ PhaseContext) (Merged[[]string], error) {
	flat := flattenOutputs(outcomes)

	var (
		kept []string
		seen = make(map[string]struct{})
	)

	for _, str := range flat {
		key := str
		if s.caseInsensitive {
			key = strings.ToLower(str)
		}

		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		kept = append(kept, str)
	}

	return Merged[[]string]{
		Output: kept,
		Stats: Stats{
			InputCount:  len(flat),
			OutputCount: len(kept),
			MergedCount: len(flat) - len(kept),
		},
	}, nil
}
