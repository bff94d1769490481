package fanreduce

// Deduplicatable is the capability an item type can implement to carry
// its own identity and collision behavior: a stable key plus a merge for
// two instances that share it. It is a capability, not a base type; any
// record type can satisfy it.
type Deduplicatable[T any] interface {
	// DedupKey returns the item's stable identity.
	DedupKey() string

	// Merge combines the receiver (the retained item) with an incoming
	// item that has the same key, returning the merged item.
	Merge(incoming T) T
}

// FromDeduplicatable builds a Deterministic strategy for item types that
// implement Deduplicatable. The optional less function orders the final
// list; pass nil to keep first-seen order. Configure a DedupConfig
// directly when a summary is needed.
func FromDeduplicatable[T Deduplicatable[T]](less func(a, b T) bool) Deterministic[T, string, struct{}] {
	return NewDeterministic(DedupConfig[T, string, struct{}]{
		Key:   func(item T) string { return item.DedupKey() },
		Merge: func(existing, incoming T) T { return existing.Merge(incoming) },
		Less:  less,
	})
}
