package storage

// Backend is a bucketed key-value store. All operations work with raw
// []byte; callers choose their own serialization (the job store uses
// JSON via EncodeJSON/DecodeJSON).
type Backend interface {
	// Bucket operations
	CreateBucket(name []byte) error
	BucketExists(name []byte) (bool, error)

	// KV operations within buckets
	Put(bucket, key, value []byte) error
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error

	// Iteration
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	// Lifecycle
	Close() error
}

// String-based convenience wrappers to avoid constant []byte conversions

// PutString stores a value under a string key.
func PutString(b Backend, bucket []byte, key string, value []byte) error {
	return b.Put(bucket, []byte(key), value)
}

// GetString retrieves a value by string key.
func GetString(b Backend, bucket []byte, key string) ([]byte, error) {
	return b.Get(bucket, []byte(key))
}

// DeleteString removes a value by string key.
func DeleteString(b Backend, bucket []byte, key string) error {
	return b.Delete(bucket, []byte(key))
}
