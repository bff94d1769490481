package storage

import (
	"bytes"
	"errors"
	"testing"
)

// backendTestSuite runs the Backend contract tests against any
// implementation.
func backendTestSuite(t *testing.T, newBackend func() (Backend, func(), error)) {
	t.Run("CreateBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		if err := backend.CreateBucket([]byte("jobs")); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}

		exists, err := backend.BucketExists([]byte("jobs"))
		if err != nil {
			t.Fatalf("BucketExists failed: %v", err)
		}
		if !exists {
			t.Error("Bucket should exist after creation")
		}

		// Idempotent
		if err := backend.CreateBucket([]byte("jobs")); err != nil {
			t.Errorf("CreateBucket should be idempotent: %v", err)
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("jobs"))

		key := []byte("job-1")
		value := []byte(`{"status":"completed"}`)
		if err := backend.Put([]byte("jobs"), key, value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := backend.Get([]byte("jobs"), key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Errorf("Get returned %s, want %s", got, value)
		}

		// Non-existent key
		got, err = backend.Get([]byte("jobs"), []byte("nonexistent"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for non-existent key, got %s", got)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("jobs"))
		backend.Put([]byte("jobs"), []byte("job-1"), []byte("v1"))
		backend.Put([]byte("jobs"), []byte("job-1"), []byte("v2"))

		got, err := backend.Get([]byte("jobs"), []byte("job-1"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, []byte("v2")) {
			t.Errorf("Get returned %s, want v2", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("jobs"))
		key := []byte("job-1")
		backend.Put([]byte("jobs"), key, []byte("value"))

		if err := backend.Delete([]byte("jobs"), key); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		got, _ := backend.Get([]byte("jobs"), key)
		if got != nil {
			t.Error("Key should not exist after deletion")
		}
	})

	t.Run("ForEach", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("jobs"))

		expected := map[string]string{
			"job-1": "pending",
			"job-2": "running",
			"job-3": "completed",
		}
		for k, v := range expected {
			backend.Put([]byte("jobs"), []byte(k), []byte(v))
		}

		collected := make(map[string]string)
		err = backend.ForEach([]byte("jobs"), func(k, v []byte) error {
			collected[string(k)] = string(v)
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}

		if len(collected) != len(expected) {
			t.Errorf("ForEach collected %d items, want %d", len(collected), len(expected))
		}
		for k, v := range expected {
			if collected[k] != v {
				t.Errorf("ForEach: key %s = %s, want %s", k, collected[k], v)
			}
		}
	})

	t.Run("ForEachStopsOnError", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("jobs"))
		backend.Put([]byte("jobs"), []byte("a"), []byte("1"))
		backend.Put([]byte("jobs"), []byte("b"), []byte("2"))

		stop := errors.New("stop")
		err = backend.ForEach([]byte("jobs"), func(k, v []byte) error {
			return stop
		})
		if !errors.Is(err, stop) {
			t.Errorf("ForEach error = %v, want the callback error", err)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		if err := backend.Put([]byte("ghost"), []byte("k"), []byte("v")); err == nil {
			t.Error("Put into missing bucket should fail")
		}

		if _, err := backend.Get([]byte("ghost"), []byte("k")); err == nil {
			t.Error("Get from missing bucket should fail")
		}

		if err := backend.ForEach([]byte("ghost"), func(k, v []byte) error { return nil }); err == nil {
			t.Error("ForEach over missing bucket should fail")
		}
	})

	t.Run("StringHelpers", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("meta"))

		if err := PutString(backend, []byte("meta"), "last_job_id", []byte("abc")); err != nil {
			t.Fatalf("PutString failed: %v", err)
		}

		got, err := GetString(backend, []byte("meta"), "last_job_id")
		if err != nil {
			t.Fatalf("GetString failed: %v", err)
		}
		if !bytes.Equal(got, []byte("abc")) {
			t.Errorf("GetString returned %s, want abc", got)
		}

		if err := DeleteString(backend, []byte("meta"), "last_job_id"); err != nil {
			t.Fatalf("DeleteString failed: %v", err)
		}

		got, _ = GetString(backend, []byte("meta"), "last_job_id")
		if got != nil {
			t.Error("Key should not exist after DeleteString")
		}
	})
}
