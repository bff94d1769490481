package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestBoltBackend(t *testing.T) {
	backendTestSuite(t, func() (Backend, func(), error) {
		dbPath := filepath.Join(t.TempDir(), "test.db")

		backend, err := NewBoltBackend(dbPath)
		if err != nil {
			return nil, nil, err
		}

		return backend, func() { backend.Close() }, nil
	})
}

func TestBoltBackend_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "persist.db")

	backend, err := NewBoltBackend(dbPath)
	if err != nil {
		t.Fatalf("NewBoltBackend failed: %v", err)
	}

	backend.CreateBucket([]byte("jobs"))
	if err := backend.Put([]byte("jobs"), []byte("job-1"), []byte("completed")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := backend.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewBoltBackend(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get([]byte("jobs"), []byte("job-1"))
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if !bytes.Equal(got, []byte("completed")) {
		t.Errorf("Got %s after reopen, want completed", got)
	}
}

func TestBoltBackend_CreatesParentDirectory(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	backend, err := NewBoltBackend(dbPath)
	if err != nil {
		t.Fatalf("NewBoltBackend should create parent directories: %v", err)
	}
	backend.Close()
}
