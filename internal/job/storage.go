package job

import (
	"fmt"
	"log"

	"pkg.jsn.cam/fanreduce/pkg/storage"
)

var (
	jobsBucket = []byte("jobs")
	metaBucket = []byte("meta")
)

// Storage defines the interface for persisting job records
type Storage interface {
	SaveJob(job *Job) error
	LoadJobs() (map[string]*Job, error)
	DeleteJob(jobID string) error

	SaveLastJobID(jobID string) error
	LoadLastJobID() (string, error)

	Close() error
}

// StoreBackend implements Storage using a storage.Backend
type StoreBackend struct {
	backend storage.Backend
}

// NewStoreBackend creates a job storage with the given backend
func NewStoreBackend(backend storage.Backend) (*StoreBackend, error) {
	s := &StoreBackend{backend: backend}

	for _, bucket := range [][]byte{jobsBucket, metaBucket} {
		if err := s.backend.CreateBucket(bucket); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return s, nil
}

// SaveJob persists a job record
func (s *StoreBackend) SaveJob(job *Job) error {
	data, err := storage.EncodeJSON(job)
	if err != nil {
		return err
	}
	return storage.PutString(s.backend, jobsBucket, job.ID, data)
}

// LoadJobs loads all job records
func (s *StoreBackend) LoadJobs() (map[string]*Job, error) {
	jobs := make(map[string]*Job)

	err := s.backend.ForEach(jobsBucket, func(k, v []byte) error {
		var job Job
		if err := storage.DecodeJSON(v, &job); err != nil {
			log.Printf("[STORAGE] Warning: Failed to decode job %s: %v", k, err)
			return nil // Skip corrupted jobs
		}
		jobs[job.ID] = &job
		return nil
	})

	return jobs, err
}

// DeleteJob deletes a job record
func (s *StoreBackend) DeleteJob(jobID string) error {
	return storage.DeleteString(s.backend, jobsBucket, jobID)
}

// SaveLastJobID persists the most recently finished job ID
func (s *StoreBackend) SaveLastJobID(jobID string) error {
	return storage.PutString(s.backend, metaBucket, "last_job_id", []byte(jobID))
}

// LoadLastJobID loads the most recently finished job ID
func (s *StoreBackend) LoadLastJobID() (string, error) {
	data, err := storage.GetString(s.backend, metaBucket, "last_job_id")
	if err != nil {
		return "", err
	}
	if data == nil {
		return "", nil // No job finished yet
	}
	return string(data), nil
}

// Close closes the storage backend
func (s *StoreBackend) Close() error {
	return s.backend.Close()
}

// NewNoOpStorage creates a storage that forgets everything on exit
// (memory backend).
func NewNoOpStorage() Storage {
	backend := storage.NewMemoryBackend()
	s, _ := NewStoreBackend(backend)
	return s
}
