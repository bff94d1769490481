package job

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// JSONStore implements Storage with one <id>.json file per job,
// written atomically via temp file and rename. It is the humanly
// inspectable alternative to the bolt-backed store.
type JSONStore struct {
	dir string
}

// NewJSONStore opens a JSON job store rooted at dir, creating it if
// needed.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create job store directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// SaveJob persists a job record to <id>.json
func (s *JSONStore) SaveJob(job *Job) error {
	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".job-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.jobPath(job.ID))
}

// LoadJobs loads all job records, skipping corrupted files
func (s *JSONStore) LoadJobs() (map[string]*Job, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	jobs := make(map[string]*Job)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			log.Printf("[STORAGE] Warning: Failed to read job file %s: %v", entry.Name(), err)
			continue
		}

		var job Job
		if err := json.Unmarshal(data, &job); err != nil {
			log.Printf("[STORAGE] Warning: Skipping corrupted job file %s: %v", entry.Name(), err)
			continue
		}
		jobs[job.ID] = &job
	}

	return jobs, nil
}

// DeleteJob deletes a job record. Deleting a missing record is not an
// error.
func (s *JSONStore) DeleteJob(jobID string) error {
	err := os.Remove(s.jobPath(jobID))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// SaveLastJobID persists the most recently finished job ID
func (s *JSONStore) SaveLastJobID(jobID string) error {
	return os.WriteFile(filepath.Join(s.dir, "last_job_id"), []byte(jobID), 0644)
}

// LoadLastJobID loads the most recently finished job ID
func (s *JSONStore) LoadLastJobID() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, "last_job_id"))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op; files are closed after every operation.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) jobPath(jobID string) string {
	return filepath.Join(s.dir, jobID+".json")
}
