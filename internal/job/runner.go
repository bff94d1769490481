package job

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
	"pkg.jsn.cam/fanreduce/pkg/presets"
	"pkg.jsn.cam/fanreduce/pkg/storage"
	"pkg.jsn.cam/fanreduce/pkg/taskdoc"
)

// Runner executes reduction jobs and tracks their records across runs
type Runner struct {
	storage Storage
	docs    *taskdoc.Store

	jobs      map[string]*Job
	lastJobID string

	mu sync.RWMutex
}

// Config holds runner configuration
type Config struct {
	DBPath     string // Path to bbolt database (empty = try JSONDir)
	JSONDir    string // Directory for JSON job files (empty = no persistence)
	TaskDocDir string // When set, a task document is written per finished job
}

// NewRunner creates a new job runner
func NewRunner(cfg Config) (*Runner, error) {
	var store Storage
	switch {
	case cfg.DBPath != "":
		backend, err := storage.NewBoltBackend(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open job database: %w", err)
		}
		store, err = NewStoreBackend(backend)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage: %w", err)
		}
		log.Printf("[RUNNER] Persistence enabled at %s", cfg.DBPath)
	case cfg.JSONDir != "":
		jsonStore, err := NewJSONStore(cfg.JSONDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create JSON store: %w", err)
		}
		store = jsonStore
		log.Printf("[RUNNER] Persistence enabled at %s (JSON files)", cfg.JSONDir)
	default:
		store = NewNoOpStorage()
		log.Printf("[RUNNER] Persistence disabled (no DBPath or JSONDir configured)")
	}

	var docs *taskdoc.Store
	if cfg.TaskDocDir != "" {
		var err error
		docs, err = taskdoc.NewStore(cfg.TaskDocDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open task document store: %w", err)
		}
	}

	r := &Runner{
		storage: store,
		docs:    docs,
		jobs:    make(map[string]*Job),
	}

	if err := r.restore(); err != nil {
		log.Printf("[RUNNER] Warning: Failed to restore state: %v", err)
	}

	log.Printf("[RUNNER] Initialized (%d jobs known)", len(r.jobs))
	return r, nil
}

// Submit validates a spec and records a new pending job
func (r *Runner) Submit(spec Spec) (*Job, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !presets.IsValidPreset(spec.Preset) {
		return nil, fmt.Errorf("%w: %s", fanreduce.ErrUnknownPreset, spec.Preset)
	}

	job := &Job{
		ID:            uuid.New().String(),
		Title:         spec.Title,
		Preset:        spec.Preset,
		InputPath:     spec.InputPath,
		ChunkSize:     spec.ChunkSize,
		Concurrency:   spec.Concurrency,
		MaxRetries:    spec.MaxRetries,
		ItemTimeoutMs: spec.GetItemTimeout().Milliseconds(),
		Status:        StatusPending,
		SchemaVersion: SchemaVersion,
		SubmittedAt:   time.Now(),
	}

	r.mu.Lock()
	r.jobs[job.ID] = job
	snapshot := *job
	r.mu.Unlock()

	r.persistJob(&snapshot)

	log.Printf("[RUNNER] Job %s submitted (preset: %s, input: %s)", job.ID, job.Preset, job.InputPath)
	return &snapshot, nil
}

// GetJob returns a copy of a job record
func (r *Runner) GetJob(jobID string) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, exists := r.jobs[jobID]
	if !exists {
		return Job{}, fanreduce.ErrJobNotFound
	}
	return *job, nil
}

// ListJobs returns copies of all job records, newest first
func (r *Runner) ListJobs() []Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].SubmittedAt.After(jobs[j].SubmittedAt)
	})
	return jobs
}

// DeleteJob removes a job record from memory and storage
func (r *Runner) DeleteJob(jobID string) error {
	r.mu.Lock()
	_, exists := r.jobs[jobID]
	delete(r.jobs, jobID)
	r.mu.Unlock()

	if !exists {
		return fanreduce.ErrJobNotFound
	}
	return r.storage.DeleteJob(jobID)
}

// LastJobID returns the ID of the most recently finished job, or ""
func (r *Runner) LastJobID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastJobID
}

// ArchiveDoc moves a job's task document into the archive directory
// and returns the destination path. Documents exist only for finished
// jobs.
func (r *Runner) ArchiveDoc(jobID string) (string, error) {
	if r.docs == nil {
		return "", fmt.Errorf("task documents not configured")
	}

	r.mu.RLock()
	job, exists := r.jobs[jobID]
	var status Status
	if exists {
		status = job.Status
	}
	r.mu.RUnlock()

	if exists && (status == StatusPending || status == StatusRunning) {
		return "", fmt.Errorf("%w: %s is %s", fanreduce.ErrJobNotCompleted, jobID, status)
	}
	return r.docs.Archive(jobID)
}

// Docs exposes the task document store, or nil when not configured
func (r *Runner) Docs() *taskdoc.Store {
	return r.docs
}

// Close closes the storage connection
func (r *Runner) Close() error {
	return r.storage.Close()
}

// persistJob saves a job record, logging instead of failing: storage
// trouble must not take down a finished reduction.
func (r *Runner) persistJob(job *Job) {
	if err := r.storage.SaveJob(job); err != nil {
		log.Printf("[RUNNER] Warning: Failed to persist job %s: %v", job.ID, err)
	}
}
