package job

import (
	"fmt"
	"log"
	"time"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// restore loads persisted job records into memory. Called once from
// NewRunner before any concurrent access.
func (r *Runner) restore() error {
	jobs, err := r.storage.LoadJobs()
	if err != nil {
		return err
	}

	restored := 0
	for id, job := range jobs {
		compatible, err := IsCompatibleSchema(job.SchemaVersion, SchemaVersion)
		if err == nil && !compatible {
			err = fmt.Errorf("%w: %s", fanreduce.ErrIncompatibleSchema, job.SchemaVersion)
		}
		if err != nil {
			log.Printf("[RUNNER] Warning: Skipping job %s: %v", id, err)
			continue
		}

		// A job that was mid-flight when the process died can never
		// finish; its record must not claim to be running forever.
		if job.Status == StatusRunning {
			job.Status = StatusFailed
			job.CompletedAt = time.Now()
			job.Error = "interrupted by runner restart"
			r.persistJob(job)
		}

		r.jobs[id] = job
		restored++
	}

	lastID, err := r.storage.LoadLastJobID()
	if err != nil {
		log.Printf("[RUNNER] Warning: Failed to load last job ID: %v", err)
	} else {
		r.lastJobID = lastID
	}

	if restored > 0 {
		log.Printf("[RUNNER] Restored %d jobs from storage", restored)
	}
	return nil
}
