package job

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
	"pkg.jsn.cam/fanreduce/pkg/pipeline"
	"pkg.jsn.cam/fanreduce/pkg/presets"
	"pkg.jsn.cam/fanreduce/pkg/taskdoc"
)

// Execute runs a pending job through the map and reduce phases and
// returns the completed record. onProgress may be nil.
func (r *Runner) Execute(ctx context.Context, jobID string, onProgress func(done, total int)) (*Job, error) {
	r.mu.Lock()
	job, exists := r.jobs[jobID]
	if !exists {
		r.mu.Unlock()
		return nil, fanreduce.ErrJobNotFound
	}
	preset := presets.GetPreset(job.Preset)
	if preset == nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", fanreduce.ErrUnknownPreset, job.Preset)
	}
	job.Status = StatusRunning
	job.StartedAt = time.Now()
	snapshot := *job
	r.mu.Unlock()

	r.persistJob(&snapshot)
	log.Printf("[RUNNER] Job %s started (preset: %s)", job.ID, job.Preset)

	items, err := pipeline.ChunkItems(ctx, snapshot.InputPath, snapshot.ChunkSize)
	if err != nil {
		return nil, r.failJob(jobID, fmt.Errorf("chunk input: %w", err))
	}

	cfg := pipeline.Config{
		MaxConcurrency: snapshot.Concurrency,
		ItemTimeout:    time.Duration(snapshot.ItemTimeoutMs) * time.Millisecond,
		MaxRetries:     snapshot.MaxRetries,
		OnProgress:     onProgress,
	}

	merged, pc, err := pipeline.Run(ctx, cfg, items, preset.MapChunk, preset)
	if err != nil {
		return nil, r.failJob(jobID, err)
	}

	r.mu.Lock()
	job.Status = StatusCompleted
	job.CompletedAt = time.Now()
	job.ExecutionID = pc.ExecutionID
	job.MapPhaseMs = pc.MapPhaseTime.Milliseconds()
	job.SuccessfulMaps = pc.SuccessfulMaps
	job.FailedMaps = pc.FailedMaps
	job.InputCount = merged.Stats.InputCount
	job.OutputCount = merged.Stats.OutputCount
	job.MergedCount = merged.Stats.MergedCount
	job.Results = merged.Output
	snapshot = *job
	r.lastJobID = job.ID
	r.mu.Unlock()

	r.persistJob(&snapshot)
	if err := r.storage.SaveLastJobID(snapshot.ID); err != nil {
		log.Printf("[RUNNER] Warning: Failed to persist last job ID: %v", err)
	}
	r.writeTaskDoc(&snapshot)

	log.Printf("[RUNNER] Job %s completed (%d results, %d/%d maps ok)",
		snapshot.ID, len(snapshot.Results), snapshot.SuccessfulMaps, snapshot.SuccessfulMaps+snapshot.FailedMaps)
	return &snapshot, nil
}

// failJob marks a job failed, persists it, and returns the cause so
// callers can propagate it.
func (r *Runner) failJob(jobID string, cause error) error {
	r.mu.Lock()
	job, exists := r.jobs[jobID]
	if !exists {
		r.mu.Unlock()
		return cause
	}
	job.Status = StatusFailed
	job.CompletedAt = time.Now()
	job.Error = cause.Error()
	snapshot := *job
	r.mu.Unlock()

	r.persistJob(&snapshot)
	r.writeTaskDoc(&snapshot)
	log.Printf("[RUNNER] Job %s failed: %v", snapshot.ID, cause)
	return cause
}

// writeTaskDoc records a finished job as a markdown task document.
// Skipped when no document store is configured.
func (r *Runner) writeTaskDoc(job *Job) {
	if r.docs == nil {
		return
	}

	title := job.Title
	if title == "" {
		title = fmt.Sprintf("%s over %s", job.Preset, filepath.Base(job.InputPath))
	}

	doc := taskdoc.Doc{
		Meta: taskdoc.Meta{
			ID:      job.ID,
			Title:   title,
			Preset:  job.Preset,
			Status:  string(job.Status),
			Created: job.SubmittedAt,
			Updated: time.Now(),
		},
		Body: formatDocBody(job),
	}

	if err := r.docs.Save(doc); err != nil {
		log.Printf("[TASKDOC] Warning: Failed to save document for job %s: %v", job.ID, err)
	}
}

func formatDocBody(job *Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Job %s\n\n", job.ID)
	fmt.Fprintf(&b, "- Preset: %s\n", job.Preset)
	fmt.Fprintf(&b, "- Input: %s\n", job.InputPath)
	fmt.Fprintf(&b, "- Status: %s\n", job.Status)
	if job.Error != "" {
		fmt.Fprintf(&b, "- Error: %s\n", job.Error)
	}
	if job.Status == StatusCompleted {
		fmt.Fprintf(&b, "- Duration: %s\n", job.Duration().Round(time.Millisecond))
		fmt.Fprintf(&b, "- Maps: %d ok, %d failed\n", job.SuccessfulMaps, job.FailedMaps)
		fmt.Fprintf(&b, "- Stats: %d in, %d out, %d merged\n", job.InputCount, job.OutputCount, job.MergedCount)
		fmt.Fprintf(&b, "\n## Results (%d lines)\n\n", len(job.Results))
		for _, line := range job.Results {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}
	return b.String()
}
