package job

import "time"

// Status represents the current state of a job
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job records one reduction job from submission to final result.
type Job struct {
	ID            string `json:"id"`
	Title         string `json:"title,omitempty"`
	Preset        string `json:"preset"`
	InputPath     string `json:"input_path"`
	ChunkSize     int    `json:"chunk_size"`
	Concurrency   int    `json:"concurrency"`
	MaxRetries    int    `json:"max_retries,omitempty"`
	ItemTimeoutMs int64  `json:"item_timeout_ms,omitempty"`
	Status        Status `json:"status"`
	SchemaVersion string `json:"schema_version"`

	// Metadata
	SubmittedAt time.Time `json:"submitted_at"`
	StartedAt   time.Time `json:"started_at,omitempty"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
	Error       string    `json:"error,omitempty"`

	// Map phase
	ExecutionID    string `json:"execution_id,omitempty"`
	MapPhaseMs     int64  `json:"map_phase_ms,omitempty"`
	SuccessfulMaps int    `json:"successful_maps,omitempty"`
	FailedMaps     int    `json:"failed_maps,omitempty"`

	// Reduction stats
	InputCount  int `json:"input_count,omitempty"`
	OutputCount int `json:"output_count,omitempty"`
	MergedCount int `json:"merged_count,omitempty"`

	// Results
	Results []string `json:"results,omitempty"`
}

// Duration returns the wall-clock job duration. Running jobs report
// the time elapsed so far.
func (j *Job) Duration() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	if j.CompletedAt.IsZero() {
		if j.Status == StatusRunning {
			return time.Since(j.StartedAt)
		}
		return 0
	}
	return j.CompletedAt.Sub(j.StartedAt)
}
