package job

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Spec is a YAML job specification, the file-based alternative to CLI
// flags.
type Spec struct {
	Preset      string `yaml:"preset"`
	InputPath   string `yaml:"input"`
	Title       string `yaml:"title,omitempty"`
	ChunkSize   int    `yaml:"chunk_size"`
	Concurrency int    `yaml:"concurrency"`
	MaxRetries  int    `yaml:"max_retries"`
	ItemTimeout string `yaml:"item_timeout"` // e.g. "30s"; empty = none
}

// DefaultSpec returns a spec with the default execution parameters.
func DefaultSpec() Spec {
	return Spec{
		ChunkSize:   100,
		Concurrency: 4,
	}
}

// LoadSpec reads a YAML job spec. Absent fields keep their defaults.
func LoadSpec(path string) (Spec, error) {
	spec := DefaultSpec()

	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("failed to read job spec: %w", err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("failed to parse job spec: %w", err)
	}

	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Validate checks the required fields.
func (s Spec) Validate() error {
	if s.Preset == "" {
		return errors.New("job spec missing preset")
	}
	if s.InputPath == "" {
		return errors.New("job spec missing input")
	}
	return nil
}

// GetItemTimeout returns the per-item timeout as a duration, or zero
// when unset or unparseable.
func (s Spec) GetItemTimeout() time.Duration {
	if s.ItemTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(s.ItemTimeout)
	if err != nil {
		return 0
	}
	return d
}
