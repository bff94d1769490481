package fanreduce

import "errors"

// Sentinel errors for common error conditions
var (
	// Preset-related errors
	ErrUnknownPreset = errors.New("unknown preset")

	// Job-related errors
	ErrJobNotFound     = errors.New("job not found")
	ErrJobNotCompleted = errors.New("job not completed")

	// Storage/schema errors
	ErrIncompatibleSchema = errors.New("incompatible schema version")

	// Task document errors
	ErrDocNotFound = errors.New("task document not found")
)
