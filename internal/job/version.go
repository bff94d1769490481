package job

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// SchemaVersion is stamped into every persisted job record.
const SchemaVersion = "v1.0.0"

// IsCompatibleSchema checks whether a stored record's schema version
// can be read by this build.
// Compatibility rules:
// - Major version must match exactly.
// - Minor and patch versions can differ.
func IsCompatibleSchema(stored, current string) (bool, error) {
	if !semver.IsValid(stored) {
		return false, fmt.Errorf("invalid stored schema version: %s", stored)
	}
	if !semver.IsValid(current) {
		return false, fmt.Errorf("invalid current schema version: %s", current)
	}

	return semver.Major(stored) == semver.Major(current), nil
}
