// Package prompt renders deterministic work descriptions for handing
// map and reduce steps to external tools or humans. The templates are
// plain text; nothing here talks to a network.
package prompt

import (
	"fmt"
	"strings"
)

const mapTemplate = `# Map Task

Preset: %s
Goal: %s

Process every input line below according to the preset and print one
output line per result, in order, with no commentary. When you are
done, print the completion marker on its own line.

## Input (%d lines)

%s

## Completion marker

%s
`

const reduceTemplate = `# Reduce Task

Preset: %s
Goal: %s

Below are the outputs of %d map tasks. Merge them into a single result
according to the preset and print the final lines, in order, with no
commentary. When you are done, print the completion marker on its own
line.

%s## Completion marker

%s
`

// Sentinel is the marker an external tool must print as its last line
// so IsComplete can detect a finished response.
const Sentinel = "=== FANREDUCE COMPLETE ==="

// BuildMapPrompt renders the work description for one map chunk.
func BuildMapPrompt(preset, description string, lines []string) string {
	return fmt.Sprintf(mapTemplate, preset, description, len(lines), strings.Join(lines, "\n"), Sentinel)
}

// BuildReducePrompt renders the work description for merging all chunk
// outputs. Each chunk gets its own numbered section.
func BuildReducePrompt(preset, description string, chunkOutputs [][]string) string {
	var sections strings.Builder
	for i, output := range chunkOutputs {
		fmt.Fprintf(&sections, "## Map output %d (%d lines)\n\n%s\n\n", i+1, len(output), strings.Join(output, "\n"))
	}
	return fmt.Sprintf(reduceTemplate, preset, description, len(chunkOutputs), sections.String(), Sentinel)
}

// IsComplete reports whether an external tool's output contains the
// completion marker.
func IsComplete(output string) bool {
	return strings.Contains(output, Sentinel)
}
