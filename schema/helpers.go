package schema

import "strings"

// SlugName derives the filesystem-safe form of an athlete name used in
// chart filenames: spaces become underscores, nothing else changes.
func SlugName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// ChartFileName returns the deterministic chart filename for an athlete.
func ChartFileName(name string) string {
	return ChartFilePrefix + SlugName(name) + ChartFileExt
}
