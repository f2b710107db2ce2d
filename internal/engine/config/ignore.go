package config

import (
	"path/filepath"
)

// FilterIgnored returns the paths that match none of the patterns.
// Patterns use filepath.Match glob syntax and are matched against both the
// full path and the base name, so "*.log" also drops "build/out.log".
func FilterIgnored(paths, patterns []string) []string {
	if len(patterns) == 0 {
		return paths
	}

	var result []string
	for _, p := range paths {
		if !matchesPattern(p, patterns) {
			result = append(result, p)
		}
	}
	return result
}

// matchesPattern returns true if the file matches any of the given glob patterns.
func matchesPattern(file string, patterns []string) bool {
	base := filepath.Base(file)
	for _, p := range patterns {
		if matched, _ := filepath.Match(p, file); matched {
			return true
		}
		if matched, _ := filepath.Match(p, base); matched {
			return true
		}
	}
	return false
}
