package registry

import (
	"path/filepath"
	"strings"
)

// FilterByName filters test cases by name pattern using wildcard matching.
// Supports patterns like "*Division*" or "Addition"; an empty pattern
// returns all cases.
func FilterByName(cases []TestCase, pattern string) []TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []TestCase

	for _, tc := range cases {
		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, tc.Name)
		if err == nil && matched {
			filtered = append(filtered, tc)
			continue
		}

		// If the pattern contains wildcards but filepath.Match didn't match,
		// fall back to a substring match on the non-wildcard parts
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(tc.Name, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, tc)
			}
			continue
		}

		// No wildcards: simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(tc.Name, pattern) {
			filtered = append(filtered, tc)
		}
	}

	return filtered
}
