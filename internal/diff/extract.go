// Package diff reads unified diff output produced by git.
package diff

import "strings"

// Extract returns the content of the added lines of a unified diff, trimmed
// and joined with single spaces. File headers ("+++") are not content.
func Extract(diffText string) string {
	var added []string
	for _, line := range strings.Split(diffText, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		added = append(added, strings.TrimSpace(line[1:]))
	}
	return strings.Join(added, " ")
}

// Stats counts added and removed lines of a unified diff
type Stats struct {
	Added   int
	Removed int
}

// CountLines returns the added/removed line counts, ignoring file headers
func CountLines(diffText string) Stats {
	var stats Stats
	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			stats.Added++
		case strings.HasPrefix(line, "-"):
			stats.Removed++
		}
	}
	return stats
}
