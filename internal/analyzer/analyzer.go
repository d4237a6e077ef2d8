// Package analyzer turns a change set into the text and file category
// summary consumed by the message generators.
package analyzer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/huimingz/commitkit/internal/diff"
	"github.com/huimingz/commitkit/internal/log"
	"github.com/huimingz/commitkit/internal/taxonomy"
)

// DiffSource returns the unified diff of one file
type DiffSource interface {
	Diff(ctx context.Context, file string, cached bool) (string, error)
}

// Analysis summarizes a change set
type Analysis struct {
	// Text is the added content of every staged diff, space separated
	Text string
	// Dominant is the most frequent file category, first seen on ties
	Dominant taxonomy.FileCategory
	// Counts holds the number of existing files per category
	Counts map[taxonomy.FileCategory]int
	// Stats totals the added and removed lines
	Stats diff.Stats
}

// Analyzer reads staged diffs and classifies files
type Analyzer struct {
	diffs DiffSource
	fs    afero.Fs
	root  string
}

// New creates an Analyzer. Paths are resolved against root on fs.
func New(diffs DiffSource, fs afero.Fs, root string) *Analyzer {
	return &Analyzer{diffs: diffs, fs: fs, root: root}
}

// Analyze inspects files. Missing files are skipped and a failing diff
// counts as empty, both with a warning.
func (a *Analyzer) Analyze(ctx context.Context, files []string) Analysis {
	result := Analysis{
		Dominant: taxonomy.CategoryOther,
		Counts:   make(map[taxonomy.FileCategory]int),
	}

	var order []taxonomy.FileCategory
	var texts []string
	for _, file := range files {
		exists, err := afero.Exists(a.fs, a.resolve(file))
		if err != nil || !exists {
			log.Warn("Skipping %s: file not found", file)
			continue
		}

		category := taxonomy.Categorize(file)
		if result.Counts[category] == 0 {
			order = append(order, category)
		}
		result.Counts[category]++

		diffText, err := a.diffs.Diff(ctx, file, true)
		if err != nil {
			log.Warn("Failed to read diff of %s: %v", file, err)
			diffText = ""
		}

		stats := diff.CountLines(diffText)
		result.Stats.Added += stats.Added
		result.Stats.Removed += stats.Removed

		texts = append(texts, diff.Extract(diffText))
	}

	best := 0
	for _, category := range order {
		if n := result.Counts[category]; n > best {
			best = n
			result.Dominant = category
		}
	}

	result.Text = strings.TrimSpace(strings.Join(texts, " "))
	log.DebugAnalysis(len(files), result.Dominant.String(), result.Stats.Added, result.Stats.Removed)
	return result
}

func (a *Analyzer) resolve(file string) string {
	if a.root == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(a.root, file)
}
