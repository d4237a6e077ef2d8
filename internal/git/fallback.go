package git

import (
	"context"

	"github.com/huimingz/commitkit/internal/log"
)

// StatusOrEmpty returns the status, or an empty one after logging the failure
func StatusOrEmpty(ctx context.Context, e Executor) *Status {
	status, err := e.Status(ctx)
	if err != nil {
		log.Warn("could not read repository status: %v", err)
		return &Status{}
	}
	return status
}

// BranchOrDefault returns the current branch, or def after logging the failure
func BranchOrDefault(ctx context.Context, e Executor, def string) string {
	branch, err := e.CurrentBranch(ctx)
	if err != nil || branch == "" {
		if err != nil {
			log.Warn("could not resolve current branch: %v", err)
		}
		return def
	}
	return branch
}

// AddAll stages each file and returns the ones that were added.
// Failures are reported per file and never stop the batch.
func AddAll(ctx context.Context, e Executor, files []string) []string {
	var added []string
	for _, f := range files {
		if err := e.Add(ctx, f); err != nil {
			log.Warn("failed to add %s: %v", f, err)
			continue
		}
		added = append(added, f)
	}
	return added
}
