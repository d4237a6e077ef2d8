package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrCommandFailed marks every error caused by the git binary or repository
var ErrCommandFailed = errors.New("git command failed")

// IsCommandFailure reports whether err originates from a git invocation
func IsCommandFailure(err error) bool {
	return errors.Is(err, ErrCommandFailed)
}

// Status groups the changed paths of a working tree, relative to its root
type Status struct {
	Staged    []string
	Unstaged  []string
	Untracked []string
}

// All returns every path of the status, staged first, without duplicates
func (s *Status) All() []string {
	seen := make(map[string]bool)
	var all []string
	for _, group := range [][]string{s.Staged, s.Unstaged, s.Untracked} {
		for _, p := range group {
			if !seen[p] {
				seen[p] = true
				all = append(all, p)
			}
		}
	}
	return all
}

// IsEmpty reports whether the working tree has no changes
func (s *Status) IsEmpty() bool {
	return len(s.Staged) == 0 && len(s.Unstaged) == 0 && len(s.Untracked) == 0
}

// Executor defines the interface for git command execution
type Executor interface {
	// Status returns staged, unstaged and untracked paths
	Status(ctx context.Context) (*Status, error)

	// Diff returns the unified diff of one file, staged when cached is set
	Diff(ctx context.Context, file string, cached bool) (string, error)

	// Add stages a file
	Add(ctx context.Context, file string) error

	// Commit executes a git commit with the given message
	Commit(ctx context.Context, message string) error

	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)

	// CreateBranch creates a branch and switches to it
	CreateBranch(ctx context.Context, name string) error
}

// DefaultExecutor is the default implementation of Executor
type DefaultExecutor struct {
	workDir string
	repo    *Repository
}

// NewExecutor creates a new DefaultExecutor rooted at workDir
func NewExecutor(workDir string) *DefaultExecutor {
	return &DefaultExecutor{workDir: workDir}
}

// WorkDir returns the directory git commands run in
func (e *DefaultExecutor) WorkDir() string {
	return e.workDir
}

// runGit runs a git command and returns the output
func (e *DefaultExecutor) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := errors.Wrapf(err, "git %s failed: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
		return "", errors.Mark(wrapped, ErrCommandFailed)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}

// repository opens the go-git view of the working tree on first use
func (e *DefaultExecutor) repository() (*Repository, error) {
	if e.repo != nil {
		return e.repo, nil
	}
	repo, err := OpenRepository(e.workDir)
	if err != nil {
		return nil, err
	}
	e.repo = repo
	return repo, nil
}

// Status returns the current git status
func (e *DefaultExecutor) Status(ctx context.Context) (*Status, error) {
	repo, err := e.repository()
	if err != nil {
		return nil, err
	}
	return repo.Status(ctx)
}

// Diff returns the diff of a single file
func (e *DefaultExecutor) Diff(ctx context.Context, file string, cached bool) (string, error) {
	args := []string{"diff"}
	if cached {
		args = append(args, "--cached")
	}
	args = append(args, "--", file)
	return e.runGit(ctx, args...)
}

// Add stages a file
func (e *DefaultExecutor) Add(ctx context.Context, file string) error {
	_, err := e.runGit(ctx, "add", "--", file)
	return err
}

// Commit executes a git commit with the given message
func (e *DefaultExecutor) Commit(ctx context.Context, message string) error {
	_, err := e.runGit(ctx, "commit", "-m", message)
	return err
}

// CurrentBranch returns the current branch name
func (e *DefaultExecutor) CurrentBranch(ctx context.Context) (string, error) {
	repo, err := e.repository()
	if err != nil {
		return "", err
	}
	return repo.CurrentBranch(ctx)
}

// CreateBranch creates a branch from HEAD and checks it out, keeping local changes
func (e *DefaultExecutor) CreateBranch(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Mark(errors.New("branch name is required"), ErrCommandFailed)
	}
	_, err := e.runGit(ctx, "checkout", "-b", name)
	return err
}
