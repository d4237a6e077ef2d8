package git

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/huimingz/commitkit/internal/log"
)

// Repository reads working tree state through go-git, without spawning git
type Repository struct {
	repo *gogit.Repository
	root string
}

// OpenRepository opens the repository containing dir, searching parent directories
func OpenRepository(dir string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to open repository at %s", dir), ErrCommandFailed)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to open worktree"), ErrCommandFailed)
	}

	return &Repository{repo: repo, root: wt.Filesystem.Root()}, nil
}

// Root returns the absolute path of the working tree
func (r *Repository) Root() string {
	return r.root
}

// Status returns staged, unstaged and untracked paths sorted by name.
// A path modified both in the index and in the worktree is listed twice.
func (r *Repository) Status(ctx context.Context) (*Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to open worktree"), ErrCommandFailed)
	}

	wt.Excludes = append(wt.Excludes, r.excludePatterns()...)

	st, err := wt.Status()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to read status"), ErrCommandFailed)
	}

	paths := make([]string, 0, len(st))
	for p := range st {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	status := &Status{}
	for _, p := range paths {
		fs := st[p]
		if fs.Staging == gogit.Untracked || fs.Worktree == gogit.Untracked {
			status.Untracked = append(status.Untracked, p)
			continue
		}
		if fs.Staging != gogit.Unmodified {
			status.Staged = append(status.Staged, p)
		}
		if fs.Worktree != gogit.Unmodified {
			status.Unstaged = append(status.Unstaged, p)
		}
	}

	return status, nil
}

// CurrentBranch returns the short name of the checked out branch, including
// an unborn branch of an empty repository. Detached heads yield "HEAD".
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	head, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "failed to read HEAD"), ErrCommandFailed)
	}

	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return plumbing.HEAD.String(), nil
}

// excludePatterns returns the ignore rules git applies on top of the
// .gitignore files of the worktree: the system and global excludes files and
// the repository's own core.excludesFile, falling back to
// $XDG_CONFIG_HOME/git/ignore. Unreadable sources are skipped.
func (r *Repository) excludePatterns() []gitignore.Pattern {
	root := osfs.New("/")

	var patterns []gitignore.Pattern
	for _, source := range []struct {
		name string
		load func(fs billy.Filesystem) ([]gitignore.Pattern, error)
	}{
		{"system", gitignore.LoadSystemPatterns},
		{"global", gitignore.LoadGlobalPatterns},
	} {
		ps, err := source.load(root)
		if err != nil {
			log.Debug("Ignoring %s excludes: %v", source.name, err)
			continue
		}
		patterns = append(patterns, ps...)
	}

	var path string
	if cfg, err := r.repo.Config(); err == nil {
		path = expandHome(cfg.Raw.Section("core").Option("excludesfile"))
	}
	if path == "" && len(patterns) == 0 {
		path = defaultExcludesFile()
	}
	if path == "" {
		return patterns
	}

	ps, err := readPatternFile(path)
	if err != nil && !os.IsNotExist(err) {
		log.Debug("Ignoring excludes file %s: %v", path, err)
	}
	return append(patterns, ps...)
}

// defaultExcludesFile is the file git reads when core.excludesFile is unset
func defaultExcludesFile() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "git", "ignore")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "git", "ignore")
	}
	return ""
}

// readPatternFile parses a gitignore style file rooted at the worktree
func readPatternFile(path string) ([]gitignore.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns, scanner.Err()
}

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
