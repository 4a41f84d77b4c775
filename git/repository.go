// Package git is the read-only repository abstraction behind the collectors:
// open/discover, head branch name, categorized status entries and single-file
// patches. Branch and open/discover queries go through go-git; status and
// patch queries shell out to the git binary, whose porcelain output is the
// stable interface for exactly these use cases.
package git

import (
	"context"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/traceyt-cree8/gitterm-sub000/command"
	"github.com/traceyt-cree8/gitterm-sub000/errors"
)

// Repository is a handle to an opened repository. All methods are read-only
// queries; a Repository is safe for concurrent use.
type Repository struct {
	root   string
	runner *command.Runner
}

// Discover walks upward from path until a directory containing .git is found.
func Discover(path string) (string, error) {
	start, err := filepath.Abs(path)
	if err != nil {
		return "", errors.RepoUnavailable(path, err)
	}
	if fi, err := os.Stat(start); err == nil && !fi.IsDir() {
		start = filepath.Dir(start)
	}
	cur := start
	for {
		if _, err := os.Stat(filepath.Join(cur, ".git")); err == nil {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", errors.RepoUnavailable(path, os.ErrNotExist)
		}
		cur = parent
	}
}

// Open opens the repository at path, discovering the root upward when path
// is inside a working tree.
func Open(path string) (*Repository, error) {
	root, err := Discover(path)
	if err != nil {
		return nil, err
	}
	return &Repository{root: root, runner: command.NewRunner()}, nil
}

// OpenWithRunner opens a repository using a custom command runner. Tests use
// this to substitute the executor.
func OpenWithRunner(path string, runner *command.Runner) (*Repository, error) {
	root, err := Discover(path)
	if err != nil {
		return nil, err
	}
	return &Repository{root: root, runner: runner}, nil
}

// Root returns the repository's working-tree root.
func (r *Repository) Root() string { return r.root }

// Name returns the repository's display name (the root directory's base).
func (r *Repository) Name() string { return filepath.Base(r.root) }

// HeadBranch returns the short name of the checked-out branch, or the commit
// hash when HEAD is detached.
func (r *Repository) HeadBranch() (string, error) {
	repo, err := gogit.PlainOpen(r.root)
	if err != nil {
		return "", errors.RepoUnavailable(r.root, err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeRepoUnavailable, "failed to resolve HEAD")
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String(), nil
}

// IsUntracked reports whether path (relative to the repository root) is new
// in the working tree and absent from the index. A file inside an untracked
// directory counts: shallow status listing reports the directory only.
func (r *Repository) IsUntracked(ctx context.Context, path string) (bool, error) {
	entries, err := r.StatusEntries(ctx)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if !e.Untracked {
			continue
		}
		if e.Path == path {
			return true, nil
		}
		if len(e.Path) > 0 && e.Path[len(e.Path)-1] == '/' && len(path) > len(e.Path) && path[:len(e.Path)] == e.Path {
			return true, nil
		}
	}
	return false, nil
}
