package collect

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/git"
	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// CollectGitStatus queries the repository at repoPath and categorizes every
// changed path. When no repository can be opened or discovered, the snapshot
// carries IsGitRepo=false and empty lists.
func CollectGitStatus(ctx context.Context, tabID int, repoPath string) snapshot.GitStatusSnapshot {
	started := time.Now()
	snap := snapshot.GitStatusSnapshot{
		TabID:      tabID,
		RepoName:   repoDisplayName(repoPath),
		RepoPath:   repoPath,
		BranchName: "main",
	}

	repo, err := git.Open(repoPath)
	if err == nil {
		snap.IsGitRepo = true
		if branch, err := repo.HeadBranch(); err == nil {
			snap.BranchName = branch
		}
		if entries, err := repo.StatusEntries(ctx); err == nil {
			for _, e := range entries {
				categorize(&snap, e)
			}
		}
	}

	log.WithFields(logrus.Fields{
		"tab":     tabID,
		"repo":    repoPath,
		"git":     snap.IsGitRepo,
		"changed": len(snap.Staged) + len(snap.Unstaged) + len(snap.Untracked),
		"took_ms": time.Since(started).Milliseconds(),
	}).Debug("git status collected")

	return snap
}

// categorize places a status entry into the staged/unstaged/untracked lists.
// Membership is independent per list: a path staged in the index and then
// modified again in the worktree appears in both.
func categorize(snap *snapshot.GitStatusSnapshot, e git.StatusEntry) {
	switch e.Index {
	case 'A', 'M', 'D', 'R':
		snap.Staged = append(snap.Staged, snapshot.FileEntry{
			Path:     e.Path,
			Status:   statusCode(e.Index),
			IsStaged: true,
		})
	}

	switch e.Worktree {
	case 'M', 'D', 'R':
		snap.Unstaged = append(snap.Unstaged, snapshot.FileEntry{
			Path:   e.Path,
			Status: statusCode(e.Worktree),
		})
	}

	if e.Untracked {
		snap.Untracked = append(snap.Untracked, snapshot.FileEntry{
			Path:   e.Path,
			Status: snapshot.StatusUnknown,
		})
	}
}

func statusCode(code byte) snapshot.StatusCode {
	switch code {
	case 'A':
		return snapshot.StatusAdded
	case 'M':
		return snapshot.StatusModified
	case 'D':
		return snapshot.StatusDeleted
	case 'R':
		return snapshot.StatusRenamed
	}
	return snapshot.StatusUnknown
}

func repoDisplayName(repoPath string) string {
	name := filepath.Base(repoPath)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "repo"
	}
	return name
}
