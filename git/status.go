package git

import (
	"bufio"
	"context"
	"strings"
)

// StatusEntry is one parsed line of porcelain-v2 status output, exposing the
// independent index-relative and worktree-relative status codes.
type StatusEntry struct {
	// Path is the current path, relative to the repository root. Untracked
	// directories keep their trailing slash.
	Path string

	// OrigPath is the pre-rename path for renamed/copied entries.
	OrigPath string

	// Index is the index-vs-HEAD status code ('.', 'A', 'M', 'D', 'R', ...).
	Index byte

	// Worktree is the worktree-vs-index status code.
	Worktree byte

	// Untracked marks paths present in the worktree but absent from the index.
	Untracked bool

	// Unmerged marks conflicted paths.
	Unmerged bool
}

// StatusEntries queries the repository status. Untracked files are included
// but untracked directories are not recursed into, ignored files and
// submodules are excluded, and rename detection is off; these keep polling
// responsive on large trees.
func (r *Repository) StatusEntries(ctx context.Context) ([]StatusEntry, error) {
	out, err := r.runner.Git(ctx, r.root,
		"status", "--porcelain=v2",
		"--untracked-files=normal",
		"--ignore-submodules=all",
		"--no-renames")
	if err != nil {
		return nil, err
	}
	return parseStatusV2(out), nil
}

// parseStatusV2 parses `git status --porcelain=v2` output.
func parseStatusV2(out string) []StatusEntry {
	var entries []StatusEntry
	scanner := bufio.NewScanner(strings.NewReader(out))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}
		switch line[0] {
		case '1':
			// 1 XY sub mH mI mW hH hI path
			parts := strings.SplitN(line, " ", 9)
			if len(parts) < 9 || len(parts[1]) < 2 {
				continue
			}
			entries = append(entries, StatusEntry{
				Path:     parts[8],
				Index:    parts[1][0],
				Worktree: parts[1][1],
			})
		case '2':
			// 2 XY sub mH mI mW hH hI Xscore path<TAB>origPath
			parts := strings.SplitN(line, " ", 10)
			if len(parts) < 10 || len(parts[1]) < 2 {
				continue
			}
			path, orig := parts[9], ""
			if tab := strings.IndexByte(path, '\t'); tab >= 0 {
				orig = path[tab+1:]
				path = path[:tab]
			}
			entries = append(entries, StatusEntry{
				Path:     path,
				OrigPath: orig,
				Index:    parts[1][0],
				Worktree: parts[1][1],
			})
		case 'u':
			// u XY sub m1 m2 m3 mW h1 h2 h3 path
			parts := strings.SplitN(line, " ", 11)
			if len(parts) < 11 || len(parts[1]) < 2 {
				continue
			}
			entries = append(entries, StatusEntry{
				Path:     parts[10],
				Index:    parts[1][0],
				Worktree: parts[1][1],
				Unmerged: true,
			})
		case '?':
			if len(line) > 2 {
				entries = append(entries, StatusEntry{
					Path:      line[2:],
					Index:     '.',
					Worktree:  '.',
					Untracked: true,
				})
			}
		}
	}
	return entries
}
