package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusV2(t *testing.T) {
	out := "# branch.oid 1234\n" +
		"# branch.head main\n" +
		"1 M. N... 100644 100644 100644 aaaa bbbb staged.go\n" +
		"1 .M N... 100644 100644 100644 aaaa aaaa dirty.go\n" +
		"1 MM N... 100644 100644 100644 aaaa bbbb both.go\n" +
		"1 A. N... 000000 100644 100644 0000 cccc added with spaces.txt\n" +
		"2 R. N... 100644 100644 100644 aaaa aaaa R100 new.go\told.go\n" +
		"u UU N... 100644 100644 100644 100644 aaaa bbbb cccc conflicted.go\n" +
		"? loose.txt\n" +
		"? newdir/\n"

	entries := parseStatusV2(out)
	require.Len(t, entries, 8)

	assert.Equal(t, StatusEntry{Path: "staged.go", Index: 'M', Worktree: '.'}, entries[0])
	assert.Equal(t, StatusEntry{Path: "dirty.go", Index: '.', Worktree: 'M'}, entries[1])
	assert.Equal(t, StatusEntry{Path: "both.go", Index: 'M', Worktree: 'M'}, entries[2])
	assert.Equal(t, "added with spaces.txt", entries[3].Path)
	assert.Equal(t, byte('A'), entries[3].Index)

	assert.Equal(t, "new.go", entries[4].Path)
	assert.Equal(t, "old.go", entries[4].OrigPath)
	assert.Equal(t, byte('R'), entries[4].Index)

	assert.True(t, entries[5].Unmerged)

	assert.True(t, entries[6].Untracked)
	assert.Equal(t, "loose.txt", entries[6].Path)
	assert.Equal(t, "newdir/", entries[7].Path)
}

func TestStatusEntries(t *testing.T) {
	dir := t.TempDir()
	setupGitRepo(t, dir)
	writeFile(t, dir, "committed.txt", "v1")
	commitAll(t, dir, "initial")

	// Staged new file.
	writeFile(t, dir, "staged.txt", "s")
	runGitCommand(t, dir, "add", "staged.txt")
	// Worktree modification.
	writeFile(t, dir, "committed.txt", "v2")
	// Untracked file.
	writeFile(t, dir, "loose.txt", "u")

	repo, err := Open(dir)
	require.NoError(t, err)

	entries, err := repo.StatusEntries(context.Background())
	require.NoError(t, err)

	byPath := map[string]StatusEntry{}
	for _, e := range entries {
		byPath[e.Path] = e
	}

	assert.Equal(t, byte('A'), byPath["staged.txt"].Index)
	assert.Equal(t, byte('M'), byPath["committed.txt"].Worktree)
	assert.True(t, byPath["loose.txt"].Untracked)
}
