package dispatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTabsOpenCloseGet(t *testing.T) {
	tabs := NewTabs()

	a := tabs.Open("/repo/a")
	b := tabs.Open("/repo/b")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "/repo/a", a.CurrentDir)

	assert.Same(t, a, tabs.Get(a.ID))
	tabs.Close(a.ID)
	assert.Nil(t, tabs.Get(a.ID))
	assert.Same(t, b, tabs.Get(b.ID))
}

func TestApplyStatusReplacesWholesale(t *testing.T) {
	tabs := NewTabs()
	tab := tabs.Open("/repo")

	first := snapshot.GitStatusSnapshot{
		TabID:      tab.ID,
		BranchName: "main",
		Staged: []snapshot.FileEntry{
			{Path: "a.go", Status: snapshot.StatusModified, IsStaged: true},
		},
	}
	require.True(t, tabs.Apply(first))
	require.NotNil(t, tab.Status)
	assert.Len(t, tab.Status.Staged, 1)

	second := snapshot.GitStatusSnapshot{TabID: tab.ID, BranchName: "main"}
	require.True(t, tabs.Apply(second))
	assert.Empty(t, tab.Status.Staged, "later snapshot replaces, never merges")
}

func TestApplyDropsResultsForClosedTab(t *testing.T) {
	tabs := NewTabs()
	tab := tabs.Open("/repo")
	tabs.Close(tab.ID)

	assert.False(t, tabs.Apply(snapshot.GitStatusSnapshot{TabID: tab.ID}))
	assert.False(t, tabs.Apply(snapshot.FileTreeSnapshot{TabID: tab.ID}))
	assert.False(t, tabs.Apply(snapshot.DiffSnapshot{TabID: tab.ID}))
	assert.False(t, tabs.Apply(snapshot.FileLoadSnapshot{TabID: tab.ID}))
	assert.False(t, tabs.Apply(snapshot.FileSyntaxSnapshot{TabID: tab.ID}))
}

func TestApplyFileLoadAcceptsCurrentFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n")

	tabs := NewTabs()
	tab := tabs.Open(dir)
	tabs.Update(tab.ID, func(ts *TabState) { ts.ViewingPath = path })

	res := snapshot.FileLoadSnapshot{
		TabID:         tab.ID,
		Path:          path,
		FileContent:   "package main\n",
		FileSignature: snapshot.SignatureFor(path),
	}
	assert.True(t, tabs.Apply(res))
	require.NotNil(t, tab.FileLoad)
	assert.Equal(t, "package main\n", tab.FileLoad.FileContent)
}

func TestApplyFileLoadDroppedWhenViewingPathChanged(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n")

	tabs := NewTabs()
	tab := tabs.Open(dir)
	tabs.Update(tab.ID, func(ts *TabState) { ts.ViewingPath = filepath.Join(dir, "other.go") })

	res := snapshot.FileLoadSnapshot{
		TabID:         tab.ID,
		Path:          path,
		FileSignature: snapshot.SignatureFor(path),
	}
	assert.False(t, tabs.Apply(res))
	assert.Nil(t, tab.FileLoad)
}

func TestApplyFileLoadDroppedWhenFileChangedOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n")

	tabs := NewTabs()
	tab := tabs.Open(dir)
	tabs.Update(tab.ID, func(ts *TabState) { ts.ViewingPath = path })

	stale := snapshot.SignatureFor(path)
	require.NotNil(t, stale)

	// The file grows after collection; the carried signature no longer
	// matches what is on disk, so the result is stale.
	writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")

	res := snapshot.FileLoadSnapshot{
		TabID:         tab.ID,
		Path:          path,
		FileContent:   "package main\n",
		FileSignature: stale,
	}
	assert.False(t, tabs.Apply(res))
	assert.Nil(t, tab.FileLoad)
}

func TestApplyFileSyntaxRequiresMatchingLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n")
	sig := snapshot.SignatureFor(path)

	tabs := NewTabs()
	tab := tabs.Open(dir)
	tabs.Update(tab.ID, func(ts *TabState) { ts.ViewingPath = path })

	syntax := snapshot.FileSyntaxSnapshot{TabID: tab.ID, Path: path, FileSignature: sig}

	// No accepted load yet.
	assert.False(t, tabs.Apply(syntax))

	require.True(t, tabs.Apply(snapshot.FileLoadSnapshot{
		TabID:         tab.ID,
		Path:          path,
		FileSignature: sig,
	}))
	assert.True(t, tabs.Apply(syntax))
	require.NotNil(t, tab.FileSyntax)
}

func TestApplyFileSyntaxDroppedWhenLoadSuperseded(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n")
	oldSig := snapshot.SignatureFor(path)

	tabs := NewTabs()
	tab := tabs.Open(dir)
	tabs.Update(tab.ID, func(ts *TabState) { ts.ViewingPath = path })

	writeFile(t, dir, "main.go", "package main\n\nvar x = 1\n")
	newSig := snapshot.SignatureFor(path)
	require.True(t, tabs.Apply(snapshot.FileLoadSnapshot{
		TabID:         tab.ID,
		Path:          path,
		FileSignature: newSig,
	}))

	// Syntax result derived from the old load arrives late.
	stale := snapshot.FileSyntaxSnapshot{TabID: tab.ID, Path: path, FileSignature: oldSig}
	assert.False(t, tabs.Apply(stale))
	assert.Nil(t, tab.FileSyntax)
}

func TestApplyUnknownResultKind(t *testing.T) {
	tabs := NewTabs()
	tabs.Open("/repo")
	assert.False(t, tabs.Apply("not a snapshot"))
}
