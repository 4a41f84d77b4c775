package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceyt-cree8/gitterm-sub000/dispatch"
	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// newTestModel builds a model with registry state but no running
// dispatcher or watcher, enough for the pure listing and render helpers.
func newTestModel(t *testing.T, repoPath string) *Model {
	t.Helper()
	tabs := dispatch.NewTabs()
	return &Model{
		theme: NewTheme(true),
		keys:  DefaultKeyMap,
		tabs:  tabs,
		tab:   tabs.Open(repoPath),
	}
}

func TestLeftRowsStatusSections(t *testing.T) {
	m := newTestModel(t, "/repo")
	m.tab.Status = &snapshot.GitStatusSnapshot{
		TabID: m.tab.ID,
		Staged: []snapshot.FileEntry{
			{Path: "a.go", Status: snapshot.StatusAdded, IsStaged: true},
		},
		Unstaged: []snapshot.FileEntry{
			{Path: "b.go", Status: snapshot.StatusModified},
		},
		Untracked: []snapshot.FileEntry{
			{Path: "c.go", Status: snapshot.StatusUnknown},
		},
	}

	rows := m.leftRows()
	require.Len(t, rows, 6)
	assert.Equal(t, "Staged", rows[0].section)
	assert.Equal(t, "a.go", rows[1].entry.Path)
	assert.Equal(t, "Unstaged", rows[2].section)
	assert.Equal(t, "Untracked", rows[4].section)
	assert.False(t, rows[0].selectable())
	assert.True(t, rows[1].selectable())
}

func TestLeftRowsOmitsEmptySections(t *testing.T) {
	m := newTestModel(t, "/repo")
	m.tab.Status = &snapshot.GitStatusSnapshot{
		TabID: m.tab.ID,
		Untracked: []snapshot.FileEntry{
			{Path: "new.txt", Status: snapshot.StatusUnknown},
		},
	}

	rows := m.leftRows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Untracked", rows[0].section)
}

func TestMoveCursorSkipsSectionHeaders(t *testing.T) {
	m := newTestModel(t, "/repo")
	m.tab.Status = &snapshot.GitStatusSnapshot{
		TabID: m.tab.ID,
		Staged: []snapshot.FileEntry{
			{Path: "a.go", Status: snapshot.StatusAdded, IsStaged: true},
		},
		Unstaged: []snapshot.FileEntry{
			{Path: "b.go", Status: snapshot.StatusModified},
		},
	}
	// rows: [Staged, a.go, Unstaged, b.go]
	m.cursor = 1

	m.moveCursor(1)
	assert.Equal(t, 3, m.cursor, "crossing a section header lands on the next entry")

	m.moveCursor(1)
	assert.Equal(t, 3, m.cursor, "cursor stays put at the end")

	m.moveCursor(-1)
	assert.Equal(t, 1, m.cursor)
}

func TestClampCursorAfterShrinkingList(t *testing.T) {
	m := newTestModel(t, "/repo")
	m.tab.Status = &snapshot.GitStatusSnapshot{
		TabID: m.tab.ID,
		Staged: []snapshot.FileEntry{
			{Path: "a.go", Status: snapshot.StatusAdded, IsStaged: true},
		},
	}
	m.cursor = 9

	m.clampCursor()
	assert.Equal(t, 1, m.cursor, "clamps to the last selectable row")
}

func TestRenderDiffLinePlain(t *testing.T) {
	theme := NewTheme(true)

	add := snapshot.DiffLine{Content: "added text", Type: snapshot.DiffAddition, NewLineNum: 3}
	out := renderDiffLine(theme, add)
	assert.Contains(t, out, "added text")
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "3")

	header := snapshot.DiffLine{Content: "@@ -1,2 +1,2 @@", Type: snapshot.DiffHeader}
	assert.Contains(t, renderDiffLine(theme, header), "@@ -1,2 +1,2 @@")
}

func TestRenderDiffLineInlineSpansCoverContent(t *testing.T) {
	theme := NewTheme(true)
	line := snapshot.DiffLine{
		Content: "foo baz",
		Type:    snapshot.DiffAddition,
		InlineChanges: []snapshot.InlineChange{
			{Kind: snapshot.ChangeEqual, Text: "foo "},
			{Kind: snapshot.ChangeInsert, Text: "baz"},
		},
	}
	out := renderDiffLine(theme, line)
	assert.Contains(t, out, "foo ")
	assert.Contains(t, out, "baz")
}

func TestRenderFilePlainContent(t *testing.T) {
	theme := NewTheme(true)
	tabs := dispatch.NewTabs()
	tab := tabs.Open("/repo")
	tab.FileLoad = &snapshot.FileLoadSnapshot{
		TabID:       tab.ID,
		Path:        "/repo/a.txt",
		FileContent: "hello\nworld\n",
	}

	out := renderFile(theme, tab)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}

func TestRenderFilePrefersMatchingSyntax(t *testing.T) {
	theme := NewTheme(true)
	tabs := dispatch.NewTabs()
	tab := tabs.Open("/repo")
	sig := &snapshot.FileVersionSignature{ModifiedUnixNanos: 1, FileLen: 5}
	tab.FileLoad = &snapshot.FileLoadSnapshot{
		TabID:         tab.ID,
		Path:          "/repo/a.go",
		FileContent:   "plain",
		FileSignature: sig,
	}
	tab.FileSyntax = &snapshot.FileSyntaxSnapshot{
		TabID:         tab.ID,
		Path:          "/repo/a.go",
		FileSignature: sig,
		Lines: []snapshot.HighlightedLine{
			{Spans: []snapshot.StyledSpan{{Text: "styled", Color: "#a6e3a1"}}},
		},
	}

	out := renderFile(theme, tab)
	assert.Contains(t, out, "styled")
	assert.NotContains(t, out, "plain")
}

func TestRenderFileStaleSyntaxFallsBack(t *testing.T) {
	theme := NewTheme(true)
	tabs := dispatch.NewTabs()
	tab := tabs.Open("/repo")
	tab.FileLoad = &snapshot.FileLoadSnapshot{
		TabID:         tab.ID,
		Path:          "/repo/a.go",
		FileContent:   "plain",
		FileSignature: &snapshot.FileVersionSignature{ModifiedUnixNanos: 2, FileLen: 5},
	}
	tab.FileSyntax = &snapshot.FileSyntaxSnapshot{
		TabID:         tab.ID,
		Path:          "/repo/a.go",
		FileSignature: &snapshot.FileVersionSignature{ModifiedUnixNanos: 1, FileLen: 5},
		Lines: []snapshot.HighlightedLine{
			{Spans: []snapshot.StyledSpan{{Text: "styled"}}},
		},
	}

	assert.Contains(t, renderFile(theme, tab), "plain")
}

func TestRenderFileNotice(t *testing.T) {
	theme := NewTheme(true)
	tabs := dispatch.NewTabs()
	tab := tabs.Open("/repo")
	tab.FileLoad = &snapshot.FileLoadSnapshot{
		TabID:             tab.ID,
		Path:              "/repo/big.md",
		FilePreviewNotice: "Inline preview skipped",
	}

	assert.Contains(t, renderFile(theme, tab), "Inline preview skipped")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	out := truncate("a much longer line of text", 10)
	assert.True(t, strings.HasSuffix(out, "…"))
	assert.Equal(t, 10, runewidth.StringWidth(out))

	// multibyte runes must never be split at the cut point
	wide := truncate(strings.Repeat("世界", 8), 10)
	assert.True(t, utf8.ValidString(wide))
	assert.True(t, strings.HasSuffix(wide, "…"))
	assert.LessOrEqual(t, runewidth.StringWidth(wide), 10)

	accented := truncate("café au lait, très long nom de fichier", 10)
	assert.True(t, utf8.ValidString(accented))
	assert.LessOrEqual(t, runewidth.StringWidth(accented), 10)
}
