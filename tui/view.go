package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/traceyt-cree8/gitterm-sub000/dispatch"
	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

const leftPaneWidth = 36

// listRow is one line of the left column: a section header or a selectable
// status/tree entry.
type listRow struct {
	section string
	entry   *snapshot.FileEntry
	tree    *snapshot.FileTreeEntry
}

func (r listRow) selectable() bool {
	return r.entry != nil || r.tree != nil
}

// leftRows flattens the active pane's listing into display rows.
func (m *Model) leftRows() []listRow {
	if m.pane == paneTree {
		var rows []listRow
		if m.tab.Tree != nil {
			for i := range m.tab.Tree.Entries {
				rows = append(rows, listRow{tree: &m.tab.Tree.Entries[i]})
			}
		}
		return rows
	}

	var rows []listRow
	if m.tab.Status == nil {
		return rows
	}
	appendSection := func(title string, entries []snapshot.FileEntry) {
		if len(entries) == 0 {
			return
		}
		rows = append(rows, listRow{section: title})
		for i := range entries {
			rows = append(rows, listRow{entry: &entries[i]})
		}
	}
	appendSection("Staged", m.tab.Status.Staged)
	appendSection("Unstaged", m.tab.Status.Unstaged)
	appendSection("Untracked", m.tab.Status.Untracked)
	return rows
}

// View renders the shell: a header line, the listing column, the snapshot
// viewport and the help footer.
func (m *Model) View() string {
	if !m.ready {
		return "starting gitview..."
	}

	header := m.renderHeader()
	left := m.renderLeft()
	right := m.viewport.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	footer := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderHeader() string {
	name := m.tab.RepoPath
	branch := ""
	if m.tab.Status != nil {
		if m.tab.Status.RepoName != "" {
			name = m.tab.Status.RepoName
		}
		branch = m.tab.Status.BranchName
	}

	h := m.theme.Header.Render(name)
	if branch != "" {
		h += m.theme.Muted.Render(" on ") + m.theme.Branch.Render(branch)
	}
	if m.pane == paneTree {
		h += m.theme.Muted.Render("  " + m.tab.CurrentDir)
	}
	return h
}

func (m *Model) renderLeft() string {
	rows := m.leftRows()
	var sb strings.Builder

	if len(rows) == 0 {
		if m.pane == paneStatus {
			sb.WriteString(m.theme.Muted.Render("working tree clean"))
		} else {
			sb.WriteString(m.theme.Muted.Render("empty directory"))
		}
	}

	for i, row := range rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch {
		case row.section != "":
			sb.WriteString(m.theme.SectionTitle.Render(row.section))
		case row.entry != nil:
			line := m.statusStyle(row.entry.Status).Render(string(row.entry.Status)) + " " + row.entry.Path
			sb.WriteString(m.cursorStyle(i).Render(truncate(line, leftPaneWidth)))
		case row.tree != nil:
			name := row.tree.Name
			if row.tree.IsDir {
				name += "/"
			}
			sb.WriteString(m.cursorStyle(i).Render(truncate("  "+name, leftPaneWidth)))
		}
	}

	return lipgloss.NewStyle().Width(leftPaneWidth).Render(sb.String())
}

func (m *Model) cursorStyle(i int) lipgloss.Style {
	if i == m.cursor {
		return m.theme.Selected
	}
	return m.theme.Normal
}

func (m *Model) statusStyle(code snapshot.StatusCode) lipgloss.Style {
	switch code {
	case snapshot.StatusAdded:
		return m.theme.StatusAdded
	case snapshot.StatusDeleted:
		return m.theme.StatusDeleted
	case snapshot.StatusUnknown:
		return m.theme.StatusUntracked
	}
	return m.theme.StatusModified
}

func (m *Model) viewportSize() (int, int) {
	w := m.width - leftPaneWidth - 1
	if w < 20 {
		w = 20
	}
	h := m.height - 3
	if h < 5 {
		h = 5
	}
	return w, h
}

// syncViewport re-renders the right pane from the tab's current snapshots.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	switch m.mode {
	case viewDiff:
		if m.tab.Diff != nil {
			m.viewport.SetContent(renderDiff(m.theme, m.tab.Diff))
		}
	case viewFile:
		if m.tab.FileLoad != nil {
			m.viewport.SetContent(renderFile(m.theme, m.tab))
		}
	default:
		m.viewport.SetContent(m.theme.Muted.Render("select a file to see its diff (enter) or content (v)"))
	}
}

// renderDiff turns classified diff lines into styled terminal text, using
// intra-line emphasis where the word pass attached spans.
func renderDiff(theme *Theme, snap *snapshot.DiffSnapshot) string {
	if len(snap.Lines) == 0 {
		return theme.Muted.Render("no changes for " + snap.FilePath)
	}

	var sb strings.Builder
	for i, line := range snap.Lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(renderDiffLine(theme, line))
	}
	return sb.String()
}

func renderDiffLine(theme *Theme, line snapshot.DiffLine) string {
	if line.Type == snapshot.DiffHeader {
		return theme.HunkHeader.Render(line.Content)
	}

	gutter := theme.Muted.Render(fmt.Sprintf("%s %s ", lineNum(line.OldLineNum), lineNum(line.NewLineNum)))

	switch line.Type {
	case snapshot.DiffAddition:
		return gutter + renderChangedLine(theme.Added, theme.AddedEmphasis, "+", line)
	case snapshot.DiffDeletion:
		return gutter + renderChangedLine(theme.Removed, theme.RemovedEmphasis, "-", line)
	}
	return gutter + theme.Context.Render("  "+line.Content)
}

// renderChangedLine emphasizes the changed words when the line carries
// inline spans, and falls back to whole-line coloring when it does not.
func renderChangedLine(base, emphasis lipgloss.Style, marker string, line snapshot.DiffLine) string {
	if len(line.InlineChanges) == 0 {
		return base.Render(marker + " " + line.Content)
	}
	out := base.Render(marker + " ")
	for _, c := range line.InlineChanges {
		if c.Kind == snapshot.ChangeEqual {
			out += base.Render(c.Text)
		} else {
			out += emphasis.Render(c.Text)
		}
	}
	return out
}

func lineNum(n int) string {
	if n == 0 {
		return "    "
	}
	return fmt.Sprintf("%4d", n)
}

// renderFile shows the loaded file: highlighted spans when an accepted
// syntax result matches the load, plain text otherwise, with any preview
// notice on top.
func renderFile(theme *Theme, tab *dispatch.TabState) string {
	load := tab.FileLoad
	if load == nil {
		return ""
	}

	var sb strings.Builder
	if load.FilePreviewNotice != "" {
		sb.WriteString(theme.Notice.Render(load.FilePreviewNotice))
		sb.WriteString("\n\n")
	}

	switch {
	case load.ImagePath != "":
		sb.WriteString(theme.Muted.Render("[image] " + load.ImagePath))

	case load.WebviewContent != "":
		sb.WriteString(theme.Muted.Render("rendered preview available: " + load.Path))

	case load.FileContent != "":
		if syn := tab.FileSyntax; syn != nil && syn.Path == load.Path && len(syn.Lines) > 0 &&
			snapshot.SignaturesMatch(syn.FileSignature, load.FileSignature) {
			sb.WriteString(renderHighlighted(theme, syn.Lines))
		} else {
			sb.WriteString(load.FileContent)
		}

	default:
		if load.FilePreviewNotice == "" {
			sb.WriteString(theme.Muted.Render("nothing to show for " + load.Path))
		}
	}
	return sb.String()
}

func renderHighlighted(theme *Theme, lines []snapshot.HighlightedLine) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, span := range line.Spans {
			style := theme.Normal
			if span.Color != "" {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(span.Color))
			}
			if span.Bold {
				style = style.Bold(true)
			}
			if span.Italic {
				style = style.Italic(true)
			}
			sb.WriteString(style.Render(span.Text))
		}
	}
	return sb.String()
}

func truncate(s string, width int) string {
	if width < 2 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}
