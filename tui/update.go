package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/traceyt-cree8/gitterm-sub000/dispatch"
	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		vw, vh := m.viewportSize()
		if !m.ready {
			m.viewport = viewport.New(vw, vh)
			m.ready = true
		} else {
			m.viewport.Width = vw
			m.viewport.Height = vh
		}
		m.syncViewport()
		return m, nil

	case tickMsg:
		m.submitStatus()
		return m, tickCmd(m.cfg.PollInterval())

	case watchMsg:
		if msg.tabID == m.tab.ID {
			m.submitStatus()
			m.submitTree()
		}
		return m, m.listenWatch()

	case resultMsg:
		if m.tabs.Apply(msg.res) {
			if load, ok := msg.res.(snapshot.FileLoadSnapshot); ok && load.FileContent != "" {
				m.submitSyntax(load)
			}
			m.clampCursor()
			m.syncViewport()
		}
		return m, m.listenResults()

	case resultsClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.watch.Stop()
		go m.disp.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.ToggleTree):
		if m.pane == paneStatus {
			m.pane = paneTree
		} else {
			m.pane = paneStatus
		}
		m.cursor = 0
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.submitStatus()
		m.submitTree()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.ascendTree()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.activateRow()
		return m, nil

	case key.Matches(msg, m.keys.ViewFile):
		m.viewSelectedFile()
		return m, nil
	}

	return m, nil
}

// activateRow acts on the row under the cursor: status entries get a diff
// request, tree directories are descended into, tree files are loaded.
func (m *Model) activateRow() {
	row, ok := m.currentRow()
	if !ok {
		return
	}

	switch {
	case row.entry != nil:
		entry := *row.entry
		m.tabs.Update(m.tab.ID, func(t *dispatch.TabState) {
			t.SelectedFile = entry.Path
			t.SelectedIsStaged = entry.IsStaged
		})
		m.mode = viewDiff
		m.submitDiff(entry.Path, entry.IsStaged)

	case row.tree != nil && row.tree.IsDir:
		m.tabs.Update(m.tab.ID, func(t *dispatch.TabState) {
			t.CurrentDir = row.tree.Path
		})
		m.cursor = 0
		m.submitTree()

	case row.tree != nil:
		m.openFile(row.tree.Path)
	}
}

// viewSelectedFile loads the file under the cursor into the right pane.
func (m *Model) viewSelectedFile() {
	row, ok := m.currentRow()
	if !ok {
		return
	}
	switch {
	case row.entry != nil:
		m.openFile(filepath.Join(m.tab.RepoPath, row.entry.Path))
	case row.tree != nil && !row.tree.IsDir:
		m.openFile(row.tree.Path)
	}
}

func (m *Model) openFile(path string) {
	m.tabs.Update(m.tab.ID, func(t *dispatch.TabState) {
		t.ViewingPath = path
	})
	m.mode = viewFile
	m.submitFileLoad(path)
}

func (m *Model) ascendTree() {
	if m.pane != paneTree {
		return
	}
	cur := m.tab.CurrentDir
	if cur == m.tab.RepoPath {
		return
	}
	parent := filepath.Dir(cur)
	m.tabs.Update(m.tab.ID, func(t *dispatch.TabState) {
		t.CurrentDir = parent
	})
	m.cursor = 0
	m.submitTree()
}

// moveCursor advances the cursor by delta, skipping section headers.
func (m *Model) moveCursor(delta int) {
	rows := m.leftRows()
	i := m.cursor + delta
	for i >= 0 && i < len(rows) && !rows[i].selectable() {
		i += delta
	}
	if i >= 0 && i < len(rows) {
		m.cursor = i
	}
}

// clampCursor keeps the cursor on a selectable row after the listing
// changes underneath it.
func (m *Model) clampCursor() {
	rows := m.leftRows()
	if len(rows) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if !rows[m.cursor].selectable() {
		for i := m.cursor; i < len(rows); i++ {
			if rows[i].selectable() {
				m.cursor = i
				return
			}
		}
		for i := m.cursor; i >= 0; i-- {
			if rows[i].selectable() {
				m.cursor = i
				return
			}
		}
	}
}

func (m *Model) currentRow() (listRow, bool) {
	rows := m.leftRows()
	if m.cursor < 0 || m.cursor >= len(rows) || !rows[m.cursor].selectable() {
		return listRow{}, false
	}
	return rows[m.cursor], true
}
