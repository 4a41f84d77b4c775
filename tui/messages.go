package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/traceyt-cree8/gitterm-sub000/collect"
	"github.com/traceyt-cree8/gitterm-sub000/dispatch"
	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// collectTimeout bounds a single collection; a wedged git invocation must
// not stall the worker pool indefinitely.
const collectTimeout = 15 * time.Second

type tickMsg time.Time

// resultMsg carries one completed collection out of the dispatcher.
type resultMsg struct{ res dispatch.Result }

// resultsClosedMsg signals the dispatcher has drained, during shutdown.
type resultsClosedMsg struct{}

// watchMsg is a debounced filesystem notification for a tab.
type watchMsg struct{ tabID int }

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenResults blocks on the dispatcher's results channel and surfaces the
// next completed collection as a message. Re-issued after every resultMsg.
func (m *Model) listenResults() tea.Cmd {
	return func() tea.Msg {
		res, ok := <-m.disp.Results()
		if !ok {
			return resultsClosedMsg{}
		}
		return resultMsg{res: res}
	}
}

func (m *Model) listenWatch() tea.Cmd {
	return func() tea.Msg {
		return watchMsg{tabID: <-m.watchCh}
	}
}

func (m *Model) submitStatus() {
	tabID, repo := m.tab.ID, m.tab.RepoPath
	m.disp.Submit(func() dispatch.Result {
		ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
		defer cancel()
		return collect.CollectGitStatus(ctx, tabID, repo)
	})
}

func (m *Model) submitTree() {
	tabID, dir := m.tab.ID, m.tab.CurrentDir
	showHidden := m.cfg.ShowHidden
	m.disp.Submit(func() dispatch.Result {
		return collect.CollectFileTree(tabID, dir, showHidden)
	})
}

func (m *Model) submitDiff(path string, staged bool) {
	tabID, repo := m.tab.ID, m.tab.RepoPath
	m.disp.Submit(func() dispatch.Result {
		ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
		defer cancel()
		return collect.CollectDiff(ctx, tabID, repo, path, staged)
	})
}

func (m *Model) submitFileLoad(path string) {
	tabID := m.tab.ID
	dark := m.cfg.DarkTheme()
	limits := m.cfg.Limits
	m.disp.Submit(func() dispatch.Result {
		return collect.CollectFileLoad(tabID, path, dark, limits)
	})
}

// submitSyntax chains highlighting off an accepted file load.
func (m *Model) submitSyntax(load snapshot.FileLoadSnapshot) {
	tabID := m.tab.ID
	dark := m.cfg.DarkTheme()
	maxLines := m.cfg.Limits.SyntaxHighlightLines
	m.disp.Submit(func() dispatch.Result {
		return collect.CollectFileSyntax(tabID, load.Path, load.FileContent, dark, load.FileSignature, maxLines)
	})
}
