package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/config"
	"github.com/traceyt-cree8/gitterm-sub000/dispatch"
	"github.com/traceyt-cree8/gitterm-sub000/logging"
	"github.com/traceyt-cree8/gitterm-sub000/watcher"
)

// pane identifies which listing occupies the left column.
type pane int

const (
	paneStatus pane = iota
	paneTree
)

// viewMode identifies what the right column is showing.
type viewMode int

const (
	viewNothing viewMode = iota
	viewDiff
	viewFile
)

// Model is the bubbletea model for the gitview shell. It owns the tab
// registry, the dispatcher and the watcher; everything it displays comes
// from snapshots merged through dispatch.Tabs.
type Model struct {
	cfg   *config.Config
	theme *Theme
	keys  KeyMap
	help  help.Model

	tabs    *dispatch.Tabs
	disp    *dispatch.Dispatcher
	watch   *watcher.Service
	watchCh chan int

	tab    *dispatch.TabState
	pane   pane
	mode   viewMode
	cursor int

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	log *logrus.Entry
}

// New builds the shell model for a single repository tab.
func New(cfg *config.Config, repoPath string) *Model {
	tabs := dispatch.NewTabs()
	tab := tabs.Open(repoPath)

	watchCh := make(chan int, 8)
	watch := watcher.New(func(tabID int) {
		select {
		case watchCh <- tabID:
		default:
		}
	})

	m := &Model{
		cfg:     cfg,
		theme:   NewTheme(cfg.DarkTheme()),
		keys:    DefaultKeyMap,
		help:    help.New(),
		tabs:    tabs,
		disp:    dispatch.NewDispatcher(4),
		watch:   watch,
		watchCh: watchCh,
		tab:     tab,
		log:     logging.NewLogger("tui"),
	}
	watch.Watch(tab.ID, repoPath)
	return m
}

// Init issues the first collection round and starts the poll timer and the
// two channel listeners.
func (m *Model) Init() tea.Cmd {
	m.submitStatus()
	m.submitTree()
	return tea.Batch(
		tickCmd(m.cfg.PollInterval()),
		m.listenResults(),
		m.listenWatch(),
	)
}
