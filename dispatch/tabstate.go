package dispatch

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/logging"
	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// TabState aggregates the latest accepted snapshot of each kind for one
// open repository tab, together with the selection the user is acting on.
// Snapshots are replaced wholesale; no field-level merging happens here.
type TabState struct {
	ID       int
	RepoPath string

	CurrentDir       string
	SelectedFile     string
	SelectedIsStaged bool
	ViewingPath      string

	Status     *snapshot.GitStatusSnapshot
	Tree       *snapshot.FileTreeSnapshot
	Diff       *snapshot.DiffSnapshot
	FileLoad   *snapshot.FileLoadSnapshot
	FileSyntax *snapshot.FileSyntaxSnapshot
}

// Tabs is the registry of open tabs. It is safe for concurrent use; the
// merge path and the shell's event loop both go through it.
type Tabs struct {
	mu     sync.RWMutex
	nextID int
	tabs   map[int]*TabState
	log    *logrus.Entry
}

// NewTabs creates an empty registry.
func NewTabs() *Tabs {
	return &Tabs{
		nextID: 1,
		tabs:   make(map[int]*TabState),
		log:    logging.NewLogger("tabs"),
	}
}

// Open registers a new tab rooted at repoPath and returns it.
func (t *Tabs) Open(repoPath string) *TabState {
	t.mu.Lock()
	defer t.mu.Unlock()

	tab := &TabState{
		ID:         t.nextID,
		RepoPath:   repoPath,
		CurrentDir: repoPath,
	}
	t.nextID++
	t.tabs[tab.ID] = tab
	t.log.WithFields(logrus.Fields{"tab": tab.ID, "repo": repoPath}).Debug("tab opened")
	return tab
}

// Close removes the tab. Results still in flight for it are dropped at
// merge time.
func (t *Tabs) Close(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.tabs, id)
	t.log.WithField("tab", id).Debug("tab closed")
}

// Get returns the tab with the given id, or nil.
func (t *Tabs) Get(id int) *TabState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tabs[id]
}

// Update runs fn against the tab under the registry lock, so selection
// changes and merges never interleave. No-op for unknown ids.
func (t *Tabs) Update(id int, fn func(*TabState)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tab, ok := t.tabs[id]; ok {
		fn(tab)
	}
}

// Apply merges one collected result into the registry and reports whether
// it was accepted. Results for closed tabs are dropped. Status, tree and
// diff snapshots always replace the previous one. File-load results are
// accepted only while the tab is still viewing the same path and the file
// on disk still matches the signature captured at collection time; syntax
// results are additionally checked against the load they were derived from.
func (t *Tabs) Apply(res Result) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch s := res.(type) {
	case snapshot.GitStatusSnapshot:
		tab, ok := t.tabs[s.TabID]
		if !ok {
			return t.drop(s.TabID, "status", "tab closed")
		}
		tab.Status = &s

	case snapshot.FileTreeSnapshot:
		tab, ok := t.tabs[s.TabID]
		if !ok {
			return t.drop(s.TabID, "tree", "tab closed")
		}
		tab.Tree = &s

	case snapshot.DiffSnapshot:
		tab, ok := t.tabs[s.TabID]
		if !ok {
			return t.drop(s.TabID, "diff", "tab closed")
		}
		tab.Diff = &s

	case snapshot.FileLoadSnapshot:
		tab, ok := t.tabs[s.TabID]
		if !ok {
			return t.drop(s.TabID, "file_load", "tab closed")
		}
		if s.Path != tab.ViewingPath {
			return t.drop(s.TabID, "file_load", "viewing path changed")
		}
		if !snapshot.SignaturesMatch(s.FileSignature, snapshot.SignatureFor(s.Path)) {
			return t.drop(s.TabID, "file_load", "file changed on disk")
		}
		tab.FileLoad = &s

	case snapshot.FileSyntaxSnapshot:
		tab, ok := t.tabs[s.TabID]
		if !ok {
			return t.drop(s.TabID, "file_syntax", "tab closed")
		}
		if tab.FileLoad == nil || s.Path != tab.FileLoad.Path {
			return t.drop(s.TabID, "file_syntax", "no matching file load")
		}
		if !snapshot.SignaturesMatch(s.FileSignature, tab.FileLoad.FileSignature) {
			return t.drop(s.TabID, "file_syntax", "load superseded")
		}
		tab.FileSyntax = &s

	default:
		t.log.WithField("type", fmt.Sprintf("%T", res)).Warn("unknown result kind")
		return false
	}
	return true
}

func (t *Tabs) drop(tabID int, kind, reason string) bool {
	t.log.WithFields(logrus.Fields{
		"tab":    tabID,
		"kind":   kind,
		"reason": reason,
	}).Debug("stale result dropped")
	return false
}
