// Package watcher turns filesystem activity under a repository root into
// debounced refresh notifications. It supplements the poll timer rather
// than replacing it, so a failure to watch is logged and otherwise ignored.
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/logging"
)

const defaultDebounce = 200 * time.Millisecond

// Service watches one repository root per tab and calls the emitter with
// the tab id once activity settles.
type Service struct {
	mu       sync.Mutex
	watchers map[int]*fsnotify.Watcher
	timers   map[int]*time.Timer
	emit     func(tabID int)
	debounce time.Duration
	log      *logrus.Entry
}

// New creates a Service that calls emit after each debounced burst of
// filesystem events.
func New(emit func(tabID int)) *Service {
	return &Service{
		watchers: map[int]*fsnotify.Watcher{},
		timers:   map[int]*time.Timer{},
		emit:     emit,
		debounce: defaultDebounce,
		log:      logging.NewLogger("watcher"),
	}
}

// SetDebounce overrides the settle delay. Non-positive values are ignored.
func (s *Service) SetDebounce(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.debounce = d
	}
}

// Watch starts watching the repository root for the given tab. Calling it
// again for the same tab is a no-op. Setup failures are logged and the
// poll timer keeps the tab fresh.
func (s *Service) Watch(tabID int, root string) {
	root = strings.TrimSpace(root)
	if root == "" {
		return
	}

	s.mu.Lock()
	if _, ok := s.watchers[tabID]; ok {
		s.mu.Unlock()
		return
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		s.mu.Unlock()
		s.log.WithField("tab", tabID).WithError(err).Warn("watcher create failed")
		return
	}
	s.watchers[tabID] = w
	s.mu.Unlock()

	if err := w.Add(root); err != nil {
		s.log.WithFields(logrus.Fields{"tab": tabID, "path": root}).WithError(err).Warn("watch root failed")
	}
	// The index and HEAD change on stage/commit without touching the
	// working tree, so the .git dir is watched too and filtered below.
	if gitDir := filepath.Join(root, ".git"); dirExists(gitDir) {
		if err := w.Add(gitDir); err != nil {
			s.log.WithFields(logrus.Fields{"tab": tabID, "path": gitDir}).WithError(err).Debug("watch .git failed")
		}
	}

	s.log.WithFields(logrus.Fields{"tab": tabID, "root": root}).Debug("watching repository")
	go s.observe(tabID, w)
}

// Remove stops watching for the tab.
func (s *Service) Remove(tabID int) {
	s.mu.Lock()
	if t, ok := s.timers[tabID]; ok {
		t.Stop()
		delete(s.timers, tabID)
	}
	w, ok := s.watchers[tabID]
	if ok {
		delete(s.watchers, tabID)
	}
	s.mu.Unlock()
	if ok {
		_ = w.Close()
	}
}

// Stop closes every watcher and cancels pending notifications.
func (s *Service) Stop() {
	s.mu.Lock()
	timers := make([]*time.Timer, 0, len(s.timers))
	for _, t := range s.timers {
		timers = append(timers, t)
	}
	ws := make([]*fsnotify.Watcher, 0, len(s.watchers))
	for _, w := range s.watchers {
		ws = append(ws, w)
	}
	s.timers = map[int]*time.Timer{}
	s.watchers = map[int]*fsnotify.Watcher{}
	s.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
	for _, w := range ws {
		_ = w.Close()
	}
}

func (s *Service) observe(tabID int, w *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ignoredEvent(ev.Name) {
				continue
			}
			s.schedule(tabID)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.log.WithField("tab", tabID).WithError(err).Warn("watcher error")
		}
	}
}

// ignoredEvent filters the .git internals that churn constantly (object
// writes, packed refs, lock files). Only index and HEAD changes matter
// for status.
func ignoredEvent(path string) bool {
	if path == "" {
		return true
	}
	base := filepath.Base(path)
	if strings.HasSuffix(base, ".lock") {
		return true
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir == ".git" {
		return base != "index" && base != "HEAD"
	}
	sep := string(filepath.Separator)
	return strings.Contains(path, sep+".git"+sep)
}

func (s *Service) schedule(tabID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[tabID]; ok {
		t.Stop()
	}
	delay := s.debounce
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		if s.emit != nil {
			s.emit(tabID)
		}
		s.mu.Lock()
		if cur, ok := s.timers[tabID]; ok && cur == t {
			delete(s.timers, tabID)
		}
		s.mu.Unlock()
	})
	s.timers[tabID] = t
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
