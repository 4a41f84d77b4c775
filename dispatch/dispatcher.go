// Package dispatch runs collection tasks on a fixed worker pool and merges
// their results into per-tab state. Collectors are pure; all staleness
// handling lives here, at the merge boundary.
package dispatch

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/logging"
)

// Result is one collected snapshot: a snapshot.GitStatusSnapshot,
// FileTreeSnapshot, DiffSnapshot, FileLoadSnapshot or FileSyntaxSnapshot,
// each already carrying the tab id of the request that produced it.
type Result any

// Task produces a single Result. Tasks are never canceled in flight;
// superseded results are discarded when merged.
type Task func() Result

// Dispatcher executes tasks on a fixed-size worker pool and delivers
// results in completion order.
type Dispatcher struct {
	mu      sync.Mutex
	closed  bool
	tasks   chan Task
	results chan Result
	wg      sync.WaitGroup
	log     *logrus.Entry
}

// NewDispatcher starts a pool of the given size. A non-positive size is
// treated as one worker.
func NewDispatcher(workers int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{
		tasks:   make(chan Task, 64),
		results: make(chan Result, 64),
		log:     logging.NewLogger("dispatch"),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	d.log.WithField("workers", workers).Debug("dispatcher started")
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for task := range d.tasks {
		d.results <- task()
	}
}

// Submit enqueues a task for execution. It reports false if the dispatcher
// has been closed or the queue is full, in which case the task is dropped.
// Submit never blocks: a blocking send here would hold the mutex against
// Close and deadlock the interactive loop once the pool saturates.
func (d *Dispatcher) Submit(task Task) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	select {
	case d.tasks <- task:
		return true
	default:
		d.log.Debug("task queue full, dropping task")
		return false
	}
}

// Results returns the channel of completed results. It is closed once
// Close has been called and all in-flight tasks have finished.
func (d *Dispatcher) Results() <-chan Result {
	return d.results
}

// Close stops accepting tasks, waits for in-flight work to drain, then
// closes the results channel. Safe to call more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	d.wg.Wait()
	close(d.results)
	d.log.Debug("dispatcher closed")
}
