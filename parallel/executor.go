package parallel

import (
	"errors"
	"iter"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrPoolClosed is returned by Pool.Run after Close.
var ErrPoolClosed = errors.New("parallel: pool is closed")

// Executor runs fn once per worker index in [0, Workers()) and returns only
// after every invocation has finished.
type Executor interface {
	// Workers returns the fixed number of worker slots.
	Workers() int

	// Run invokes fn(w) for each worker slot w and blocks until all return.
	Run(fn func(worker int)) error
}

// DefaultWorkers returns the worker count suggested by the runtime.
func DefaultWorkers() int {
	return max(1, runtime.GOMAXPROCS(0))
}

// RoundRobin yields the items assigned to worker w out of workers slots:
// positions w, w+workers, w+2*workers, ….
func RoundRobin[T any](items []T, workers, w int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if workers < 1 || w < 0 || w >= workers {
			return
		}
		for i := w; i < len(items); i += workers {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// ============================================================================
// Pool
// ============================================================================

type poolTask struct {
	fn     func(int)
	worker int
	wg     *sync.WaitGroup
}

// Pool is a fixed set of long-lived goroutines.
type Pool struct {
	workers int
	tasks   chan poolTask

	mu     sync.RWMutex // guards closed against concurrent Run/Close
	closed bool
}

// NewPool starts a pool with the given number of workers.
// workers < 1 selects DefaultWorkers(). A single-worker pool starts no
// goroutines and runs jobs inline.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = DefaultWorkers()
	}
	p := &Pool{workers: workers}
	if workers == 1 {
		return p
	}

	p.tasks = make(chan poolTask, workers)
	for i := 0; i < workers; i++ {
		go p.loop()
	}

	return p
}

// loop executes tasks until the channel is closed.
func (p *Pool) loop() {
	for t := range p.tasks {
		t.fn(t.worker)
		t.wg.Done()
	}
}

// Workers implements Executor.
func (p *Pool) Workers() int { return p.workers }

// Run implements Executor. Concurrent Run calls are allowed; each waits
// only for its own jobs.
func (p *Pool) Run(fn func(worker int)) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	if p.workers == 1 {
		fn(0)
		return nil
	}

	var wg sync.WaitGroup
	wg.Add(p.workers)
	for w := 0; w < p.workers; w++ {
		p.tasks <- poolTask{fn: fn, worker: w, wg: &wg}
	}
	wg.Wait()

	return nil
}

// Close stops the worker goroutines. It is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.tasks != nil {
		close(p.tasks)
	}
}

// ============================================================================
// Spawner
// ============================================================================

// Spawner forks fresh goroutines on every Run and joins them before returning.
type Spawner struct {
	workers int
}

// NewSpawner returns a Spawner; workers < 1 selects DefaultWorkers().
func NewSpawner(workers int) *Spawner {
	if workers < 1 {
		workers = DefaultWorkers()
	}

	return &Spawner{workers: workers}
}

// Workers implements Executor.
func (s *Spawner) Workers() int { return s.workers }

// Run implements Executor.
func (s *Spawner) Run(fn func(worker int)) error {
	if s.workers == 1 {
		fn(0)
		return nil
	}

	var g errgroup.Group
	for w := 0; w < s.workers; w++ {
		g.Go(func() error {
			fn(w)
			return nil
		})
	}

	return g.Wait()
}
