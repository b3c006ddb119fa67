// Package parallel runs horizontal bands of a pixel buffer on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// minBandRows is the smallest band handed to a worker. Smaller bands cost
// more in scheduling than they save.
const minBandRows = 8

// Pool is a fixed set of worker goroutines fed from a shared queue.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu orders submissions against Close: work is only queued under the
	// read lock, so nothing is queued after done is closed.
	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queue:   make(chan func(), max(workers*4, 8)),
		done:    make(chan struct{}),
	}

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case work := <-p.queue:
			work()
		}
	}
}

// drain runs whatever is still queued.
func (p *Pool) drain() {
	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}

// Run executes every item and waits for all of them. After Close the items
// run on the calling goroutine.
func (p *Pool) Run(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for _, fn := range work {
		p.queue <- func() {
			defer wg.Done()
			fn()
		}
	}
	p.mu.RUnlock()

	wg.Wait()
}

// Rows splits [minY, maxY) into contiguous bands, at most one per worker,
// and calls fn for each band concurrently. Bands never overlap, so fn may
// write to its own rows without locking.
func (p *Pool) Rows(minY, maxY int, fn func(y0, y1 int)) {
	n := maxY - minY
	if n <= 0 {
		return
	}
	bands := min(p.workers, (n+minBandRows-1)/minBandRows)
	if bands <= 1 {
		fn(minY, maxY)
		return
	}

	work := make([]func(), 0, bands)
	for i := range bands {
		y0 := minY + n*i/bands
		y1 := minY + n*(i+1)/bands
		work = append(work, func() { fn(y0, y1) })
	}
	p.Run(work)
}

// Close stops the workers after queued work finishes. Close is safe to call
// multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}
