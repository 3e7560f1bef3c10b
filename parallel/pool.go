// Package parallel runs independent conversion jobs on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool dispatches jobs to workers. With a single worker jobs run inline on
// the caller's goroutine.
type Pool struct {
	wg      sync.WaitGroup
	workers int
	jobs    chan func()
	close   func()
}

// Start launches numWorkers workers; values below 1 mean GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		close:   func() {},
	}

	if numWorkers > 1 {
		pool.jobs = make(chan func(), numWorkers)
		for range numWorkers {
			pool.wg.Go(func() {
				for job := range pool.jobs {
					job()
				}
			})
		}
		pool.close = sync.OnceFunc(func() { close(pool.jobs) })
	}

	return pool
}

func (p *Pool) Workers() int { return p.workers }

// Do queues job, blocking while every worker is busy and the queue is full.
// It must not be called after Wait.
func (p *Pool) Do(job func()) {
	if p.jobs == nil {
		job()
		return
	}
	p.jobs <- job
}

// Wait closes the pool and blocks until every queued job finished. It is
// safe to call more than once.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}
