package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/MixMaster_Go/internal/logger"
)

var (
	// ErrPoolStopped is returned by Enqueue once Stop has been called.
	ErrPoolStopped = errors.New("worker pool stopped")
	// ErrPoolNotStarted is returned by Enqueue before Start, when no worker
	// would ever drain the queue.
	ErrPoolNotStarted = errors.New("worker pool not started")
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a plain function to the Job interface.
type JobFunc func(ctx context.Context) error

// Process calls f(ctx).
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool is a fixed set of goroutines draining a shared job queue.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	quitOnce sync.Once

	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Workers reports the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// Start launches the workers. Jobs run with ctx unless they carry their own.
// Calling Start twice is a no-op.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	logger.FromContext(ctx).Debug(LogMsgPoolStarted, "workers", p.workers)
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		p.run(ctx, job)
	}
}

func (p *Pool) run(ctx context.Context, job Job) {
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full.
// It gives up when ctx is done or the pool is stopped.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	if !p.started {
		return ErrPoolNotStarted
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop rejects new jobs, lets the workers finish everything already queued
// and waits for them.
func (p *Pool) Stop() {
	p.quitOnce.Do(func() { close(p.quit) })

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
	logger.FromContext(context.Background()).Debug(LogMsgPoolStopped, "workers", p.workers)
}
