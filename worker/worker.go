package worker

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/blocksupport/oerror"
)

// Pool runs submitted functions on a fixed amount of goroutines. A panicking function is reported to sentry
// and does not take its worker down.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// NewPool starts a pool with n workers. If n is not positive, one worker per CPU is started.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.queue {
		run(f)
	}
}

func run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(oerror.New("worker job crashed: %v", err))
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// Submit queues f, blocking until a worker accepts it or ctx is done.
func (p *Pool) Submit(ctx context.Context, f func()) error {
	select {
	case p.queue <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work and waits for queued functions to finish. Submit must not be called after Close.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
}
