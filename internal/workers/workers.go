package workers

import (
	"context"
	"sync"
)

// Group runs workers and tasks on goroutines that share one context.
// Stop cancels that context and blocks until every goroutine has returned.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// NewGroup creates a Group whose context is derived from parent.
func NewGroup(parent context.Context) *Group {
	ctx, cancel := context.WithCancel(parent)
	return &Group{ctx: ctx, cancel: cancel}
}

// Context returns the context shared by every goroutine of the group.
func (g *Group) Context() context.Context {
	return g.ctx
}

// Run starts each worker on its own goroutine.
func (g *Group) Run(ws ...Worker) {
	for _, w := range ws {
		g.Go(w.Run)
	}
}

// Go starts fn on a tracked goroutine. It reports false and does nothing once
// the group has been stopped.
func (g *Group) Go(fn func(ctx context.Context)) bool {
	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		return false
	}
	g.wg.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.wg.Done()
		fn(g.ctx)
	}()
	return true
}

// Stop cancels the group context and waits for all goroutines. Safe to call
// more than once and from several goroutines.
func (g *Group) Stop() {
	g.mu.Lock()
	g.stopped = true
	g.mu.Unlock()

	g.cancel()
	g.wg.Wait()
}
