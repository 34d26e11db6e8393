package livequery

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/fleetdesk/internal/events"
)

// Query produces one result set. Implementations must be pure reads:
// the result may only depend on the arguments bound at Observe time
// and the current table contents.
type Query[T any] func(ctx context.Context) (T, error)

// Handle is a live subscription to a query. Until the first execution
// resolves, Current reports the zero value with loaded=false; consumers
// must render that as "still loading", not "empty".
type Handle[T any] struct {
	mu      sync.Mutex
	current T
	loaded  bool
	lastErr error

	updates chan T
	refresh chan struct{}
	done    chan struct{}
	closer  sync.Once
}

// Observe starts watching the query. The query runs once immediately
// (in the background); afterwards it re-runs whenever a write touches
// any table the previous execution read. Triggers that arrive while an
// execution is in flight collapse into exactly one follow-up run, and
// results are delivered strictly in execution order. Close the handle
// to release the goroutine and its bus subscription; cancelling ctx
// has the same effect.
func Observe[T any](ctx context.Context, bus *events.Bus, q Query[T]) *Handle[T] {
	h := &Handle[T]{
		updates: make(chan T, 1),
		refresh: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	sub := bus.Subscribe()
	go h.run(ctx, sub, q)
	return h
}

// Updates delivers each new result. The channel holds only the latest
// value: a slow consumer observes the freshest result, never a stale
// one. It is closed when the handle shuts down.
func (h *Handle[T]) Updates() <-chan T {
	return h.updates
}

// Current returns the most recent result and whether any execution has
// completed yet.
func (h *Handle[T]) Current() (T, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current, h.loaded
}

// Err returns the error from the most recent execution, if any.
// A failed re-execution keeps the previous result in place.
func (h *Handle[T]) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastErr
}

// Refresh forces a re-execution regardless of table writes. Use it when
// an external dependency of the query (e.g. a bound argument captured by
// the closure) has changed.
func (h *Handle[T]) Refresh() {
	select {
	case h.refresh <- struct{}{}:
	default:
	}
}

// Close stops the subscription and releases all resources. Idempotent.
func (h *Handle[T]) Close() {
	h.closer.Do(func() { close(h.done) })
}

func (h *Handle[T]) run(ctx context.Context, sub *events.Subscription, q Query[T]) {
	defer sub.Close()
	defer close(h.updates)

	var deps *Captured

	execute := func() {
		cctx, captured := WithCapture(ctx)
		result, err := q(cctx)

		h.mu.Lock()
		h.lastErr = err
		if err == nil {
			h.current = result
			h.loaded = true
		}
		h.mu.Unlock()

		if err != nil {
			return
		}
		deps = captured

		// latest-wins delivery: replace an unconsumed value rather
		// than blocking the loop.
		for {
			select {
			case h.updates <- result:
				return
			default:
				select {
				case <-h.updates:
				default:
				}
			}
		}
	}

	execute()

	for {
		select {
		case <-h.done:
			return
		case <-ctx.Done():
			return
		case <-h.refresh:
			execute()
		case <-sub.C():
			touched := sub.Drain()
			if deps == nil {
				execute()
				continue
			}
			relevant := false
			for _, table := range touched {
				if deps.has(table) {
					relevant = true
					break
				}
			}
			if relevant {
				execute()
			}
		}
	}
}
