package livequery

import (
	"context"
	"sync"
)

type captureKey struct{}

// Captured accumulates the names of tables read during one query
// execution. It is safe for concurrent use.
type Captured struct {
	mu     sync.Mutex
	tables map[string]struct{}
}

// WithCapture returns a context that records table touches into the
// returned Captured.
func WithCapture(ctx context.Context) (context.Context, *Captured) {
	c := &Captured{tables: make(map[string]struct{})}
	return context.WithValue(ctx, captureKey{}, c), c
}

// Touch records that the query running under ctx read the given table.
// It is a no-op when ctx carries no capture; plain one-shot queries pay
// nothing.
func Touch(ctx context.Context, table string) {
	c, ok := ctx.Value(captureKey{}).(*Captured)
	if !ok {
		return
	}
	c.mu.Lock()
	c.tables[table] = struct{}{}
	c.mu.Unlock()
}

// Tables returns the captured table names.
func (c *Captured) Tables() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.tables))
	for t := range c.tables {
		out = append(out, t)
	}
	return out
}

func (c *Captured) has(table string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.tables[table]
	return ok
}
