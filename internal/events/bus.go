// Package events implements the table-change notification bus.
// Repositories publish the name of every table they write to; the
// live-query layer subscribes to re-run queries whose read set was
// touched. Publication never blocks: each subscriber accumulates
// pending table names and is woken through a one-slot signal channel,
// so bursts of writes coalesce instead of queueing.
package events

import "sync"

// Bus fan-outs table-change notifications to subscribers.
// The zero value is not usable; call NewBus.
type Bus struct {
	mu   sync.Mutex
	subs map[int]*Subscription
	next int
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*Subscription)}
}

// Publish notifies all subscribers that table received a write.
func (b *Bus) Publish(table string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs {
		s.add(table)
	}
}

// Subscribe registers a new subscriber. The caller must Close the
// subscription when done.
func (b *Bus) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := &Subscription{
		bus:     b,
		id:      b.next,
		pending: make(map[string]struct{}),
		signal:  make(chan struct{}, 1),
	}
	b.subs[b.next] = s
	b.next++
	return s
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
}

// Subscription is one subscriber's view of the bus.
type Subscription struct {
	bus *Bus
	id  int

	mu      sync.Mutex
	pending map[string]struct{}
	signal  chan struct{}
	closed  bool
}

func (s *Subscription) add(table string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.pending[table] = struct{}{}
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// C returns the wake-up channel. A receive means at least one table
// changed since the last Drain; call Drain to collect the names.
func (s *Subscription) C() <-chan struct{} {
	return s.signal
}

// Drain returns and clears the set of tables written since the
// previous call.
func (s *Subscription) Drain() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil
	}
	tables := make([]string, 0, len(s.pending))
	for t := range s.pending {
		tables = append(tables, t)
	}
	s.pending = make(map[string]struct{})
	return tables
}

// Close removes the subscription from the bus. Idempotent.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	s.bus.unsubscribe(s.id)
}
