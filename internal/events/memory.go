package events

import (
	"context"
	"sync"
)

// MemoryPublisher records events in memory. It doubles as the publisher when
// no bus is configured and as a capture point in tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Executed
}

// NewMemoryPublisher builds an empty in-memory publisher.
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// Publish appends the event to the in-memory log.
func (p *MemoryPublisher) Publish(_ context.Context, event Executed) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything published so far.
func (p *MemoryPublisher) Events() []Executed {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Executed, len(p.events))
	copy(out, p.events)
	return out
}
