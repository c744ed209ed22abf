package snapshot

import (
	"context"
	"sync"

	"github.com/payflow/payflow/internal/engine"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryRepository constructs an in-memory repository, used when no
// database is configured and in tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Save(_ context.Context, records []Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, records...)
	return nil
}

func (r *memoryRepository) ByClient(_ context.Context, client engine.ClientID) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Record
	for _, rec := range r.records {
		if rec.Client == client {
			out = append(out, rec)
		}
	}
	return out, nil
}
