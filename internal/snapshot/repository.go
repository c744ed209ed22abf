// Package snapshot persists final account state to a durable sink, keyed by
// the moment the snapshot was taken. Engine state itself stays in memory;
// only output rows are stored.
package snapshot

import (
	"context"
	"time"

	"github.com/payflow/payflow/internal/engine"
)

// Record is one account row within a snapshot.
type Record struct {
	Client    engine.ClientID
	Available engine.Amount
	Held      engine.Amount
	Locked    bool
	TakenAt   time.Time
}

// Repository stores account snapshots.
type Repository interface {
	Save(ctx context.Context, records []Record) error
	ByClient(ctx context.Context, client engine.ClientID) ([]Record, error)
}

// FromClients converts engine clients into snapshot records stamped with now.
func FromClients(clients []*engine.Client, now time.Time) []Record {
	records := make([]Record, 0, len(clients))
	for _, c := range clients {
		records = append(records, Record{
			Client:    c.ID(),
			Available: c.Available(),
			Held:      c.Frozen(),
			Locked:    c.Locked(),
			TakenAt:   now,
		})
	}
	return records
}
