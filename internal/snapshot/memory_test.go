package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/payflow/payflow/internal/engine"
)

func TestMemoryRepositorySaveAndQuery(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	records := []Record{
		{Client: 1, Available: 100, Held: 0, TakenAt: now},
		{Client: 2, Available: 0, Held: 50, Locked: true, TakenAt: now},
	}
	if err := repo.Save(ctx, records); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.ByClient(ctx, 2)
	if err != nil {
		t.Fatalf("by client: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Held != 50 || !got[0].Locked {
		t.Fatalf("unexpected record: %+v", got[0])
	}

	none, err := repo.ByClient(ctx, 9)
	if err != nil {
		t.Fatalf("by client: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no records, got %d", len(none))
	}
}

func TestFromClients(t *testing.T) {
	e := engine.New()
	if err := e.Execute(engine.Transaction{ID: 1, Client: 3, Kind: engine.KindDeposit, Amount: 70}); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	now := time.Now().UTC()
	records := FromClients(e.Clients(), now)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	want := Record{Client: 3, Available: 70, Held: 0, Locked: false, TakenAt: now}
	if records[0] != want {
		t.Fatalf("got %+v, want %+v", records[0], want)
	}
}
