// Package events publishes committed transactions to the message bus so
// downstream consumers (reporting, reconciliation) can react without coupling
// to the engine.
package events

import (
	"context"
	"time"

	"github.com/payflow/payflow/internal/engine"
	"github.com/payflow/payflow/internal/money"

	"github.com/google/uuid"
)

// SubjectExecuted is the bus subject committed transactions are published on.
const SubjectExecuted = "transactions.executed"

// Executed describes one committed transaction.
type Executed struct {
	EventID    string    `json:"event_id"`
	Tx         uint32    `json:"tx"`
	Client     uint16    `json:"client"`
	Kind       string    `json:"kind"`
	Amount     string    `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers executed-transaction events.
type Publisher interface {
	Publish(ctx context.Context, event Executed) error
}

// NewExecuted builds the event for a committed transaction.
func NewExecuted(tx engine.Transaction) Executed {
	e := Executed{
		EventID:    uuid.NewString(),
		Tx:         tx.ID,
		Client:     tx.Client,
		Kind:       tx.Kind.String(),
		OccurredAt: time.Now().UTC(),
	}
	if tx.Kind == engine.KindDeposit || tx.Kind == engine.KindWithdrawal {
		e.Amount = money.Format(tx.Amount)
	}
	return e
}
