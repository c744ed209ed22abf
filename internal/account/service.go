// Package account exposes the engine to the HTTP surface: transaction
// submission, account reads, and snapshot persistence.
package account

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/payflow/payflow/internal/alert"
	"github.com/payflow/payflow/internal/engine"
	"github.com/payflow/payflow/internal/events"
	"github.com/payflow/payflow/internal/money"
	"github.com/payflow/payflow/internal/snapshot"
)

// ErrNotFound indicates a read against a client the engine has never committed.
var ErrNotFound = errors.New("account not found")

// Service serializes access to a single engine. The engine itself is
// single-threaded; the mutex here is the concurrency boundary for the whole
// process.
type Service struct {
	mu        sync.Mutex
	eng       *engine.Engine
	snapshots snapshot.Repository
	publisher events.Publisher
	notifier  alert.Notifier
	logger    *slog.Logger
}

// NewService builds an account service with a fresh engine.
func NewService(snapshots snapshot.Repository, publisher events.Publisher, notifier alert.Notifier, logger *slog.Logger) *Service {
	return &Service{
		eng:       engine.New(),
		snapshots: snapshots,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

// SubmitInput carries one transaction as received from the API edge.
type SubmitInput struct {
	Type   string
	Client engine.ClientID
	Tx     engine.TxID
	Amount string
}

// Submit validates, executes and, on success, announces one transaction.
// Validation failures and engine rejections come back as errors; the engine's
// committed state is unchanged by any failure.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (engine.Transaction, error) {
	kind, err := engine.ParseKind(input.Type)
	if err != nil {
		return engine.Transaction{}, err
	}

	tx := engine.Transaction{
		ID:     input.Tx,
		Client: input.Client,
		Kind:   kind,
	}
	if kind == engine.KindDeposit || kind == engine.KindWithdrawal {
		amount, err := money.Parse(input.Amount)
		if err != nil {
			return engine.Transaction{}, err
		}
		tx.Amount = amount
	}

	s.mu.Lock()
	err = s.eng.Execute(tx)
	s.mu.Unlock()
	if err != nil {
		return engine.Transaction{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewExecuted(tx)); err != nil {
			s.logger.Warn("publish executed event", "tx", tx.ID, "error", err)
		}
	}
	if tx.Kind == engine.KindChargeback && s.notifier != nil {
		_ = s.notifier.Send(ctx, alert.ClientLocked(tx.Client, tx.ID))
	}

	return tx, nil
}

// View is the read model of one account.
type View struct {
	Client    engine.ClientID `json:"client"`
	Available string          `json:"available"`
	Held      string          `json:"held"`
	Total     string          `json:"total"`
	Locked    bool            `json:"locked"`
}

// Account returns the state of one client.
func (s *Service) Account(id engine.ClientID) (View, error) {
	s.mu.Lock()
	c, ok := s.eng.Client(id)
	s.mu.Unlock()
	if !ok {
		return View{}, ErrNotFound
	}
	return viewOf(c), nil
}

// Accounts returns the state of every client, ordered by id.
func (s *Service) Accounts() []View {
	s.mu.Lock()
	clients := s.eng.Clients()
	s.mu.Unlock()

	views := make([]View, 0, len(clients))
	for _, c := range clients {
		views = append(views, viewOf(c))
	}
	return views
}

// Snapshot persists the current account set through the snapshot repository
// and returns the number of rows written.
func (s *Service) Snapshot(ctx context.Context) (int, error) {
	s.mu.Lock()
	clients := s.eng.Clients()
	s.mu.Unlock()

	records := snapshot.FromClients(clients, time.Now().UTC())
	if err := s.snapshots.Save(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func viewOf(c *engine.Client) View {
	return View{
		Client:    c.ID(),
		Available: money.Format(c.Available()),
		Held:      money.Format(c.Frozen()),
		Total:     money.Format(c.Total()),
		Locked:    c.Locked(),
	}
}
