// Package engine implements the transaction-execution core: checked balance
// arithmetic, the per-deposit dispute state machine, and the orchestration
// that commits each transaction atomically against its client.
package engine

import "sort"

// Engine owns the full set of clients and executes transactions against them
// one at a time. Execute either commits every effect of a transaction or none
// of them: work happens on a clone of the target client and the clone replaces
// the stored client only after every step succeeded.
//
// The engine is deliberately single-threaded; callers that accept concurrent
// submissions must serialize access themselves.
type Engine struct {
	clients map[ClientID]*Client
}

// New creates an empty engine.
func New() *Engine {
	return &Engine{clients: make(map[ClientID]*Client)}
}

// Execute applies one transaction. Failures are recoverable: the engine's
// committed state is unchanged and the next transaction is unaffected.
//
// Only deposits may create a client; a withdrawal, dispute, resolve or
// chargeback against an unknown client id fails with ErrNoSuchClient without
// creating one. Locked clients reject everything with ErrClientLocked.
func (e *Engine) Execute(tx Transaction) error {
	working, err := e.resolveClient(tx)
	if err != nil {
		return err
	}

	if working.Locked() {
		return ErrClientLocked
	}

	switch tx.Kind {
	case KindDeposit:
		if err := working.balance.Credit(tx.Amount); err != nil {
			return err
		}
		working.putBooking(NewBookedDeposit(tx.ID, tx.Amount))

	case KindWithdrawal:
		if err := working.balance.Debit(tx.Amount); err != nil {
			return err
		}

	case KindDispute, KindResolve, KindChargeback:
		booking, ok := working.bookings[tx.ID]
		if !ok {
			return ErrUnknownBooking
		}

		switch tx.Kind {
		case KindDispute:
			if err := booking.Dispute(); err != nil {
				return err
			}
			if err := working.balance.Freeze(booking.amount); err != nil {
				return err
			}
		case KindResolve:
			if err := booking.Resolve(); err != nil {
				return err
			}
			if err := working.balance.Unfreeze(booking.amount); err != nil {
				return err
			}
		case KindChargeback:
			if err := booking.Chargeback(); err != nil {
				return err
			}
			if err := working.balance.Chargeback(booking.amount); err != nil {
				return err
			}
			working.lock()
		}

		working.putBooking(booking)

	default:
		return ErrInvalidState
	}

	// sole commit point
	e.clients[tx.Client] = working
	return nil
}

// resolveClient produces the working copy Execute mutates: a clone of the
// stored client, or a fresh client when a deposit references an unseen id.
func (e *Engine) resolveClient(tx Transaction) (*Client, error) {
	if stored, ok := e.clients[tx.Client]; ok {
		return stored.Clone(), nil
	}
	if tx.Kind == KindDeposit {
		return NewClient(tx.Client), nil
	}
	return nil, ErrNoSuchClient
}

// Client returns a copy of the stored client, if any. The copy is detached;
// mutating it does not affect engine state.
func (e *Engine) Client(id ClientID) (*Client, bool) {
	stored, ok := e.clients[id]
	if !ok {
		return nil, false
	}
	return stored.Clone(), true
}

// Clients returns detached copies of every client, ordered by id.
func (e *Engine) Clients() []*Client {
	out := make([]*Client, 0, len(e.clients))
	for _, c := range e.clients {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Len returns the number of clients the engine has committed.
func (e *Engine) Len() int {
	return len(e.clients)
}

// Drain consumes the engine, yielding the final state of every client ordered
// by id. The engine is empty afterwards and accepts a fresh run.
func (e *Engine) Drain() []*Client {
	out := make([]*Client, 0, len(e.clients))
	for _, c := range e.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	e.clients = make(map[ClientID]*Client)
	return out
}
