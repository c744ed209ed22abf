package engine

// State is the dispute-lifecycle state of a booked deposit.
type State int

const (
	// StateBooked is the initial state of every deposit.
	StateBooked State = iota
	// StateDisputed marks a deposit with an open dispute and its funds frozen.
	StateDisputed
	// StateResolved is terminal; the dispute was dropped and funds released.
	StateResolved
	// StateChargeback is terminal; the deposit was reversed and the client locked.
	StateChargeback
)

// String renders the state for logs and API responses.
func (s State) String() string {
	switch s {
	case StateBooked:
		return "booked"
	case StateDisputed:
		return "disputed"
	case StateResolved:
		return "resolved"
	case StateChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// BookedDeposit records one historical deposit and where it sits in the
// dispute lifecycle. The amount never changes after creation; the state only
// moves along Booked → Disputed → {Resolved, Chargeback}.
type BookedDeposit struct {
	tx     TxID
	amount Amount
	state  State
}

// NewBookedDeposit books a deposit in its initial state.
func NewBookedDeposit(tx TxID, amount Amount) BookedDeposit {
	return BookedDeposit{tx: tx, amount: amount, state: StateBooked}
}

// Tx returns the transaction id this deposit was booked under.
func (d *BookedDeposit) Tx() TxID {
	return d.tx
}

// Amount returns the booked deposit amount.
func (d *BookedDeposit) Amount() Amount {
	return d.amount
}

// State returns the current dispute-lifecycle state.
func (d *BookedDeposit) State() State {
	return d.state
}

// Dispute opens a dispute on a booked deposit.
func (d *BookedDeposit) Dispute() error {
	return d.transition(StateBooked, StateDisputed)
}

// Resolve closes an open dispute, releasing the deposit.
func (d *BookedDeposit) Resolve() error {
	return d.transition(StateDisputed, StateResolved)
}

// Chargeback reverses a disputed deposit.
func (d *BookedDeposit) Chargeback() error {
	return d.transition(StateDisputed, StateChargeback)
}

func (d *BookedDeposit) transition(from, to State) error {
	if d.state != from {
		return ErrInvalidState
	}
	d.state = to
	return nil
}
