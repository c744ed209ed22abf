package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a kind name that matches no transaction variant.
var ErrUnknownKind = errors.New("unknown transaction kind")

// Kind discriminates the transaction variants.
type Kind int

const (
	// KindDeposit credits a client's available balance.
	KindDeposit Kind = iota
	// KindWithdrawal debits a client's available balance.
	KindWithdrawal
	// KindDispute opens a dispute on a previously booked deposit.
	KindDispute
	// KindResolve drops an open dispute.
	KindResolve
	// KindChargeback reverses a disputed deposit and locks the client.
	KindChargeback
)

// String renders the kind for logs and events.
func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindDispute:
		return "dispute"
	case KindResolve:
		return "resolve"
	case KindChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name such as "deposit" to its Kind, ignoring case
// and surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return KindDeposit, nil
	case "withdrawal":
		return KindWithdrawal, nil
	case "dispute":
		return KindDispute, nil
	case "resolve":
		return KindResolve, nil
	case "chargeback":
		return KindChargeback, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Transaction is one fully typed input record. Amount carries pre-scaled
// minor units and is meaningful for deposits and withdrawals only; the
// dispute family references the amount of the booking it targets.
type Transaction struct {
	ID     TxID
	Client ClientID
	Kind   Kind
	Amount Amount
}
