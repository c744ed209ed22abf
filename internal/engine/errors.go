package engine

import "errors"

var (
	// ErrOverflow occurs when a balance operation would push a field, or the
	// combined total, past the maximum representable amount.
	ErrOverflow = errors.New("balance overflow")

	// ErrUnderflow occurs when a balance operation would draw a field below zero.
	ErrUnderflow = errors.New("balance underflow")

	// ErrInvalidState indicates a dispute-lifecycle transition that is not
	// allowed from the booking's current state.
	ErrInvalidState = errors.New("invalid booking state")

	// ErrUnknownBooking indicates a dispute, resolve or chargeback referencing
	// a transaction id that was never booked as a deposit for this client.
	ErrUnknownBooking = errors.New("unknown booking")

	// ErrClientLocked indicates the target client has been locked by a prior
	// chargeback and accepts no further transactions.
	ErrClientLocked = errors.New("client locked")

	// ErrNoSuchClient indicates a non-deposit transaction referencing a client
	// id that has never been seen.
	ErrNoSuchClient = errors.New("client does not exist")
)
