package engine

import "math"

// Amount is a monetary value denominated in the smallest fixed-point unit.
type Amount = uint64

// Balance holds the funds of a single client split into an available part and
// a frozen part held against open disputes. Both fields are unsigned; no
// operation can take either below zero, it fails with ErrUnderflow instead.
// All mutations compute every intermediate value before committing any field,
// so a failed operation leaves the balance untouched.
type Balance struct {
	available Amount
	frozen    Amount
}

// Available returns the freely spendable part of the balance.
func (b *Balance) Available() Amount {
	return b.available
}

// Frozen returns the part of the balance held against open disputes.
func (b *Balance) Frozen() Amount {
	return b.frozen
}

// Credit adds amount to the available balance. Beyond the available field
// itself, the combined available+frozen total must also stay representable;
// the other operations only move value between the two fields so the check is
// unique to Credit.
func (b *Balance) Credit(amount Amount) error {
	available, ok := checkedAdd(b.available, amount)
	if !ok {
		return ErrOverflow
	}
	if _, ok := checkedAdd(available, b.frozen); !ok {
		return ErrOverflow
	}

	b.available = available
	return nil
}

// Debit removes amount from the available balance.
func (b *Balance) Debit(amount Amount) error {
	available, ok := checkedSub(b.available, amount)
	if !ok {
		return ErrUnderflow
	}

	b.available = available
	return nil
}

// Freeze moves amount from available to frozen while a dispute is open.
func (b *Balance) Freeze(amount Amount) error {
	available, ok := checkedSub(b.available, amount)
	if !ok {
		return ErrUnderflow
	}
	frozen, ok := checkedAdd(b.frozen, amount)
	if !ok {
		return ErrOverflow
	}

	b.available = available
	b.frozen = frozen
	return nil
}

// Unfreeze moves amount back from frozen to available when a dispute resolves.
func (b *Balance) Unfreeze(amount Amount) error {
	frozen, ok := checkedSub(b.frozen, amount)
	if !ok {
		return ErrUnderflow
	}
	available, ok := checkedAdd(b.available, amount)
	if !ok {
		return ErrOverflow
	}

	b.available = available
	b.frozen = frozen
	return nil
}

// Chargeback removes amount from the frozen balance, reversing a disputed
// deposit for good.
func (b *Balance) Chargeback(amount Amount) error {
	frozen, ok := checkedSub(b.frozen, amount)
	if !ok {
		return ErrUnderflow
	}

	b.frozen = frozen
	return nil
}

func checkedAdd(a, b Amount) (Amount, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

func checkedSub(a, b Amount) (Amount, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}
