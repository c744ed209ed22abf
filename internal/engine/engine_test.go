package engine

import (
	"errors"
	"math"
	"testing"
)

func TestExecuteDepositCreatesClient(t *testing.T) {
	e := New()

	err := e.Execute(Transaction{ID: 1, Client: 1, Kind: KindDeposit, Amount: 100})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}

	c, ok := e.Client(1)
	if !ok {
		t.Fatal("expected client 1 to exist")
	}
	if c.Available() != 100 || c.Frozen() != 0 {
		t.Fatalf("unexpected balance: available=%d frozen=%d", c.Available(), c.Frozen())
	}
	booking, ok := c.Booking(1)
	if !ok {
		t.Fatal("expected booking for tx 1")
	}
	if booking.State() != StateBooked || booking.Amount() != 100 {
		t.Fatalf("unexpected booking: state=%v amount=%d", booking.State(), booking.Amount())
	}
}

func TestExecuteOverflowingDepositDoesNotModifyClient(t *testing.T) {
	e := New()
	SeedClient(e, 1, math.MaxUint64, 0)

	err := e.Execute(Transaction{ID: 2, Client: 1, Kind: KindDeposit, Amount: 50})
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}

	c, _ := e.Client(1)
	if c.Available() != math.MaxUint64 {
		t.Fatalf("failed deposit mutated client, available=%d", c.Available())
	}
	if _, ok := c.Booking(2); ok {
		t.Fatal("failed deposit must not book")
	}
}

func TestExecuteRebookingReplacesPriorRecord(t *testing.T) {
	e := New()
	if err := e.Execute(Transaction{ID: 1, Client: 1, Kind: KindDeposit, Amount: 100}); err != nil {
		t.Fatalf("first deposit: %v", err)
	}
	if err := e.Execute(Transaction{ID: 1, Client: 1, Kind: KindDispute}); err != nil {
		t.Fatalf("dispute: %v", err)
	}

	// same tx id again: the booking is replaced and its dispute history lost
	if err := e.Execute(Transaction{ID: 1, Client: 1, Kind: KindDeposit, Amount: 30}); err != nil {
		t.Fatalf("re-deposit: %v", err)
	}

	c, _ := e.Client(1)
	booking, _ := c.Booking(1)
	if booking.State() != StateBooked || booking.Amount() != 30 {
		t.Fatalf("expected fresh booking, got state=%v amount=%d", booking.State(), booking.Amount())
	}
}

func TestExecuteWithdrawal(t *testing.T) {
	e := New()
	SeedClient(e, 1, 100, 0)

	if err := e.Execute(Transaction{ID: 2, Client: 1, Kind: KindWithdrawal, Amount: 70}); err != nil {
		t.Fatalf("withdrawal: %v", err)
	}

	c, _ := e.Client(1)
	if c.Available() != 30 {
		t.Fatalf("expected available 30, got %d", c.Available())
	}
}

func TestExecuteWithdrawalUnderflowDoesNotModifyClient(t *testing.T) {
	e := New()
	SeedClient(e, 1, 100, 0)

	err := e.Execute(Transaction{ID: 2, Client: 1, Kind: KindWithdrawal, Amount: 150})
	if !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected underflow, got %v", err)
	}

	c, _ := e.Client(1)
	if c.Available() != 100 {
		t.Fatalf("failed withdrawal mutated client, available=%d", c.Available())
	}
}

func TestExecuteNonDepositDoesNotCreateClient(t *testing.T) {
	e := New()

	for _, kind := range []Kind{KindWithdrawal, KindDispute, KindResolve, KindChargeback} {
		err := e.Execute(Transaction{ID: 5, Client: 99, Kind: kind, Amount: 10})
		if !errors.Is(err, ErrNoSuchClient) {
			t.Fatalf("%v: expected no such client, got %v", kind, err)
		}
	}
	if e.Len() != 0 {
		t.Fatalf("expected no clients, got %d", e.Len())
	}
}

func TestExecuteLockedClientRejectsEverything(t *testing.T) {
	e := New()
	SeedLock(SeedClient(e, 1, 100, 0))

	for _, kind := range []Kind{KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback} {
		err := e.Execute(Transaction{ID: 9, Client: 1, Kind: kind, Amount: 10})
		if !errors.Is(err, ErrClientLocked) {
			t.Fatalf("%v: expected client locked, got %v", kind, err)
		}
	}
}

func TestExecuteDispute(t *testing.T) {
	e := New()
	if err := e.Execute(Transaction{ID: 1, Client: 1, Kind: KindDeposit, Amount: 100}); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if err := e.Execute(Transaction{ID: 1, Client: 1, Kind: KindDispute}); err != nil {
		t.Fatalf("dispute: %v", err)
	}

	c, _ := e.Client(1)
	if c.Available() != 0 || c.Frozen() != 100 {
		t.Fatalf("unexpected balance: available=%d frozen=%d", c.Available(), c.Frozen())
	}
	booking, _ := c.Booking(1)
	if booking.State() != StateDisputed {
		t.Fatalf("expected disputed, got %v", booking.State())
	}
}

func TestExecuteDisputeUnknownBooking(t *testing.T) {
	e := New()
	SeedClient(e, 1, 100, 0)

	err := e.Execute(Transaction{ID: 7, Client: 1, Kind: KindDispute})
	if !errors.Is(err, ErrUnknownBooking) {
		t.Fatalf("expected unknown booking, got %v", err)
	}
}

func TestExecuteDisputeInvalidStateDoesNotModifyClient(t *testing.T) {
	e := New()
	c := SeedClient(e, 1, 100, 0)
	SeedBooking(c, 2, 100, StateResolved)

	err := e.Execute(Transaction{ID: 2, Client: 1, Kind: KindDispute})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}

	got, _ := e.Client(1)
	if got.Available() != 100 || got.Frozen() != 0 {
		t.Fatalf("failed dispute mutated balance: available=%d frozen=%d", got.Available(), got.Frozen())
	}
	booking, _ := got.Booking(2)
	if booking.State() != StateResolved {
		t.Fatalf("failed dispute mutated booking state: %v", booking.State())
	}
}

func TestExecuteResolve(t *testing.T) {
	e := New()
	c := SeedClient(e, 1, 0, 100)
	SeedBooking(c, 2, 100, StateDisputed)

	if err := e.Execute(Transaction{ID: 2, Client: 1, Kind: KindResolve}); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	got, _ := e.Client(1)
	if got.Available() != 100 || got.Frozen() != 0 {
		t.Fatalf("unexpected balance: available=%d frozen=%d", got.Available(), got.Frozen())
	}
	booking, _ := got.Booking(2)
	if booking.State() != StateResolved {
		t.Fatalf("expected resolved, got %v", booking.State())
	}
}

func TestExecuteResolveInvalidStateDoesNotModifyClient(t *testing.T) {
	e := New()
	c := SeedClient(e, 1, 100, 0)
	SeedBooking(c, 2, 100, StateBooked)

	err := e.Execute(Transaction{ID: 2, Client: 1, Kind: KindResolve})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}

	got, _ := e.Client(1)
	if got.Available() != 100 || got.Frozen() != 0 {
		t.Fatalf("failed resolve mutated balance: available=%d frozen=%d", got.Available(), got.Frozen())
	}
	booking, _ := got.Booking(2)
	if booking.State() != StateBooked {
		t.Fatalf("failed resolve mutated booking state: %v", booking.State())
	}
}

func TestExecuteChargebackLocksClient(t *testing.T) {
	e := New()
	c := SeedClient(e, 1, 0, 100)
	SeedBooking(c, 2, 100, StateDisputed)

	if err := e.Execute(Transaction{ID: 2, Client: 1, Kind: KindChargeback}); err != nil {
		t.Fatalf("chargeback: %v", err)
	}

	got, _ := e.Client(1)
	if got.Available() != 0 || got.Frozen() != 0 {
		t.Fatalf("unexpected balance: available=%d frozen=%d", got.Available(), got.Frozen())
	}
	if !got.Locked() {
		t.Fatal("expected client locked after chargeback")
	}
	booking, _ := got.Booking(2)
	if booking.State() != StateChargeback {
		t.Fatalf("expected chargeback state, got %v", booking.State())
	}

	// anything further for this client is rejected
	err := e.Execute(Transaction{ID: 3, Client: 1, Kind: KindDeposit, Amount: 10})
	if !errors.Is(err, ErrClientLocked) {
		t.Fatalf("expected client locked, got %v", err)
	}
}

func TestExecuteChargebackInvalidStateDoesNotModifyClient(t *testing.T) {
	e := New()
	c := SeedClient(e, 1, 100, 0)
	SeedBooking(c, 2, 100, StateBooked)

	err := e.Execute(Transaction{ID: 2, Client: 1, Kind: KindChargeback})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}

	got, _ := e.Client(1)
	if got.Available() != 100 || got.Frozen() != 0 {
		t.Fatalf("failed chargeback mutated balance: available=%d frozen=%d", got.Available(), got.Frozen())
	}
	if got.Locked() {
		t.Fatal("failed chargeback must not lock client")
	}
	booking, _ := got.Booking(2)
	if booking.State() != StateBooked {
		t.Fatalf("failed chargeback mutated booking state: %v", booking.State())
	}
}

func TestDrainYieldsClientsSortedAndResets(t *testing.T) {
	e := New()
	for _, id := range []ClientID{3, 1, 2} {
		if err := e.Execute(Transaction{ID: TxID(id), Client: id, Kind: KindDeposit, Amount: 10}); err != nil {
			t.Fatalf("deposit client %d: %v", id, err)
		}
	}

	clients := e.Drain()
	if len(clients) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(clients))
	}
	for i, want := range []ClientID{1, 2, 3} {
		if clients[i].ID() != want {
			t.Fatalf("position %d: expected client %d, got %d", i, want, clients[i].ID())
		}
	}
	if e.Len() != 0 {
		t.Fatalf("expected drained engine to be empty, got %d clients", e.Len())
	}
}

func TestExecuteFullDisputeScenario(t *testing.T) {
	e := New()

	steps := []struct {
		tx  Transaction
		err error
	}{
		{Transaction{ID: 1, Client: 1, Kind: KindDeposit, Amount: 100}, nil},
		{Transaction{ID: 2, Client: 1, Kind: KindWithdrawal, Amount: 150}, ErrUnderflow},
		{Transaction{ID: 1, Client: 1, Kind: KindDispute}, nil},
		{Transaction{ID: 1, Client: 1, Kind: KindChargeback}, nil},
		{Transaction{ID: 3, Client: 1, Kind: KindDeposit, Amount: 5}, ErrClientLocked},
	}

	for i, step := range steps {
		err := e.Execute(step.tx)
		if step.err == nil && err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if step.err != nil && !errors.Is(err, step.err) {
			t.Fatalf("step %d: expected %v, got %v", i, step.err, err)
		}
	}

	c, _ := e.Client(1)
	if c.Available() != 0 || c.Frozen() != 0 || !c.Locked() {
		t.Fatalf("unexpected final state: available=%d frozen=%d locked=%v", c.Available(), c.Frozen(), c.Locked())
	}
}
