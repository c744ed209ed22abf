package engine

// SeedClient installs a client with preset balances, bypassing Execute.
// Test helper.
func SeedClient(e *Engine, id ClientID, available, frozen Amount) *Client {
	c := NewClient(id)
	c.balance = Balance{available: available, frozen: frozen}
	e.clients[id] = c
	return c
}

// SeedBooking installs a booking in the given state on an existing client,
// bypassing Execute. Test helper.
func SeedBooking(c *Client, tx TxID, amount Amount, state State) {
	c.bookings[tx] = BookedDeposit{tx: tx, amount: amount, state: state}
}

// SeedLock marks an existing client locked. Test helper.
func SeedLock(c *Client) {
	c.lock()
}
