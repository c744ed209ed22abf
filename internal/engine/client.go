package engine

// ClientID identifies a client account.
type ClientID = uint16

// TxID identifies a transaction in the input stream.
type TxID = uint32

// Client owns one balance, the deposits booked against it, and a lock flag.
// Once locked a client accepts no further transactions. The engine is the
// sole mutator; everything else sees read accessors only.
type Client struct {
	id       ClientID
	balance  Balance
	bookings map[TxID]BookedDeposit
	locked   bool
}

// NewClient creates a client with a zero balance and no bookings.
func NewClient(id ClientID) *Client {
	return &Client{
		id:       id,
		bookings: make(map[TxID]BookedDeposit),
	}
}

// ID returns the client identifier.
func (c *Client) ID() ClientID {
	return c.id
}

// Available returns the client's freely spendable funds.
func (c *Client) Available() Amount {
	return c.balance.Available()
}

// Frozen returns the client's funds held against open disputes.
func (c *Client) Frozen() Amount {
	return c.balance.Frozen()
}

// Total returns available plus frozen funds. Credit guards the combined sum
// against overflow, so the addition here cannot wrap.
func (c *Client) Total() Amount {
	return c.balance.Available() + c.balance.Frozen()
}

// Locked reports whether a chargeback has locked this client.
func (c *Client) Locked() bool {
	return c.locked
}

// Booking looks up a booked deposit by transaction id.
func (c *Client) Booking(tx TxID) (BookedDeposit, bool) {
	d, ok := c.bookings[tx]
	return d, ok
}

// Clone returns a deep copy sharing no state with the original. Execute
// mutates a clone and commits it only on success, which keeps the stored
// client untouched by failed transactions.
func (c *Client) Clone() *Client {
	bookings := make(map[TxID]BookedDeposit, len(c.bookings))
	for tx, d := range c.bookings {
		bookings[tx] = d
	}
	return &Client{
		id:       c.id,
		balance:  c.balance,
		bookings: bookings,
		locked:   c.locked,
	}
}

func (c *Client) lock() {
	c.locked = true
}

// putBooking adds or replaces the booking stored under the deposit's
// transaction id. Re-booking under a reused id replaces the prior record,
// including its dispute history.
func (c *Client) putBooking(d BookedDeposit) {
	c.bookings[d.tx] = d
}
