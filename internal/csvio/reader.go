// Package csvio adapts the engine to its external CSV source and sink:
// transaction rows in, final account rows out.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/payflow/payflow/internal/engine"
	"github.com/payflow/payflow/internal/money"
)

// ErrMissingAmount indicates a deposit or withdrawal row without an amount.
var ErrMissingAmount = errors.New("missing amount")

// Reader decodes transaction rows of the form `type,client,tx,amount`.
// The header row is skipped; fields are whitespace-trimmed. A malformed row
// yields an error for that row only, the reader stays usable for the next one.
type Reader struct {
	csv           *csv.Reader
	skippedHeader bool
}

// NewReader wraps r in a transaction CSV decoder.
func NewReader(r io.Reader) *Reader {
	c := csv.NewReader(r)
	c.TrimLeadingSpace = true
	// dispute rows legitimately omit the amount column
	c.FieldsPerRecord = -1
	return &Reader{csv: c}
}

// Read returns the next transaction, or io.EOF once the stream is exhausted.
func (r *Reader) Read() (engine.Transaction, error) {
	record, err := r.next()
	if err != nil {
		return engine.Transaction{}, err
	}

	if len(record) < 3 {
		return engine.Transaction{}, fmt.Errorf("row has %d fields, want at least 3", len(record))
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return engine.Transaction{}, fmt.Errorf("parse client id %q: %w", record[1], err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return engine.Transaction{}, fmt.Errorf("parse tx id %q: %w", record[2], err)
	}

	kind, err := engine.ParseKind(record[0])
	if err != nil {
		return engine.Transaction{}, err
	}

	out := engine.Transaction{
		ID:     engine.TxID(tx),
		Client: engine.ClientID(client),
		Kind:   kind,
	}

	if out.Kind == engine.KindDeposit || out.Kind == engine.KindWithdrawal {
		if len(record) < 4 || strings.TrimSpace(record[3]) == "" {
			return engine.Transaction{}, ErrMissingAmount
		}
		amount, err := money.Parse(record[3])
		if err != nil {
			return engine.Transaction{}, err
		}
		out.Amount = amount
	}

	return out, nil
}

func (r *Reader) next() ([]string, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			return nil, err
		}
		if !r.skippedHeader {
			r.skippedHeader = true
			if len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "type") {
				continue
			}
		}
		return record, nil
	}
}
