package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/payflow/payflow/internal/engine"
	"github.com/payflow/payflow/internal/money"
)

// Writer encodes final account state as `client,available,held,total,locked`
// rows with amounts rendered as decimal strings.
type Writer struct {
	out io.Writer
}

// NewWriter builds a report writer targeting out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write emits the header followed by one row per client, in the order given.
func (w *Writer) Write(clients []*engine.Client) error {
	cw := csv.NewWriter(w.out)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, c := range clients {
		row := []string{
			strconv.FormatUint(uint64(c.ID()), 10),
			money.Format(c.Available()),
			money.Format(c.Frozen()),
			money.Format(c.Total()),
			strconv.FormatBool(c.Locked()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write client %d: %w", c.ID(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}
