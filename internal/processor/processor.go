// Package processor drives a transaction stream through the engine: source
// rows in, rejected transactions logged and skipped, final account state out.
package processor

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/payflow/payflow/internal/alert"
	"github.com/payflow/payflow/internal/engine"
)

// Source yields transactions one at a time, returning io.EOF when exhausted.
type Source interface {
	Read() (engine.Transaction, error)
}

// Sink receives the final per-client state once the stream is done.
type Sink interface {
	Write(clients []*engine.Client) error
}

// Processor owns one engine for the duration of a run.
type Processor struct {
	eng      *engine.Engine
	logger   *slog.Logger
	notifier alert.Notifier
}

// New builds a processor with a fresh engine.
func New(logger *slog.Logger, notifier alert.Notifier) *Processor {
	return &Processor{
		eng:      engine.New(),
		logger:   logger,
		notifier: notifier,
	}
}

// Run consumes the source to exhaustion and writes the report to the sink.
// A transaction the engine rejects is logged at warn level and skipped; it
// never affects the outcome of any other transaction. Only source I/O that is
// not row-scoped, or a sink failure, aborts the run.
func (p *Processor) Run(ctx context.Context, src Source, sink Sink) error {
	for {
		tx, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			p.logger.Warn("skipping malformed record", "error", err)
			continue
		}

		if err := p.eng.Execute(tx); err != nil {
			p.logger.Warn("transaction rejected",
				"tx", tx.ID,
				"client", tx.Client,
				"kind", tx.Kind.String(),
				"error", err,
			)
			continue
		}

		if tx.Kind == engine.KindChargeback && p.notifier != nil {
			_ = p.notifier.Send(ctx, alert.ClientLocked(tx.Client, tx.ID))
		}
	}

	return sink.Write(p.eng.Drain())
}
