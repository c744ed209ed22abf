// Package alert raises operational alerts for events that need human
// follow-up, most notably a chargeback locking a client.
package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/payflow/payflow/internal/engine"
)

const (
	// KindClientLocked indicates a client was permanently locked by a chargeback.
	KindClientLocked = "client_locked"
)

// Message describes an alert payload.
type Message struct {
	Kind   string
	Client engine.ClientID
	Tx     engine.TxID
	Body   string
}

// Notifier delivers alerts to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes alerts to the structured logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the alert to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Warn("alert",
		"kind", message.Kind,
		"client", message.Client,
		"tx", message.Tx,
		"body", message.Body,
	)
	return nil
}

// ClientLocked builds the standard lock alert for a charged-back client.
func ClientLocked(client engine.ClientID, tx engine.TxID) Message {
	return Message{
		Kind:   KindClientLocked,
		Client: client,
		Tx:     tx,
		Body:   fmt.Sprintf("client %d locked by chargeback of tx %d", client, tx),
	}
}
