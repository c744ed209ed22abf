package infra

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// NewNATSConn establishes a NATS connection with the application name set,
// so connections are attributable on the server side.
func NewNATSConn(url, name string) (*nats.Conn, error) {
	if url == "" {
		return nil, fmt.Errorf("nats url is required")
	}

	nc, err := nats.Connect(url, nats.Name(name))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	return nc, nil
}
