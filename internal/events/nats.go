package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

type natsConnection interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher publishes every event on "<prefix>.<entity>.<action>"
type NATSPublisher struct {
	conn   natsConnection
	prefix string
}

// NewNATSPublisher connects to the NATS server at url
func NewNATSPublisher(url, prefix string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("rafood-api"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSPublisher{conn: conn, prefix: prefix}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := encode(event)
	if err != nil {
		return err
	}

	return p.conn.Publish(p.subject(event), payload)
}

func (p *NATSPublisher) subject(event Event) string {
	if p.prefix == "" {
		return event.Topic
	}
	return p.prefix + "." + event.Topic
}

// Close flushes pending messages and closes the connection
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
