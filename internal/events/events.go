package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RafaelEmery/rafood-api/pkg/config"
)

// Actions published for catalog changes
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes a change to one catalog entity
type Event struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Topic      string            `json:"topic"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// New builds an event whose topic is "<entity>.<action>"
func New(entity, action, resourceID string, data interface{}, metadata map[string]string) Event {
	return Event{
		Entity:     entity,
		Action:     action,
		ResourceID: resourceID,
		Topic:      entity + "." + action,
		Metadata:   metadata,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	}
}

// Publisher delivers catalog change events to a broker
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }

// NewPublisher returns the publisher selected by EVENTS_DRIVER
func NewPublisher(cfg config.EventsConfig) (Publisher, error) {
	switch cfg.Driver {
	case config.EventsDisabled:
		return NoopPublisher{}, nil
	case config.EventsKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case config.EventsNATS:
		return NewNATSPublisher(cfg.NATSURL, cfg.SubjectPrefix)
	default:
		return nil, fmt.Errorf("unsupported events driver %q", cfg.Driver)
	}
}

func encode(event Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event %s: %w", event.Topic, err)
	}
	return payload, nil
}
