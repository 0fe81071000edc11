package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/RafaelEmery/rafood-api/pkg/config"
	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type fakeConn struct {
	subjects []string
	payloads [][]byte
	drained  bool
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	c.subjects = append(c.subjects, subject)
	c.payloads = append(c.payloads, data)
	return nil
}

func (c *fakeConn) Drain() error {
	c.drained = true
	return nil
}

func TestNewBuildsTopic(t *testing.T) {
	event := New("restaurant_schedule", ActionDeleted, "abc", nil, map[string]string{"restaurant_id": "r1"})

	if event.Topic != "restaurant_schedule.deleted" {
		t.Fatalf("unexpected topic %q", event.Topic)
	}
	if event.Timestamp.IsZero() {
		t.Fatal("expected a timestamp")
	}
}

func TestKafkaPublisher(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer}

	event := New("offer", ActionCreated, "offer-1", map[string]float64{"price": 15.99}, nil)
	if err := publisher.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	if len(writer.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(writer.messages))
	}
	message := writer.messages[0]
	if string(message.Key) != "offer-1" {
		t.Fatalf("expected the resource id as key, got %q", message.Key)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(message.Value, &decoded); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if decoded["entity"] != "offer" || decoded["action"] != "created" || decoded["resourceId"] != "offer-1" || decoded["topic"] != "offer.created" {
		t.Fatalf("unexpected payload: %v", decoded)
	}

	writer.err = errors.New("leader not available")
	if err := publisher.Publish(context.Background(), event); err == nil {
		t.Fatal("expected the writer error to be returned")
	}

	_ = publisher.Close()
	if !writer.closed {
		t.Fatal("expected the writer to be closed")
	}
}

func TestNATSPublisher(t *testing.T) {
	conn := &fakeConn{}
	publisher := &NATSPublisher{conn: conn, prefix: "rafood"}

	if err := publisher.Publish(context.Background(), New("user", ActionUpdated, "u1", nil, nil)); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if len(conn.subjects) != 1 || conn.subjects[0] != "rafood.user.updated" {
		t.Fatalf("unexpected subjects: %v", conn.subjects)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := publisher.Publish(ctx, New("user", ActionDeleted, "u1", nil, nil)); err == nil {
		t.Fatal("expected a cancelled context to stop publishing")
	}

	_ = publisher.Close()
	if !conn.drained {
		t.Fatal("expected the connection to be drained")
	}
}

func TestNewPublisher(t *testing.T) {
	publisher, err := NewPublisher(config.EventsConfig{})
	if err != nil {
		t.Fatalf("NewPublisher returned error: %v", err)
	}
	if _, ok := publisher.(NoopPublisher); !ok {
		t.Fatalf("expected a no-op publisher, got %T", publisher)
	}

	kafkaPublisher, err := NewPublisher(config.EventsConfig{Driver: config.EventsKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "rafood.catalog"})
	if err != nil {
		t.Fatalf("NewPublisher returned error: %v", err)
	}
	if _, ok := kafkaPublisher.(*KafkaPublisher); !ok {
		t.Fatalf("expected a kafka publisher, got %T", kafkaPublisher)
	}
	_ = kafkaPublisher.Close()

	if _, err := NewPublisher(config.EventsConfig{Driver: "sqs"}); err == nil {
		t.Fatal("expected an unknown driver to fail")
	}
}
