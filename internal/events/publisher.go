// Package events publishes activity lifecycle events for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Event types emitted for activities.
const (
	ActivityCreated = "activity.created"
	ActivityUpdated = "activity.updated"
	ActivityDeleted = "activity.deleted"
)

// ActivityEvent is the JSON payload written for every activity change.
type ActivityEvent struct {
	EventType         string    `json:"event_type"`
	ActivityID        string    `json:"activity_id"`
	UserID            string    `json:"user_id"`
	ActivityType      string    `json:"activity_type,omitempty"`
	DoneAt            time.Time `json:"done_at"`
	DurationInMinutes int       `json:"duration_in_minutes,omitempty"`
	CaloriesBurned    int       `json:"calories_burned,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// Publisher delivers activity events.
type Publisher interface {
	PublishActivity(ctx context.Context, event ActivityEvent) error
	Close() error
}

// NopPublisher discards events; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishActivity(context.Context, ActivityEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a single topic, keyed by user so a user's events stay ordered.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher creates an asynchronous publisher for topic on brokers.
// Delivery failures are logged by the writer's completion callback.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: newWriter(brokers, topic)}
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
		MaxAttempts:  3,
		Async:        true,
		Completion:   logFailedDelivery,
	}
}

func logFailedDelivery(messages []kafka.Message, err error) {
	if err != nil {
		log.Printf("Warning: failed to deliver %d activity event(s): %v", len(messages), err)
	}
}

func (p *KafkaPublisher) PublishActivity(ctx context.Context, event ActivityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.EventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.EventType, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
