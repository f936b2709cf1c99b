package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewWriter(brokers []string, topic string, batchTimeout time.Duration) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	}
}

type publisher struct {
	outcomes MessageWriter
	tasks    MessageWriter
}

// NewPublisher sends checkout outcomes and reconcile tasks to their topics as
// JSON. Outcomes are keyed by customer, tasks by order, so per-key ordering holds.
func NewPublisher(outcomes, tasks MessageWriter) *publisher {
	return &publisher{outcomes: outcomes, tasks: tasks}
}

func (p *publisher) PublishOutcome(ctx context.Context, outcome entities.CheckoutOutcome) error {
	if err := publishJSON(ctx, p.outcomes, outcome.CustomerID, string(outcome.Kind), outcome); err != nil {
		return fmt.Errorf("failed to publish checkout outcome: %w", err)
	}
	return nil
}

func (p *publisher) Enqueue(ctx context.Context, task entities.ReconcileTask) error {
	if err := publishJSON(ctx, p.tasks, task.OrderID, string(task.Kind), task); err != nil {
		return fmt.Errorf("failed to enqueue reconcile task: %w", err)
	}
	return nil
}

func (p *publisher) Close() error {
	return errors.Join(p.outcomes.Close(), p.tasks.Close())
}

func publishJSON(ctx context.Context, w MessageWriter, key, kind string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   data,
		Headers: []kafka.Header{{Key: "x-event-kind", Value: []byte(kind)}},
		Time:    time.Now().UTC(),
	})
}
