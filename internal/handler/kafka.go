package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type TaskHandler interface {
	HandleTask(ctx context.Context, task entities.ReconcileTask) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	tasks    TaskHandler
}

// NewKafkaHandler consumes reconcile tasks. Tasks that still fail after the
// service's own retries are parked in "<topic>-dlq".
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, tasks TaskHandler) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.ReconcileTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaHandler(logger, reader, dlq, tasks)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, tasks TaskHandler) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		tasks:    tasks,
	}
}

// Consume blocks until ctx is done or the reader is closed.
func (h *kafkaHandler) Consume(ctx context.Context) error {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// Leave the offset alone when the task was neither applied nor parked.
		if !h.process(ctx, m) {
			continue
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// process reports whether the message is done with: applied, or parked in the DLQ.
func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) bool {
	tasksInProgress.Inc()
	defer tasksInProgress.Dec()

	start := time.Now()
	err := h.handleTask(ctx, m)
	taskProcessingDuration.Observe(time.Since(start).Seconds())

	if err == nil {
		tasksProcessed.Inc()
		return true
	}

	tasksFailed.Inc()
	h.logger.Error("failed to handle reconcile task",
		slog.String("key", string(m.Key)),
		slog.Any("error", err),
	)

	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return false
	}
	tasksDLQ.Inc()
	return true
}

func (h *kafkaHandler) handleTask(ctx context.Context, m kafka.Message) error {
	var task entities.ReconcileTask
	if err := json.Unmarshal(m.Value, &task); err != nil {
		return fmt.Errorf("failed to unmarshal task: %w", err)
	}

	if err := h.validate.Struct(task); err != nil {
		return fmt.Errorf("invalid task data: %w", err)
	}

	return h.tasks.HandleTask(ctx, task)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	return errors.Join(h.reader.Close(), h.dlq.Close())
}
