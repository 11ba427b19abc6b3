// Package kafkaqueue implements the shipment queue on a Kafka topic for
// deployments that already run a broker. Identifiers are keyed by shipping id
// so duplicates of the same shipment land on the same partition.
package kafkaqueue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// pollWait bounds how long a poll waits for each message before reporting
// the batch collected so far.
const pollWait = time.Second

// Queue is a Kafka-backed shipment queue.
type Queue struct {
	writer *kafka.Writer
	reader *kafka.Reader
}

// NewQueue creates a queue on the given brokers. The consumer group gives the
// resolution worker at-least-once delivery with offsets tracked by the broker.
func NewQueue(brokers []string, topic, groupID string) *Queue {
	return &Queue{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
	}
}

// Publish writes the shipping identifier as both key and value.
func (q *Queue) Publish(ctx context.Context, id kernel.UUID) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}

	message := kafka.Message{
		Key:   []byte(id.String()),
		Value: []byte(id.String()),
		Time:  time.Now().UTC(),
	}
	if err := q.writer.WriteMessages(ctx, message); err != nil {
		return "", err
	}

	return id.String(), nil
}

// Poll reads up to max identifiers. Each read waits at most pollWait; the
// first timeout ends the batch. Malformed messages are skipped, their offsets
// still advance.
func (q *Queue) Poll(ctx context.Context, max int) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, max)

	for len(ids) < max {
		readCtx, cancel := context.WithTimeout(ctx, pollWait)
		message, err := q.reader.ReadMessage(readCtx)
		cancel()

		if errors.Is(err, context.DeadlineExceeded) {
			break
		}
		if err != nil {
			return nil, err
		}

		id, parseErr := kernel.UUIDFromString(strings.TrimSpace(string(message.Value)))
		if parseErr != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Close releases the broker connections.
func (q *Queue) Close() error {
	writerErr := q.writer.Close()
	readerErr := q.reader.Close()
	if writerErr != nil || readerErr != nil {
		return fmt.Errorf("closing kafka queue: writer=%v reader=%v", writerErr, readerErr)
	}
	return nil
}
