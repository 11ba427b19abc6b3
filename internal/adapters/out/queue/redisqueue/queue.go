// Package redisqueue implements the shipment queue on a Redis list. The
// default broker for single-node deployments: LPUSH on publish, RPOP drain on
// poll, so identifiers come back in publish order.
package redisqueue

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// defaultKey is the Redis list the shipment identifiers travel through.
const defaultKey = "fulfillment:shipments"

// pollWait bounds how long a poll blocks waiting for the first identifier.
const pollWait = time.Second

// Queue is a Redis-list-backed shipment queue.
type Queue struct {
	client *redis.Client
	key    string
}

// NewQueue creates a queue on the given Redis client using the default list key.
func NewQueue(client *redis.Client) *Queue {
	return &Queue{client: client, key: defaultKey}
}

// Publish pushes the shipping identifier onto the list. The identifier
// doubles as the message identifier since Redis lists have none of their own.
func (q *Queue) Publish(ctx context.Context, id kernel.UUID) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}

	if err := q.client.LPush(ctx, q.key, id.String()).Err(); err != nil {
		return "", err
	}

	return id.String(), nil
}

// Poll pops up to max identifiers from the list. Blocks up to pollWait for
// the first one, then drains without blocking. Malformed entries are dropped.
func (q *Queue) Poll(ctx context.Context, max int) ([]kernel.UUID, error) {
	if max <= 0 {
		return nil, nil
	}

	ids := make([]kernel.UUID, 0, max)

	raw, err := q.client.BRPop(ctx, pollWait, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return ids, nil
	}
	if err != nil {
		return nil, err
	}

	// BRPop returns [key, value].
	if id, parseErr := kernel.UUIDFromString(raw[1]); parseErr == nil {
		ids = append(ids, id)
	}

	for len(ids) < max {
		value, popErr := q.client.RPop(ctx, q.key).Result()
		if errors.Is(popErr, redis.Nil) {
			break
		}
		if popErr != nil {
			return nil, popErr
		}

		id, parseErr := kernel.UUIDFromString(value)
		if parseErr != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}
