// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/fyyur/internal/platform/constants"
)

// RedisStore implements [Store] with one Redis list per session.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed [Store].
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
Push appends a message to the session list and refreshes its TTL.

Parameters:
  - ctx: context.Context
  - sessionID: string
  - message: Message
  - ttl: time.Duration

Returns:
  - error: Encoding or connectivity errors
*/
func (store *RedisStore) Push(ctx context.Context, sessionID string, message Message, ttl time.Duration) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("redis_flash_encode_failed: %w", err)
	}

	key := constants.RedisPrefixFlash + sessionID

	pipeline := store.client.TxPipeline()
	pipeline.RPush(ctx, key, payload)
	pipeline.Expire(ctx, key, ttl)

	if _, err := pipeline.Exec(ctx); err != nil {
		return fmt.Errorf("redis_flash_push_failed: %w", err)
	}

	return nil
}

/*
Pop reads and deletes the session list atomically.

Parameters:
  - ctx: context.Context
  - sessionID: string

Returns:
  - []Message: Pending messages, oldest first (empty if none)
  - error: Connectivity errors
*/
func (store *RedisStore) Pop(ctx context.Context, sessionID string) ([]Message, error) {
	key := constants.RedisPrefixFlash + sessionID

	pipeline := store.client.TxPipeline()
	rangeCmd := pipeline.LRange(ctx, key, 0, -1)
	pipeline.Del(ctx, key)

	if _, err := pipeline.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis_flash_pop_failed: %w", err)
	}

	raw := rangeCmd.Val()
	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		var message Message
		// A corrupt entry is dropped rather than failing the page.
		if err := json.Unmarshal([]byte(item), &message); err != nil {
			continue
		}
		messages = append(messages, message)
	}

	return messages, nil
}
