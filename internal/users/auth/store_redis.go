// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hoangvx/listora/internal/platform/apperr"
	"github.com/hoangvx/listora/internal/platform/constants"
)

// RedisSessionStore implements [SessionStore] using Redis.
//
// Each session is a JSON-encoded [SessionData] under auth:session:<id> with
// the TTL as the expiry authority. Redis evicting the key IS the session
// expiring; nothing else needs to sweep.
type RedisSessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new Redis-backed SessionStore.
func NewSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

/*
Create stores a new session record with the given TTL.

Parameters:
  - context: context.Context
  - sessionID: string
  - data: SessionData
  - ttl: time.Duration

Returns:
  - error: Serialization or execution errors
*/
func (repository *RedisSessionStore) Create(context context.Context, sessionID string, data SessionData, ttl time.Duration) error {

	// Serialize the identity reference
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	// Use constants for key prefix
	key := constants.RedisPrefixSession + sessionID

	// Set the session with TTL
	if err := repository.client.Set(context, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Get retrieves the identity reference for a session ID.

Description: Returns apperr.NotFound if the session is absent or expired.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - *SessionData: Stored identity reference
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionStore) Get(context context.Context, sessionID string) (*SessionData, error) {

	// Use constants for key prefix
	key := constants.RedisPrefixSession + sessionID

	// Get the session from Redis
	payload, err := repository.client.Get(context, key).Bytes()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Session is invalid or expired")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	// Deserialize the identity reference
	data := &SessionData{}
	if err := json.Unmarshal(payload, data); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}

	// Return the session data
	return data, nil
}

/*
Refresh rewrites a session record and resets its TTL.

Parameters:
  - context: context.Context
  - sessionID: string
  - data: SessionData
  - ttl: time.Duration

Returns:
  - error: Serialization or execution errors
*/
func (repository *RedisSessionStore) Refresh(context context.Context, sessionID string, data SessionData, ttl time.Duration) error {

	// Serialize the identity reference
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	// Use constants for key prefix
	key := constants.RedisPrefixSession + sessionID

	// Overwrite the session with a fresh TTL
	if err := repository.client.Set(context, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_refresh_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Delete removes the session from Redis.

Description: Deleting an absent key is a no-op, which makes logout idempotent.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionStore) Delete(context context.Context, sessionID string) error {

	// Use constants for key prefix
	key := constants.RedisPrefixSession + sessionID

	// Delete the session from Redis
	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	// Return nil on success
	return nil
}
