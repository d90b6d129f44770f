// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on duplicate username, or persistence failures
	*/
	Create(context context.Context, user *User) error
}

// # Session Data Access

// SessionStore defines the persistence contract for cookie sessions.
//
// Sessions live in a separate store from application data; the store owns
// expiry (TTL) so passive expiration needs no sweeper.
type SessionStore interface {

	/*
		Create persists a new session record under the opaque session ID.

		Parameters:
		  - context: context.Context
		  - sessionID: string
		  - data: SessionData
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, sessionID string, data SessionData, ttl time.Duration) error

	/*
		Get returns the session record for the given ID.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - *SessionData: Stored identity reference
		  - error: apperr.NotFound if absent or expired, or retrieval failures
	*/
	Get(context context.Context, sessionID string) (*SessionData, error)

	/*
		Refresh rewrites the record with a fresh TTL (the "touch" operation).

		Parameters:
		  - context: context.Context
		  - sessionID: string
		  - data: SessionData
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Refresh(context context.Context, sessionID string, data SessionData, ttl time.Duration) error

	/*
		Delete removes the session record. Deleting an absent session is not an error.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - error: Deletion failures
	*/
	Delete(context context.Context, sessionID string) error
}
