// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

/*
Package auth implements the user identity and session management layer.

It defines the core domain entities (User, SessionData) and logic for
registration, credential authentication, and the cookie-session lifecycle.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member who can own listings.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionData is the serialized identity reference persisted in the session
// store. It deliberately carries a reference, not the full [User] record:
// profile changes never require rewriting live sessions.
type SessionData struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`

	// TouchedAt records the last expiry refresh. Resolution refreshes the
	// stored TTL at most once per touch interval to bound write amplification.
	TouchedAt time.Time `json:"touched_at"`
}

// # Field Identifiers

// Form field names for validation in the authentication domain.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)
