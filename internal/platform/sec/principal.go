// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

/*
Package sec provides cryptographic primitives and identity types.

It isolates security-sensitive code (password hashing, random tokens, cookie
signing) from the domain logic. Services consume it via small, injectable
helpers rather than ambient globals.
*/
package sec

// Principal is the resolved identity attached to an authenticated request.
//
// # Why not the full User?
//
// The session record stores only a serialized reference (ID and username).
// Resolving a request must not require a database round-trip; handlers that
// need the full account fetch it explicitly through the user repository.
type Principal struct {
	// UserID is the account's unique identifier.
	UserID string

	// Username is the account's display handle, carried for logging and views.
	Username string

	// SessionID is the opaque server-side session this principal was resolved from.
	SessionID string
}
