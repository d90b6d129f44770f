// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hoangvx/listora/internal/platform/apperr"
	"github.com/hoangvx/listora/internal/platform/constants"
	"github.com/hoangvx/listora/internal/platform/sec"
	"github.com/hoangvx/listora/internal/platform/validate"
	"github.com/hoangvx/listora/pkg/uuid"
)

// Service implements identity and session use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	sessionStore   SessionStore
	cookieSigner   *sec.CookieSigner
	hashCost       int
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, sessionStore SessionStore, cookieSigner *sec.CookieSigner) *Service {
	return &Service{
		userRepository: userRepo,
		sessionStore:   sessionStore,
		cookieSigner:   cookieSigner,
		hashCost:       bcrypt.DefaultCost,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrollment of a new member, handling password hashing with a
per-user salt. The credential never leaves this method in plain text.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity (PasswordHash never serialized)
  - error: ValidationError, Conflict (if the username exists), or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Reject structurally invalid input before touching storage.
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, MinUsernameLength).
		MaxLen(FieldUsername, input.Username, MaxUsernameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Verify username uniqueness. Return a client-safe Conflict error.
	_, err := service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPasswordCost(input.Password, service.hashCost)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

/*
Authenticate verifies a username/password pair.

Description: Looks up the account and performs a constant-time password
comparison. The failure message never reveals whether the username or the
password was wrong, to prevent account enumeration.

Parameters:
  - context: context.Context
  - username: string
  - password: string

Returns:
  - *User: The authenticated account
  - error: Unauthorized with a uniform message on any credential failure
*/
func (service *Service) Authenticate(context context.Context, username, password string) (*User, error) {
	user, err := service.userRepository.FindByUsername(context, username)

	// Unknown user: same generic message as a wrong password.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	return user, nil
}

// # Session Lifecycle

/*
CreateSession establishes a server-side session for an authenticated user.

Description: Generates an opaque session ID, persists the serialized identity
reference with the full TTL, and returns the signed cookie value the handler
should set.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - string: Signed cookie value
  - error: Storage or signing failures
*/
func (service *Service) CreateSession(context context.Context, user *User) (string, error) {
	sessionID, err := sec.GenerateSecureToken(constants.SessionIDLength)
	if err != nil {
		return "", fmt.Errorf("auth_service_session_id_failed: %w", err)
	}

	now := time.Now()
	data := serializeIdentity(user, now)

	if err := service.sessionStore.Create(context, sessionID, data, constants.SessionTTL); err != nil {
		return "", fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	cookieValue, err := service.cookieSigner.Sign(sessionID, constants.SessionTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_cookie_sign_failed: %w", err)
	}

	return cookieValue, nil
}

/*
ResolveSession resolves a raw cookie value into an identity.

Description: Verifies the cookie signature, loads the session record, and
deserializes the identity reference. An absent, expired, tampered, or
destroyed session yields (nil, nil) — anonymous is a valid state, not an
error. As a side effect the stored expiry is refreshed, at most once per
touch interval; a lost refresh under concurrency is accepted
(last-touch-wins, no correctness impact).

Parameters:
  - context: context.Context
  - cookieValue: string

Returns:
  - *sec.Principal: Resolved identity, or nil for anonymous
  - error: Storage failures only
*/
func (service *Service) ResolveSession(context context.Context, cookieValue string) (*sec.Principal, error) {
	sessionID, err := service.cookieSigner.Verify(cookieValue)
	if err != nil {
		return nil, nil
	}

	data, err := service.sessionStore.Get(context, sessionID)
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("auth_service_session_lookup_failed: %w", err)
	}

	// Touch: refresh the stored expiry at most once per interval rather than
	// on every request, to bound write amplification. Best effort.
	if time.Since(data.TouchedAt) >= constants.SessionTouchInterval {
		touched := *data
		touched.TouchedAt = time.Now()
		_ = service.sessionStore.Refresh(context, sessionID, touched, constants.SessionTTL)
	}

	return deserializeIdentity(sessionID, data), nil
}

/*
DestroySession removes the server-side session for a cookie value.

Description: Logout. A cookie that no longer maps to a live session is
treated as already logged out (idempotent). Subsequent resolution of the
same cookie yields no identity.

Parameters:
  - context: context.Context
  - cookieValue: string

Returns:
  - error: Deletion failures
*/
func (service *Service) DestroySession(context context.Context, cookieValue string) error {
	sessionID, err := service.cookieSigner.Verify(cookieValue)
	if err != nil {
		return nil
	}

	if err := service.sessionStore.Delete(context, sessionID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	return nil
}

/*
DeserializeUser rehydrates the full account behind a resolved identity.

Parameters:
  - context: context.Context
  - principal: *sec.Principal

Returns:
  - *User: The full account record
  - error: apperr.NotFound if the account no longer exists
*/
func (service *Service) DeserializeUser(context context.Context, principal *sec.Principal) (*User, error) {
	if principal == nil {
		return nil, errors.New("auth: cannot deserialize a nil principal")
	}
	return service.userRepository.FindByID(context, principal.UserID)
}

// # Identity Serialization

// serializeIdentity reduces a full account to the reference stored in a session.
func serializeIdentity(user *User, now time.Time) SessionData {
	return SessionData{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		TouchedAt: now,
	}
}

// deserializeIdentity converts a stored reference back into a request identity.
func deserializeIdentity(sessionID string, data *SessionData) *sec.Principal {
	return &sec.Principal{
		UserID:    data.UserID,
		Username:  data.Username,
		SessionID: sessionID,
	}
}
