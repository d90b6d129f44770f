// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieSigner signs and verifies the session cookie value.
//
// # Design
//
// The cookie does NOT carry identity. It carries only the opaque server-side
// session ID, wrapped in an HS256-signed token so a client cannot mint or
// tamper with it. All authority lives in the session record; deleting that
// record invalidates the cookie immediately regardless of its signature.
type CookieSigner struct {
	secret []byte
	issuer string
}

// NewCookieSigner creates a [CookieSigner] keyed with the session secret.
func NewCookieSigner(secret, issuer string) *CookieSigner {
	return &CookieSigner{secret: []byte(secret), issuer: issuer}
}

// sessionClaims is the payload embedded in the signed cookie value.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// Sign produces the signed cookie value for a session ID.
//
// The embedded expiry mirrors the server-side session TTL so a stale cookie
// fails verification even before the store lookup.
func (signer *CookieSigner) Sign(sessionID string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    signer.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedValue, err := token.SignedString(signer.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session cookie: %w", err)
	}

	return signedValue, nil
}

// Verify checks the cookie value's signature and expiry and returns the
// embedded session ID.
func (signer *CookieSigner) Verify(cookieValue string) (string, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return signer.secret, nil
	})

	if err != nil {
		return "", fmt.Errorf("sec: invalid session cookie: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("sec: invalid session cookie claims")
	}

	return claims.Subject, nil
}
