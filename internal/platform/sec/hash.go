// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// bcrypt generates a random per-user salt and embeds it in the output, so no
// separate salt column is needed and two identical passwords hash differently.
func HashPassword(plainTextPassword string) (string, error) {
	return HashPasswordCost(plainTextPassword, bcrypt.DefaultCost)
}

// HashPasswordCost hashes with an explicit bcrypt cost.
//
// Tests use [bcrypt.MinCost] to avoid the ~250ms per-hash overhead of the
// production work factor.
func HashPasswordCost(plainTextPassword string, cost int) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
// The comparison is constant-time inside bcrypt.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
