// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package auth

// # Credential Constraints

const (
	// MinUsernameLength keeps handles readable and unambiguous.
	MinUsernameLength = 3

	// MaxUsernameLength bounds storage and display width.
	MaxUsernameLength = 32

	// MinPasswordLength is the weakest password the service accepts.
	MinPasswordLength = 8
)
