// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

// Package listings implements the listing records a member manages: the
// entity, business rules, storage, and HTML routes under /list.
package listings

import "time"

// Listing is a single managed record.
type Listing struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	OwnerID *string `json:"owner_id"`

	// Owner is populated on single-record reads via a join; nil when the
	// owning account was removed.
	Owner *OwnerSummary `json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerSummary is the subset of the owning account shown on a listing page.
type OwnerSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CreateInput carries the client-controlled fields for a new listing.
// The owner is never part of it; it always comes from the session.
type CreateInput struct {
	Title string
}

// UpdateInput carries the mutable fields of a listing. Nil means unchanged.
type UpdateInput struct {
	Title *string
}

// FieldTitle identifies the title form field in validation errors.
const FieldTitle = "title"

// MaxTitleLength bounds the listing title.
const MaxTitleLength = 200
