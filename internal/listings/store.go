// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package listings

import "context"

// Repository defines the persistence operations for listings.
type Repository interface {
	/*
		Create inserts a new listing row.

		Parameters:
		  - context: context.Context
		  - listing: *Listing (ID and OwnerID already assigned)

		Returns:
		  - error: Execution failures
	*/
	Create(context context.Context, listing *Listing) error

	/*
		FindByID retrieves a single listing with its owner summary joined.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Listing: Hydrated entity
		  - error: apperr.NotFound or execution failures
	*/
	FindByID(context context.Context, id string) (*Listing, error)

	/*
		List retrieves every listing, newest first.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Listing: All listings
		  - error: Execution failures
	*/
	List(context context.Context) ([]*Listing, error)

	/*
		Update rewrites the mutable fields of a listing.

		Parameters:
		  - context: context.Context
		  - listing: *Listing

		Returns:
		  - error: apperr.NotFound or execution failures
	*/
	Update(context context.Context, listing *Listing) error

	/*
		Delete removes a listing row.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: apperr.NotFound or execution failures
	*/
	Delete(context context.Context, id string) error
}
