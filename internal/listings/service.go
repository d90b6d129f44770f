// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package listings

import (
	"context"
	"log/slog"

	"github.com/hoangvx/listora/internal/platform/apperr"
	"github.com/hoangvx/listora/internal/platform/sec"
	"github.com/hoangvx/listora/internal/platform/validate"
	"github.com/hoangvx/listora/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for listings.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new listings [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Create validates and persists a new listing owned by the caller.

Description: The owner is always the authenticated principal. Anything the
client may have posted about ownership never reaches this method.

Parameters:
  - context: context.Context
  - input: CreateInput
  - owner: sec.Principal

Returns:
  - *Listing: Created entity
  - error: Validation or persistence failures
*/
func (service *Service) Create(context context.Context, input CreateInput, owner sec.Principal) (*Listing, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, MaxTitleLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	ownerID := owner.UserID
	listing := &Listing{
		ID:      uuid.New(),
		Title:   input.Title,
		OwnerID: &ownerID,
	}

	if err := service.repo.Create(context, listing); err != nil {
		return nil, err
	}

	service.logger.Info("listing_created",
		slog.String("listing_id", listing.ID),
		slog.String("owner_id", owner.UserID),
	)

	return listing, nil
}

/*
Get retrieves a single listing with its owner summary.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Listing: Hydrated entity
  - error: apperr.NotFound if missing
*/
func (service *Service) Get(context context.Context, id string) (*Listing, error) {
	listing, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.Debug("listing_fetched", slog.String("listing_id", listing.ID))

	return listing, nil
}

/*
List retrieves every listing, newest first.

Description: The index is shared: every authenticated member sees all
listings, not only their own.

Parameters:
  - context: context.Context

Returns:
  - []*Listing: All listings
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context) ([]*Listing, error) {
	return service.repo.List(context)
}

/*
Update modifies a listing after an ownership check.

Description: Partial replacement; fields left nil keep their stored value.
The owner is immutable.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - input: UpdateInput
  - caller: sec.Principal

Returns:
  - *Listing: Updated entity
  - error: apperr.NotFound, apperr.Forbidden, or validation failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput, caller sec.Principal) (*Listing, error) {
	listing, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.authorize(listing, caller); err != nil {
		return nil, err
	}

	if input.Title != nil {
		validator := &validate.Validator{}
		validator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, MaxTitleLength)
		if err := validator.Err(); err != nil {
			return nil, err
		}
		listing.Title = *input.Title
	}

	if err := service.repo.Update(context, listing); err != nil {
		return nil, err
	}

	service.logger.Info("listing_updated",
		slog.String("listing_id", listing.ID),
		slog.String("caller_id", caller.UserID),
	)

	return listing, nil
}

/*
Delete removes a listing after an ownership check.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - caller: sec.Principal

Returns:
  - *Listing: Snapshot of the removed entity
  - error: apperr.NotFound or apperr.Forbidden
*/
func (service *Service) Delete(context context.Context, id string, caller sec.Principal) (*Listing, error) {
	listing, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.authorize(listing, caller); err != nil {
		return nil, err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return nil, err
	}

	// Snapshot kept in the log as the audit trail of what was removed.
	service.logger.Info("listing_deleted",
		slog.String("listing_id", listing.ID),
		slog.String("title", listing.Title),
		slog.String("caller_id", caller.UserID),
	)

	return listing, nil
}

// authorize rejects mutations by anyone but the owner. Orphaned listings
// (owner account removed) are not editable.
func (service *Service) authorize(listing *Listing, caller sec.Principal) error {
	if listing.OwnerID == nil || *listing.OwnerID != caller.UserID {
		return apperr.Forbidden("You can only modify your own listings")
	}
	return nil
}
