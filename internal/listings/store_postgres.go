// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package listings

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoangvx/listora/internal/platform/database/schema"
	"github.com/hoangvx/listora/internal/platform/dberr"
)

// # Repository Implementation

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Postgres implementation for listing storage.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create inserts a new row into the core.listing table.

Parameters:
  - context: context.Context
  - listing: *Listing

Returns:
  - error: Execution failures
*/
func (repository *PostgresRepository) Create(context context.Context, listing *Listing) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		schema.CoreListing.Table,
		schema.CoreListing.ID, schema.CoreListing.Title, schema.CoreListing.OwnerID,
		schema.CoreListing.CreatedAt, schema.CoreListing.UpdatedAt,
	)

	now := time.Now()
	_, err := repository.pool.Exec(context, query,
		listing.ID,
		listing.Title,
		listing.OwnerID,
		now,
		now,
	)

	if err != nil {
		return dberr.Wrap(err, "create_listing")
	}

	listing.CreatedAt = now
	listing.UpdatedAt = now
	return nil
}

/*
FindByID retrieves a single listing joined with its owner's username.

Description: LEFT JOIN so listings whose owner account was removed still
resolve, with a nil Owner.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Listing: Hydrated entity
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Listing, error) {
	query := fmt.Sprintf(`
		SELECT l.%s, l.%s, l.%s, l.%s, l.%s, a.%s
		FROM %s l
		LEFT JOIN %s a ON a.%s = l.%s
		WHERE l.%s = $1`,
		schema.CoreListing.ID, schema.CoreListing.Title, schema.CoreListing.OwnerID,
		schema.CoreListing.CreatedAt, schema.CoreListing.UpdatedAt,
		schema.UserAccount.Username,
		schema.CoreListing.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.CoreListing.OwnerID,
		schema.CoreListing.ID,
	)

	listing := &Listing{}
	var ownerUsername *string
	err := repository.pool.QueryRow(context, query, id).Scan(
		&listing.ID,
		&listing.Title,
		&listing.OwnerID,
		&listing.CreatedAt,
		&listing.UpdatedAt,
		&ownerUsername,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "get_listing")
	}

	if listing.OwnerID != nil && ownerUsername != nil {
		listing.Owner = &OwnerSummary{ID: *listing.OwnerID, Username: *ownerUsername}
	}

	return listing, nil
}

/*
List retrieves every listing ordered by creation time, newest first.

Parameters:
  - context: context.Context

Returns:
  - []*Listing: All listings
  - error: Execution failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC`,
		schema.CoreListing.ID, schema.CoreListing.Title, schema.CoreListing.OwnerID,
		schema.CoreListing.CreatedAt, schema.CoreListing.UpdatedAt,
		schema.CoreListing.Table,
		schema.CoreListing.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_listings")
	}
	defer rows.Close()

	var results []*Listing
	for rows.Next() {
		listing := &Listing{}
		if err := rows.Scan(
			&listing.ID,
			&listing.Title,
			&listing.OwnerID,
			&listing.CreatedAt,
			&listing.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_listing")
		}
		results = append(results, listing)
	}

	return results, rows.Err()
}

/*
Update rewrites the title of a listing and refreshes updatedat.

Parameters:
  - context: context.Context
  - listing: *Listing

Returns:
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresRepository) Update(context context.Context, listing *Listing) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3
		WHERE %s = $1`,
		schema.CoreListing.Table,
		schema.CoreListing.Title, schema.CoreListing.UpdatedAt,
		schema.CoreListing.ID,
	)

	tag, err := repository.pool.Exec(context, query, listing.ID, listing.Title, time.Now())
	if err != nil {
		return dberr.Wrap(err, "update_listing")
	}

	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

/*
Delete removes a listing row.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreListing.Table, schema.CoreListing.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_listing")
	}

	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
