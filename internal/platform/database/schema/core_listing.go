// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package schema

// CoreListingTable represents the 'core.listing' table
type CoreListingTable struct {
	Table     string
	ID        string
	Title     string
	OwnerID   string
	CreatedAt string
	UpdatedAt string
}

// CoreListing is the schema definition for core.listing
var CoreListing = CoreListingTable{
	Table:     "core.listing",
	ID:        "id",
	Title:     "title",
	OwnerID:   "ownerid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t CoreListingTable) Columns() []string {
	return []string{t.ID, t.Title, t.OwnerID, t.CreatedAt, t.UpdatedAt}
}
