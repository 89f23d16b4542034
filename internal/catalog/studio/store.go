// Copyright (c) 2026 GVDB. All rights reserved.

package studio

import "context"

// Repository is the storage contract for studios.
type Repository interface {
	// List returns every studio ordered by name.
	List(ctx context.Context) ([]*Studio, error)

	// Create stores a new studio and seeds its placeholder pool stage
	// names in the same transaction. Returns the new studio's id.
	Create(ctx context.Context, name string) (int, error)

	// Roster returns the stage names billed at one studio, placeholder
	// pools first, then alphabetically.
	Roster(ctx context.Context, studioID int) ([]*RosterEntry, error)
}
