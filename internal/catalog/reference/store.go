// Copyright (c) 2026 GVDB. All rights reserved.

package reference

import "context"

// Repository is the storage contract for reference lookups.
type Repository interface {
	// StudioNames returns every distinct studio name, ordered.
	StudioNames(ctx context.Context) ([]string, error)

	// Studios returns every studio as {id, name}, ordered by name.
	Studios(ctx context.Context) ([]*StudioRef, error)

	// TagsByCategory returns every tag name grouped by its category.
	TagsByCategory(ctx context.Context) (map[string][]string, error)
}
