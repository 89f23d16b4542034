// Copyright (c) 2026 GVDB. All rights reserved.

package production

import "context"

// Repository defines the data access contract for the production domain.
type Repository interface {

	/*
		Search returns one page of view rows matching the compiled filter,
		with performer names resolved, plus the total matching count.

		The count and the page fetch run against the same predicate on the
		same acquired connection, so the two can never drift apart.

		Parameters:
		  - context: context.Context
		  - filter: SearchFilter (compiled via CompileFilter)
		  - orderBy: string (ORDER BY body compiled via CompileSort)
		  - limit, offset: int

		Returns:
		  - []*SearchRow: hydrated page rows
		  - int: total count matching the filter, pre-pagination
		  - error: storage failures
	*/
	Search(context context.Context, filter SearchFilter, orderBy string, limit, offset int) ([]*SearchRow, int, error)

	/*
		SegmentsByParent returns every segment row of one album, ordered by
		code, with the same per-row performer resolution as Search.
	*/
	SegmentsByParent(context context.Context, parentID int) ([]*SearchRow, error)

	/*
		FindByID returns a production hydrated with its parent album,
		performers, tags, and the full available-tag catalog.

		Returns ErrNotFound if the production does not exist.
	*/
	FindByID(context context.Context, id int) (*Production, error)

	/*
		GetType returns the stored type of a production, or ErrNotFound.
	*/
	GetType(context context.Context, id int) (Type, error)

	/*
		Create inserts a production and, for singles and segments, its
		performances and tags, in one transaction. Segments resolve their
		parent album by code inside the same transaction and store neither
		studio nor release date. Returns the new production id.
	*/
	Create(context context.Context, input CreateInput) (int, error)

	/*
		Update applies an edit payload in one transaction: field update
		(segments only code/title/comment), listed performer deletions,
		is_new inserts, modified role updates, and a full tag-set replace.
		A failure at any step rolls the whole edit back.
	*/
	Update(context context.Context, id int, productionType Type, input UpdateInput) error

	/*
		Picker returns productions matching the edit-form picker filter,
		latest release first.
	*/
	Picker(context context.Context, filter PickerFilter) ([]*PickerRow, error)

	/*
		SearchAlbums returns up to ten albums matching a code/title
		substring, latest release first.
	*/
	SearchAlbums(context context.Context, query string) ([]*AlbumSuggestion, error)
}
