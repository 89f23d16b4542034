// Copyright (c) 2026 GVDB. All rights reserved.

package actor

import "context"

// Repository defines the data access contract for the actor domain.
type Repository interface {

	/*
		AggregateCandidates returns every actor matching the filter with its
		global aggregates: hierarchy-aware production count, per-role
		tallies, latest attributable release date, and latest edit
		timestamp. Sorting and pagination happen in the service.
	*/
	AggregateCandidates(context context.Context, filter QueryFilter) ([]*AggregateRow, error)

	/*
		StudioDetails returns the per-studio breakdowns for a page of actor
		ids in one batched query, keyed by actor id, studios ordered by
		name within each actor.
	*/
	StudioDetails(context context.Context, actorIDs []int) (map[int][]StudioDetail, error)

	/*
		LatestCodes returns, per actor id, the code of the most recently
		released production attributable to that actor (a single's own
		code, or the parent album's code for segment work).
	*/
	LatestCodes(context context.Context, actorIDs []int) (map[int]string, error)

	/*
		FindByID returns an actor with its stage names, ordered by studio
		name. Returns ErrNotFound if missing.
	*/
	FindByID(context context.Context, id int) (*Actor, error)

	/*
		TagInUse reports whether another actor already uses the tag.
	*/
	TagInUse(context context.Context, tag string, excludeID int) (bool, error)

	/*
		Create inserts an actor and its stage names in one transaction and
		returns the new actor id.
	*/
	Create(context context.Context, input CreateInput) (int, error)

	/*
		Update applies field changes plus stage-name inserts (is_new) and
		renames (modified) in one transaction.
	*/
	Update(context context.Context, id int, input UpdateInput) error

	/*
		Search returns up to twenty stage-name autocomplete hits, lexical.
	*/
	Search(context context.Context, query string) ([]*SearchHit, error)

	/*
		Suggestions returns up to ten grouped actor suggestions, prefix
		matches on the tag ranked first.
	*/
	Suggestions(context context.Context, query string) ([]*Suggestion, error)
}
