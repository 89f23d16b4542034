// Copyright (c) 2026 GVDB. All rights reserved.

/*
Package actor implements the performer side of the catalog: actors with
studio-scoped stage names, and the cross-tabulation aggregator that rolls an
actor's appearances up into global and per-studio role statistics.

Core Responsibility:

  - Hierarchy-aware counting: a segment's production count attributes to
    its parent album, so several segments of one album collapse into one
    production, while role counts stay per performance.
  - Role breakdowns: per-role tallies with guarded percentage math.
  - Listing: searchable, sortable, paginated actor listing that excludes
    the reserved placeholder pools by default.
*/
package actor

import "time"

// Reserved actor tags for the shared placeholder pools. These are excluded
// from default listings unless the caller opts in with show_anonymous.
var PoolTags = []string{"ANONYMOUS_POOL", "UNKNOWN_POOL", "GIRL_POOL"}

// Listing sort modes.
const (
	SortName       = "name"
	SortLatest     = "latest"
	SortCount      = "count"
	SortNewestEdit = "newest_edit"
)

// # Core Entities

// Actor is a performer identity. The actor_tag is an internal handle,
// distinct from any displayed stage name.
type Actor struct {
	ID       int     `json:"id"`
	ActorTag string  `json:"actor_tag"`
	GvdbID   *string `json:"gvdb_id"`
	Notes    *string `json:"notes"`

	StageNames []StageName `json:"stage_names"`
}

// StageName is how an actor is billed at one studio.
type StageName struct {
	ID         int    `json:"id"`
	StudioID   int    `json:"studio_id"`
	StudioName string `json:"studio_name"`
	StageName  string `json:"stage_name"`
}

// # Aggregation Types

// RoleBreakdown tallies performances per credited role. The same shape
// carries both raw counts and rounded percentages.
type RoleBreakdown struct {
	Top      int `json:"top"`
	Bottom   int `json:"bottom"`
	Giver    int `json:"giver"`
	Receiver int `json:"receiver"`
	Other    int `json:"other"`
}

// GlobalStats is an actor's catalog-wide aggregate.
type GlobalStats struct {
	TotalProductions     int           `json:"total_productions"`
	LatestProductionCode *string       `json:"latest_production_code"`
	LatestReleaseDate    *string       `json:"latest_release_date"`
	RoleBreakdown        RoleBreakdown `json:"role_breakdown"`
}

// StudioDetail is an actor's aggregate at one studio.
type StudioDetail struct {
	StudioID             *int          `json:"studio_id"`
	StudioName           *string       `json:"studio_name"`
	StageNameID          int           `json:"stage_name_id"`
	StageName            string        `json:"stage_name"`
	Productions          int           `json:"productions"`
	LatestDate           *string       `json:"latest_date"`
	LatestProductionCode *string       `json:"latest_production_code"`
	RoleBreakdown        RoleBreakdown `json:"role_breakdown"`
	RolePercentage       RoleBreakdown `json:"role_percentage"`
}

// QueryResult is one row of the actor listing response.
type QueryResult struct {
	ActorID       int            `json:"actor_id"`
	ActorTag      string         `json:"actor_tag"`
	GvdbID        *string        `json:"gvdb_id"`
	Notes         *string        `json:"notes"`
	GlobalStats   GlobalStats    `json:"global_stats"`
	StudioDetails []StudioDetail `json:"studio_details"`
}

// AggregateRow is one candidate actor with its global aggregates, before
// in-process sorting and pagination.
type AggregateRow struct {
	ActorID          int
	ActorTag         string
	GvdbID           *string
	Notes            *string
	TotalProductions int
	Roles            RoleBreakdown
	LatestDate       *string
	LatestEdit       *time.Time
}

// QueryFilter narrows the actor listing's candidate set.
type QueryFilter struct {
	Search        string
	StudioIDs     []int
	ShowAnonymous bool
}

// # Lookup Types

// SearchHit is one stage-name autocomplete result.
type SearchHit struct {
	ActorID     int     `json:"actor_id"`
	StageNameID int     `json:"stage_name_id"`
	StageName   string  `json:"stage_name"`
	ActorName   string  `json:"actor_name"`
	StudioName  *string `json:"studio_name"`
}

// Suggestion is one grouped actor suggestion, prefix matches ranked first.
type Suggestion struct {
	ActorID    int      `json:"actor_id"`
	ActorTag   string   `json:"actor_tag"`
	StageNames []string `json:"stage_names"`
	Studios    []string `json:"studios"`
}

// # Input Payloads

// StageNameInput is one stage-name entry in an actor update payload.
type StageNameInput struct {
	ID        int    `json:"id"`
	StudioID  int    `json:"studio_id"`
	StageName string `json:"stage_name"`
	IsNew     bool   `json:"is_new"`
	Modified  bool   `json:"modified"`
}

// UpdateInput is the payload accepted by the actor update endpoint.
type UpdateInput struct {
	ActorTag   string           `json:"actor_tag"`
	GvdbID     string           `json:"gvdb_id"`
	Notes      string           `json:"notes"`
	StageNames []StageNameInput `json:"stage_names"`
}

// NewStageName is one stage name in an actor creation payload.
type NewStageName struct {
	StudioID  int    `json:"studio_id"`
	StageName string `json:"stage_name"`
}

// CreateInput is the payload accepted by the actor creation endpoint.
type CreateInput struct {
	ActorTag   string         `json:"actor_tag"`
	GvdbID     string         `json:"gvdb_id"`
	Notes      string         `json:"notes"`
	StageNames []NewStageName `json:"stage_names"`
}
