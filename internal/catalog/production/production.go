// Copyright (c) 2026 GVDB. All rights reserved.

/*
Package production implements the catalog's production search and editing
surface.

A production is either a standalone single, a multi-part album, or one
segment of an album. Search runs against the denormalized
production_search_view, which flattens each production with its studio name,
per-facet tag-name arrays, and performer stage-name ids; segments inherit
studio and release date from their parent album through the view, and an
album's arrays are the union of its segments'.

Core Responsibility:

  - Filter Compiler: named query filters compiled into one AND-joined,
    fully parameterized predicate set.
  - Sort Compiler: whitelisted multi-key ordering with a fixed default.
  - Performer Name Resolver: batch resolution of performer-id arrays into
    ordered, placeholder-free display strings.
  - Editing: transactional create/update of productions with their
    performance and tag associations.
*/
package production

import "time"

// # Domain Enums

// Type classifies a production within the album hierarchy.
type Type string

const (
	// TypeSingle is a standalone work.
	TypeSingle Type = "single"

	// TypeAlbum is a multi-part release; its segments carry the actual
	// performances and tags.
	TypeAlbum Type = "album"

	// TypeSegment is one part of an album. Segments store no studio or
	// release date of their own.
	TypeSegment Type = "segment"
)

// IsValid reports whether t is a recognised [Type] value.
func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeAlbum, TypeSegment:
		return true
	}
	return false
}

// Credited roles, in display precedence order.
const (
	RoleTop      = "top"
	RoleBottom   = "bottom"
	RoleGiver    = "giver"
	RoleReceiver = "receiver"
)

// # Search Types

// SearchRow is one denormalized view row plus the resolved credit line.
type SearchRow struct {
	ID           int       `json:"id"`
	Code         string    `json:"code"`
	Type         Type      `json:"type"`
	Title        *string   `json:"title"`
	ReleaseDate  *string   `json:"release_date"`
	Comment      *string   `json:"comment"`
	Studio       *string   `json:"studio"`
	ParentID     *int      `json:"parent_id"`
	UpdatedAt    time.Time `json:"updated_at"`
	SexActs      []string  `json:"sex_acts"`
	Styles       []string  `json:"styles"`
	Scenarios    []string  `json:"scenarios"`
	BodyTypes    []string  `json:"body_types"`
	Sources      []string  `json:"sources"`
	PerformerIDs []int     `json:"performer_ids"`

	// Actors is the resolved performer display string, empty when the row
	// has no credited performers.
	Actors string `json:"actors"`
}

// SearchFilter holds the recognised search filter keys.
//
// Types carries the raw tokens exactly as supplied: nil means the parameter
// was absent (default single+album view), while a non-nil slice whose tokens
// are all unrecognised compiles to no type predicate at all.
type SearchFilter struct {
	Types     []string
	Studios   []string
	ActorIDs  []int
	SexActs   []string
	Styles    []string
	BodyTypes []string
	Sources   []string
	Keyword   string
	DateFrom  string
	DateTo    string
}

// # Editing Types

// Production is the full entity returned by the detail endpoint,
// hydrated with its parent album, performers, and tags.
type Production struct {
	ID          int     `json:"id"`
	Code        string  `json:"code"`
	Type        Type    `json:"type"`
	Title       *string `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Comment     *string `json:"comment"`
	StudioID    *int    `json:"studio_id"`
	StudioName  *string `json:"studio_name"`
	ParentID    *int    `json:"parent_id"`

	ParentAlbum *ParentAlbum `json:"parent_album"`
	Performers  []Performer  `json:"performers"`
	Tags        []TagRef     `json:"tags"`

	// AvailableTags lists every tag grouped by category, for edit forms.
	AvailableTags map[string][]Tag `json:"available_tags,omitempty"`
}

// ParentAlbum is the minimal parent reference carried by a segment.
type ParentAlbum struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	StudioID *int   `json:"studio_id"`
}

// Performer is one performance record hydrated with its stage name.
type Performer struct {
	ID            int     `json:"id"`
	StageNameID   int     `json:"stage_name_id"`
	Role          *string `json:"role"`
	PerformerType string  `json:"performer_type"`
	StageName     string  `json:"stage_name"`
	StudioID      *int    `json:"studio_id"`
	StudioName    *string `json:"studio_name"`
}

// TagRef is one tag attached to a production.
type TagRef struct {
	TagID    int    `json:"tag_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// Tag is a catalog tag as offered to edit forms.
type Tag struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// PerformerInput is one performer entry in an update payload.
type PerformerInput struct {
	StageNameID   int    `json:"stage_name_id"`
	Role          string `json:"role"`
	PerformerType string `json:"performer_type"`
	IsNew         bool   `json:"is_new"`
	Modified      bool   `json:"modified"`
}

// UpdateInput is the payload accepted by the production update endpoint.
type UpdateInput struct {
	Code             string           `json:"code"`
	Title            string           `json:"title"`
	ReleaseDate      string           `json:"release_date"`
	Comment          string           `json:"comment"`
	StudioID         *int             `json:"studio_id"`
	Performers       []PerformerInput `json:"performers"`
	Tags             []int            `json:"tags"`
	DeletePerformers []int            `json:"delete_performers"`
}

// CreatePerformer is one credited performer in a creation payload.
type CreatePerformer struct {
	StageNameID int    `json:"stage_name_id"`
	Role        string `json:"role"`
}

// CreateInput is the payload accepted by the production creation endpoint.
// Segments reference their parent album by code; their studio and release
// date are cleared on insert and inherited at read time.
type CreateInput struct {
	Type        string            `json:"type"`
	Code        string            `json:"code"`
	StudioID    *int              `json:"studio_id"`
	Title       string            `json:"title"`
	ReleaseDate string            `json:"release_date"`
	Comment     string            `json:"comment"`
	ParentCode  string            `json:"parent_album"`
	Performers  []CreatePerformer `json:"performers"`
	Tags        []int             `json:"tags"`
}

// # Lookup Types

// PickerRow is one row of the production picker used by edit forms.
type PickerRow struct {
	ID          int     `json:"id"`
	Code        string  `json:"code"`
	Title       *string `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Type        Type    `json:"type"`
	StudioID    *int    `json:"studio_id"`
	StudioName  *string `json:"studio_name"`
	ParentCode  *string `json:"parent_code"`
}

// PickerFilter narrows the production picker.
type PickerFilter struct {
	Query     string
	StudioIDs []int
	Types     []string
	Limit     int
}

// AlbumSuggestion is one album autocomplete hit.
type AlbumSuggestion struct {
	ID          int     `json:"id"`
	Code        string  `json:"code"`
	Title       *string `json:"title"`
	ReleaseDate *string `json:"release_date"`
	StudioName  *string `json:"studio_name"`
}
