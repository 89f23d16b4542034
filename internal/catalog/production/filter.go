// Copyright (c) 2026 GVDB. All rights reserved.

package production

import (
	"fmt"
	"strings"

	"gvdb/internal/platform/database/schema"
)

// clause accumulates AND-joined predicate fragments with positional
// bind values. Fragments reference arguments through [clause.arg] so the
// placeholder numbering always matches the args slice.
type clause struct {
	frags []string
	args  []any
}

// arg registers a bind value and returns its positional placeholder.
func (c *clause) arg(value any) string {
	c.args = append(c.args, value)
	return fmt.Sprintf("$%d", len(c.args))
}

// add appends one predicate fragment.
func (c *clause) add(frag string) {
	c.frags = append(c.frags, frag)
}

// where joins the fragments into a WHERE body. An empty predicate set
// matches everything.
func (c *clause) where() string {
	if len(c.frags) == 0 {
		return "TRUE"
	}
	return strings.Join(c.frags, " AND ")
}

/*
CompileFilter compiles the recognised filter keys of a [SearchFilter] into
one AND-joined WHERE body over the search view, with positional bind values.

Every present, non-empty key contributes exactly one predicate; absent keys
contribute none. Keys are compiled in a fixed order so the generated SQL is
deterministic. Values are always bound, never concatenated.

Malformed filter identifiers are rejected upstream (see the HTTP layer);
this is the opposite leniency policy from [CompileSort], which drops
unknown tokens silently. The two policies are deliberate and must not be
unified.
*/
func CompileFilter(filter SearchFilter) (string, []any) {
	c := &clause{}

	compileTypes(c, filter.Types)

	if len(filter.Studios) > 0 {
		c.add(fmt.Sprintf("%s = ANY(%s)", schema.SearchView.Studio, c.arg(filter.Studios)))
	}

	if len(filter.ActorIDs) > 0 {
		c.add(fmt.Sprintf("%s && %s::int[]", schema.SearchView.PerformerIDs, c.arg(filter.ActorIDs)))
	}

	compileOverlap(c, schema.SearchView.SexActs, filter.SexActs)
	compileOverlap(c, schema.SearchView.Styles, filter.Styles)
	compileOverlap(c, schema.SearchView.BodyTypes, filter.BodyTypes)
	compileOverlap(c, schema.SearchView.Sources, filter.Sources)

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		c.add(fmt.Sprintf("(%s ILIKE %s OR %s ILIKE %s OR %s ILIKE %s)",
			schema.SearchView.Code, c.arg(pattern),
			schema.SearchView.Title, c.arg(pattern),
			schema.SearchView.Comment, c.arg(pattern)))
	}

	// Release dates are "YYYY.MM" text, so inclusive string comparison
	// orders correctly.
	if filter.DateFrom != "" {
		c.add(fmt.Sprintf("%s >= %s", schema.SearchView.ReleaseDate, c.arg(filter.DateFrom)))
	}
	if filter.DateTo != "" {
		c.add(fmt.Sprintf("%s <= %s", schema.SearchView.ReleaseDate, c.arg(filter.DateTo)))
	}

	return c.where(), c.args
}

/*
ExpandTypes maps raw type tokens onto concrete production types.

"album" expands to album+segment so an album's segments remain reachable as
rows; "single" maps to itself; unknown tokens contribute nothing. A token
list where nothing is recognised therefore expands to an empty set.
*/
func ExpandTypes(tokens []string) []Type {
	var expanded []Type
	for _, token := range tokens {
		switch token {
		case "album":
			expanded = append(expanded, TypeAlbum, TypeSegment)
		case "single":
			expanded = append(expanded, TypeSingle)
		}
	}
	return expanded
}

// compileTypes applies the production-type predicate. A nil token list
// means the parameter was absent and the default single+album view applies;
// a non-nil list that expands to nothing applies no type predicate at all.
func compileTypes(c *clause, tokens []string) {
	if tokens == nil {
		c.add(fmt.Sprintf("%s = ANY(%s)", schema.SearchView.Type, c.arg([]string{"album", "single"})))
		return
	}

	expanded := ExpandTypes(tokens)
	if len(expanded) == 0 {
		return
	}
	c.add(fmt.Sprintf("%s = ANY(%s)", schema.SearchView.Type, c.arg(expanded)))
}

// compileOverlap applies a set-intersection-non-empty predicate against one
// of the view's tag-name arrays.
func compileOverlap(c *clause, column string, values []string) {
	if len(values) == 0 {
		return
	}
	c.add(fmt.Sprintf("%s && %s::varchar[]", column, c.arg(values)))
}
