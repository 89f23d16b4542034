// Copyright (c) 2026 GVDB. All rights reserved.

package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gvdb/internal/catalog/production"
)

/*
TestCompileFilter_Default verifies that an absent types parameter applies
the default single+album visibility predicate.
*/
func TestCompileFilter_Default(t *testing.T) {
	where, args := production.CompileFilter(production.SearchFilter{})

	assert.Equal(t, "type = ANY($1)", where)
	require.Len(t, args, 1)
	assert.Equal(t, []string{"album", "single"}, args[0])
}

/*
TestCompileFilter_TypeExpansion verifies album→{album,segment} expansion and
the no-predicate behavior when every token is unrecognised.
*/
func TestCompileFilter_TypeExpansion(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expanded []production.Type
	}{
		{
			name:     "album expands to album and segment",
			tokens:   []string{"album"},
			expanded: []production.Type{production.TypeAlbum, production.TypeSegment},
		},
		{
			name:     "single maps to itself",
			tokens:   []string{"single"},
			expanded: []production.Type{production.TypeSingle},
		},
		{
			name:     "both compose in order",
			tokens:   []string{"single", "album"},
			expanded: []production.Type{production.TypeSingle, production.TypeAlbum, production.TypeSegment},
		},
		{
			name:     "unknown tokens contribute nothing",
			tokens:   []string{"bogus", "segment"},
			expanded: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expanded, production.ExpandTypes(tc.tokens))
		})
	}

	// Present-but-unrecognised tokens compile to no type predicate at all,
	// unlike an absent parameter which applies the default.
	where, args := production.CompileFilter(production.SearchFilter{Types: []string{"bogus"}})
	assert.Equal(t, "TRUE", where)
	assert.Empty(t, args)
}

/*
TestCompileFilter_Conjunction verifies that every present key contributes
exactly one AND-joined predicate with correctly numbered placeholders.
*/
func TestCompileFilter_Conjunction(t *testing.T) {
	filter := production.SearchFilter{
		Types:    []string{"single"},
		Studios:  []string{"Acme"},
		ActorIDs: []int{3, 9},
		SexActs:  []string{"x"},
		Keyword:  "ACM",
		DateFrom: "2024.01",
		DateTo:   "2025.12",
	}

	where, args := production.CompileFilter(filter)

	assert.Equal(t,
		"type = ANY($1) AND studio = ANY($2) AND performer_ids && $3::int[] AND "+
			"sex_acts && $4::varchar[] AND "+
			"(code ILIKE $5 OR title ILIKE $6 OR comment ILIKE $7) AND "+
			"release_date >= $8 AND release_date <= $9",
		where)

	require.Len(t, args, 9)
	assert.Equal(t, []int{3, 9}, args[2])
	assert.Equal(t, "%ACM%", args[4])
	assert.Equal(t, "2024.01", args[7])
}

/*
TestCompileFilter_ActorOverlap verifies the actors predicate is a
set-intersection test, so disjoint ids widen rather than narrow the match.
*/
func TestCompileFilter_ActorOverlap(t *testing.T) {
	where, args := production.CompileFilter(production.SearchFilter{
		Types:    []string{"single"},
		ActorIDs: []int{7},
	})

	assert.Contains(t, where, "performer_ids && $2::int[]")
	assert.Equal(t, []int{7}, args[1])
}
