// Copyright (c) 2026 GVDB. All rights reserved.

package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gvdb/internal/catalog/production"
)

/*
TestCompileSort verifies the whitelist-then-ignore policy: unknown or
malformed tokens vanish without error, and an empty survivor set falls back
to the fixed default ordering.
*/
func TestCompileSort(t *testing.T) {
	tests := []struct {
		name  string
		param string
		want  string
	}{
		{
			name:  "single field",
			param: "code_asc",
			want:  "code ASC",
		},
		{
			name:  "multi key composes in order",
			param: "studio_asc,date_desc",
			want:  "studio ASC, release_date DESC",
		},
		{
			name:  "date maps to release_date and updated to updated_at",
			param: "date_asc,updated_desc",
			want:  "release_date ASC, updated_at DESC",
		},
		{
			name:  "bogus field is dropped, not an error",
			param: "bogus_asc,code_asc",
			want:  "code ASC",
		},
		{
			name:  "missing direction is dropped",
			param: "code",
			want:  "studio, code, title, release_date",
		},
		{
			name:  "unknown direction is dropped",
			param: "code_sideways",
			want:  "studio, code, title, release_date",
		},
		{
			name:  "empty input yields the default ordering",
			param: "",
			want:  "studio, code, title, release_date",
		},
		{
			name:  "default sort parameter",
			param: production.DefaultSort,
			want:  "studio ASC, code ASC, title ASC, release_date ASC",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, production.CompileSort(tc.param))
		})
	}
}

/*
TestCompileSort_BogusTokenEquivalence verifies that a bogus token alongside
a valid one behaves identically to the valid token alone.
*/
func TestCompileSort_BogusTokenEquivalence(t *testing.T) {
	assert.Equal(t,
		production.CompileSort("code_asc"),
		production.CompileSort("bogus_asc,code_asc"))
}
