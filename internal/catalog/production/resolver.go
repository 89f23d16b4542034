// Copyright (c) 2026 GVDB. All rights reserved.

package production

import (
	"sort"
	"strings"

	"gvdb/pkg/slice"
)

// anonymousMarkers identify stage names billed to the shared placeholder
// pools. Names containing a marker never appear in resolved credit lines.
var anonymousMarkers = []string{"墨鏡", "路人"}

// Credit is one resolved performance used for display ordering.
type Credit struct {
	Name string
	Role *string
}

// RoleRank returns the display precedence of a credited role. Unset or
// unrecognised roles rank last.
func RoleRank(role *string) int {
	if role == nil {
		return 5
	}
	switch *role {
	case RoleTop:
		return 1
	case RoleBottom:
		return 2
	case RoleGiver:
		return 3
	case RoleReceiver:
		return 4
	}
	return 5
}

// JoinAlbumNames builds an album row's credit line. Role is meaningless at
// album granularity, so names order lexically before placeholder filtering.
func JoinAlbumNames(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	return strings.Join(DropAnonymous(sorted), ", ")
}

// JoinCredits builds a single/segment row's credit line: role precedence
// first, stage-name lexical order as the tie-break within a rank.
func JoinCredits(credits []Credit) string {
	ordered := make([]Credit, len(credits))
	copy(ordered, credits)

	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := RoleRank(ordered[i].Role), RoleRank(ordered[j].Role)
		if ri != rj {
			return ri < rj
		}
		return ordered[i].Name < ordered[j].Name
	})

	names := slice.Map(ordered, func(c Credit) string { return c.Name })
	return strings.Join(DropAnonymous(names), ", ")
}

// DropAnonymous removes placeholder stage names from a name list.
func DropAnonymous(names []string) []string {
	kept := slice.Filter(names, func(name string) bool {
		for _, marker := range anonymousMarkers {
			if strings.Contains(name, marker) {
				return false
			}
		}
		return true
	})
	if kept == nil {
		return []string{}
	}
	return kept
}
