// Copyright (c) 2026 GVDB. All rights reserved.

package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gvdb/internal/catalog/production"
)

func role(name string) *string { return &name }

/*
TestRoleRank verifies the fixed credit precedence: top, bottom, giver,
receiver, then everything else including unset roles.
*/
func TestRoleRank(t *testing.T) {
	assert.Equal(t, 1, production.RoleRank(role("top")))
	assert.Equal(t, 2, production.RoleRank(role("bottom")))
	assert.Equal(t, 3, production.RoleRank(role("giver")))
	assert.Equal(t, 4, production.RoleRank(role("receiver")))
	assert.Equal(t, 5, production.RoleRank(role("narrator")))
	assert.Equal(t, 5, production.RoleRank(nil))
}

/*
TestJoinCredits verifies role-precedence ordering with a lexical tie-break
within the same rank.
*/
func TestJoinCredits(t *testing.T) {
	credits := []production.Credit{
		{Name: "Ren", Role: role("receiver")},
		{Name: "Kai", Role: role("bottom")},
		{Name: "Aoi", Role: role("bottom")},
		{Name: "Jun", Role: role("top")},
		{Name: "Sho", Role: nil},
	}

	assert.Equal(t, "Jun, Aoi, Kai, Ren, Sho", production.JoinCredits(credits))
}

/*
TestJoinCredits_DropsPlaceholders verifies that pool stage names never
surface in a resolved credit line.
*/
func TestJoinCredits_DropsPlaceholders(t *testing.T) {
	credits := []production.Credit{
		{Name: "墨鏡男（Acme）", Role: role("top")},
		{Name: "Jun", Role: role("bottom")},
		{Name: "路人甲（Acme）", Role: nil},
	}

	assert.Equal(t, "Jun", production.JoinCredits(credits))
}

/*
TestJoinAlbumNames verifies lexical ordering and placeholder filtering at
album granularity, where role does not apply.
*/
func TestJoinAlbumNames(t *testing.T) {
	assert.Equal(t, "A, B", production.JoinAlbumNames([]string{"B", "A", "墨鏡男（Acme）"}))
	assert.Equal(t, "", production.JoinAlbumNames(nil))
	assert.Equal(t, "", production.JoinAlbumNames([]string{"路人甲（Acme）"}))
}

func TestDropAnonymous(t *testing.T) {
	kept := production.DropAnonymous([]string{"Jun", "墨鏡男（Acme）", "女（Acme）", "路人甲（Acme）"})
	assert.Equal(t, []string{"Jun", "女（Acme）"}, kept)
}
