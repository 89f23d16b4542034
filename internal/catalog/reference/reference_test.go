// Copyright (c) 2026 GVDB. All rights reserved.

package reference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gvdb/internal/catalog/reference"
)

func TestStyleFacets(t *testing.T) {
	facets := reference.StyleFacets([]string{"運動", "BDSM", "純愛"})

	assert.Equal(t, []reference.FacetOption{
		{Name: "BDSM", DisplayName: "🔒 BDSM"},
		{Name: "純愛", DisplayName: "❤️ 純愛"},
		{Name: "運動", DisplayName: "⚽ 運動"},
	}, facets)
}

func TestStyleFacets_UnknownStylesAppended(t *testing.T) {
	facets := reference.StyleFacets([]string{"戶外", "校園"})

	assert.Equal(t, []reference.FacetOption{
		{Name: "校園", DisplayName: "🎓 校園"},
		{Name: "戶外", DisplayName: "戶外"},
	}, facets)
}

func TestStyleFacets_Empty(t *testing.T) {
	assert.Empty(t, reference.StyleFacets(nil))
}

func TestOrderTags(t *testing.T) {
	sources := reference.OrderTags(
		[]string{"pending", "zzz-mirror", "4horlover", "javboys"},
		reference.SourceOrder,
	)

	assert.Equal(t, []string{"4horlover", "javboys", "pending", "zzz-mirror"}, sources)
}

func TestOrderTags_UnlistedKeepInputOrder(t *testing.T) {
	bodyTypes := reference.OrderTags(
		[]string{"second-extra", "纖瘦", "first-extra", "大叔"},
		reference.BodyTypeOrder,
	)

	assert.Equal(t, []string{"大叔", "纖瘦", "second-extra", "first-extra"}, bodyTypes)
}

func TestActorSortOptions(t *testing.T) {
	options := reference.ActorSortOptions()

	values := make([]string, len(options))
	for i, option := range options {
		values[i] = option.Value
	}
	assert.Equal(t, []string{"name", "latest", "count", "newest_edit"}, values)
}
