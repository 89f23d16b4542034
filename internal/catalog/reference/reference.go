// Copyright (c) 2026 GVDB. All rights reserved.

/*
Package reference serves the dropdown and facet metadata behind the search
pages: the studio list, the tag facets with their display ordering and
icons, and the actor listing's sort descriptors.

The icon and ordering tables are fixed editorial choices. Tags that are not
listed in an ordering table still appear, after the ordered ones.
*/
package reference

import "sort"

// StyleIcons prefixes known style tags with a display icon.
var StyleIcons = map[string]string{
	"BDSM":  "🔒",
	"工作/西裝": "🤵",
	"按摩":    "💆",
	"軍警":    "🪖",
	"校園":    "🎓",
	"純愛":    "❤️",
	"迷藥":    "💊",
	"運動":    "⚽",
}

// Display ordering for the style, body type and source facets.
var (
	StyleOrder    = []string{"BDSM", "工作/西裝", "按摩", "軍警", "校園", "純愛", "迷藥", "運動"}
	BodyTypeOrder = []string{"大叔", "年輕", "熊", "壯碩", "肌肉", "精瘦", "纖瘦"}
	SourceOrder   = []string{"4horlover", "igay69", "javboys", "poapan", "notebook", "ssd", "pending", "removed", "unseen"}
)

// FacetOption is one selectable style with its decorated label.
type FacetOption struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// TagFacets groups the tag dropdowns by facet.
type TagFacets struct {
	SexActs   []string      `json:"sex_acts"`
	Styles    []FacetOption `json:"styles"`
	BodyTypes []string      `json:"body_types"`
	Sources   []string      `json:"sources"`
}

// FilterOptions is the full payload behind the search page dropdowns.
type FilterOptions struct {
	Studios []string  `json:"studios"`
	Tags    TagFacets `json:"tags"`
}

// SortOption is one actor listing sort descriptor.
type SortOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// StudioRef is a studio reference for filter dropdowns.
type StudioRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ActorFilters is the payload behind the actor listing's filter bar.
type ActorFilters struct {
	Studios     []*StudioRef `json:"studios"`
	SortOptions []SortOption `json:"sort_options"`
}

// StyleFacets decorates and orders style tags: tags in [StyleOrder] come
// first in that order with their icon, the rest follow undecorated.
func StyleFacets(tags []string) []FacetOption {
	present := make(map[string]bool, len(tags))
	for _, tag := range tags {
		present[tag] = true
	}

	options := make([]FacetOption, 0, len(tags))
	for _, name := range StyleOrder {
		if !present[name] {
			continue
		}
		display := name
		if icon := StyleIcons[name]; icon != "" {
			display = icon + " " + name
		}
		options = append(options, FacetOption{Name: name, DisplayName: display})
	}

	ordered := make(map[string]bool, len(StyleOrder))
	for _, name := range StyleOrder {
		ordered[name] = true
	}
	for _, name := range tags {
		if !ordered[name] {
			options = append(options, FacetOption{Name: name, DisplayName: name})
		}
	}

	return options
}

// OrderTags sorts tags by their position in the given ordering table.
// Unlisted tags sort after every listed one, keeping their input order.
func OrderTags(tags []string, order []string) []string {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}

	sorted := make([]string, len(tags))
	copy(sorted, tags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return tagRank(rank, sorted[i], len(order)) < tagRank(rank, sorted[j], len(order))
	})
	return sorted
}

func tagRank(rank map[string]int, tag string, unlisted int) int {
	if r, ok := rank[tag]; ok {
		return r
	}
	return unlisted
}

// ActorSortOptions lists the actor listing's sort modes with their labels.
func ActorSortOptions() []SortOption {
	return []SortOption{
		{Value: "name", Label: "按名字 (A-Z)"},
		{Value: "latest", Label: "按最新作品"},
		{Value: "count", Label: "按作品數量"},
		{Value: "newest_edit", Label: "按最新編輯"},
	}
}
