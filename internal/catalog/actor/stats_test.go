// Copyright (c) 2026 GVDB. All rights reserved.

package actor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gvdb/internal/catalog/actor"
)

func TestPercentages(t *testing.T) {
	breakdown := actor.RoleBreakdown{Top: 3, Bottom: 1, Giver: 0, Receiver: 0, Other: 0}

	pct := breakdown.Percentages()

	assert.Equal(t, 75, pct.Top)
	assert.Equal(t, 25, pct.Bottom)
	assert.Equal(t, 0, pct.Giver)
}

func TestPercentages_Rounding(t *testing.T) {
	// 1/3 and 2/3 round to 33 and 67, not truncate.
	breakdown := actor.RoleBreakdown{Top: 1, Bottom: 2}

	pct := breakdown.Percentages()

	assert.Equal(t, 33, pct.Top)
	assert.Equal(t, 67, pct.Bottom)
}

func TestPercentages_ZeroTotal(t *testing.T) {
	pct := actor.RoleBreakdown{}.Percentages()

	assert.Equal(t, actor.RoleBreakdown{}, pct)
}

func TestSortRows_Name(t *testing.T) {
	rows := []*actor.AggregateRow{
		{ActorTag: "charlie"},
		{ActorTag: "alpha"},
		{ActorTag: "bravo"},
	}

	actor.SortRows(rows, actor.SortName, "asc")
	assert.Equal(t, "alpha", rows[0].ActorTag)
	assert.Equal(t, "charlie", rows[2].ActorTag)

	actor.SortRows(rows, actor.SortName, "desc")
	assert.Equal(t, "charlie", rows[0].ActorTag)
	assert.Equal(t, "alpha", rows[2].ActorTag)
}

func TestSortRows_LatestAlwaysDescending(t *testing.T) {
	early := "2023.04"
	late := "2025.11"
	rows := []*actor.AggregateRow{
		{ActorTag: "old", LatestDate: &early},
		{ActorTag: "new", LatestDate: &late},
		{ActorTag: "never"},
	}

	// The latest sort ignores sort_order and always ranks newest first.
	actor.SortRows(rows, actor.SortLatest, "asc")

	assert.Equal(t, "new", rows[0].ActorTag)
	assert.Equal(t, "old", rows[1].ActorTag)
	assert.Equal(t, "never", rows[2].ActorTag)
}

func TestSortRows_CountAlwaysDescending(t *testing.T) {
	rows := []*actor.AggregateRow{
		{ActorTag: "few", TotalProductions: 2},
		{ActorTag: "many", TotalProductions: 40},
	}

	actor.SortRows(rows, actor.SortCount, "asc")

	assert.Equal(t, "many", rows[0].ActorTag)
}

func TestSortRows_NewestEdit(t *testing.T) {
	older := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	rows := []*actor.AggregateRow{
		{ActorTag: "stale", LatestEdit: &older},
		{ActorTag: "untouched"},
		{ActorTag: "fresh", LatestEdit: &newer},
	}

	actor.SortRows(rows, actor.SortNewestEdit, "")

	assert.Equal(t, "fresh", rows[0].ActorTag)
	assert.Equal(t, "stale", rows[1].ActorTag)
	assert.Equal(t, "untouched", rows[2].ActorTag)
}

func TestSortRows_StableOnTies(t *testing.T) {
	date := "2025.01"
	rows := []*actor.AggregateRow{
		{ActorTag: "first", LatestDate: &date},
		{ActorTag: "second", LatestDate: &date},
	}

	actor.SortRows(rows, actor.SortLatest, "")

	assert.Equal(t, "first", rows[0].ActorTag)
	assert.Equal(t, "second", rows[1].ActorTag)
}
