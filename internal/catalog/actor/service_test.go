// Copyright (c) 2026 GVDB. All rights reserved.

package actor_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gvdb/internal/catalog/actor"
	"gvdb/pkg/pagination"
)

// stubRepository serves canned aggregate rows so the listing pipeline can
// be exercised without a database.
type stubRepository struct {
	actor.Repository

	rows       []*actor.AggregateRow
	details    map[int][]actor.StudioDetail
	codes      map[int]string
	detailsFor []int
}

func (stub *stubRepository) AggregateCandidates(_ context.Context, _ actor.QueryFilter) ([]*actor.AggregateRow, error) {
	return stub.rows, nil
}

func (stub *stubRepository) StudioDetails(_ context.Context, actorIDs []int) (map[int][]actor.StudioDetail, error) {
	stub.detailsFor = actorIDs
	return stub.details, nil
}

func (stub *stubRepository) LatestCodes(_ context.Context, _ []int) (map[int]string, error) {
	return stub.codes, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQuery_SortsThenPaginates(t *testing.T) {
	stub := &stubRepository{
		rows: []*actor.AggregateRow{
			{ActorID: 1, ActorTag: "delta", TotalProductions: 5},
			{ActorID: 2, ActorTag: "alpha", TotalProductions: 12},
			{ActorID: 3, ActorTag: "charlie", TotalProductions: 1},
			{ActorID: 4, ActorTag: "bravo", TotalProductions: 7},
		},
		details: map[int][]actor.StudioDetail{},
		codes:   map[int]string{},
	}
	service := actor.NewService(stub, discardLogger())

	results, meta, err := service.Query(context.Background(), actor.QueryFilter{},
		actor.SortName, "asc", pagination.Params{Page: 2, Limit: 2})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "charlie", results[0].ActorTag)
	assert.Equal(t, "delta", results[1].ActorTag)
	assert.Equal(t, 4, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)

	// Studio details are only fetched for the returned page.
	assert.Equal(t, []int{3, 1}, stub.detailsFor)
}

func TestQuery_AssemblesGlobalStats(t *testing.T) {
	date := "2026.03"
	stub := &stubRepository{
		rows: []*actor.AggregateRow{
			{
				ActorID:          7,
				ActorTag:         "kenta",
				TotalProductions: 4,
				Roles:            actor.RoleBreakdown{Top: 3, Bottom: 1},
				LatestDate:       &date,
			},
		},
		details: map[int][]actor.StudioDetail{
			7: {{StageNameID: 11, StageName: "Kenta"}},
		},
		codes: map[int]string{7: "ACME-042"},
	}
	service := actor.NewService(stub, discardLogger())

	results, _, err := service.Query(context.Background(), actor.QueryFilter{},
		actor.SortName, "asc", pagination.Params{Page: 1, Limit: 20})

	require.NoError(t, err)
	require.Len(t, results, 1)

	stats := results[0].GlobalStats
	assert.Equal(t, 4, stats.TotalProductions)
	require.NotNil(t, stats.LatestProductionCode)
	assert.Equal(t, "ACME-042", *stats.LatestProductionCode)
	require.NotNil(t, stats.LatestReleaseDate)
	assert.Equal(t, "2026.03", *stats.LatestReleaseDate)
	assert.Len(t, results[0].StudioDetails, 1)
}

func TestQuery_UnknownSortFallsBackToName(t *testing.T) {
	stub := &stubRepository{
		rows: []*actor.AggregateRow{
			{ActorID: 1, ActorTag: "zed"},
			{ActorID: 2, ActorTag: "amy"},
		},
		details: map[int][]actor.StudioDetail{},
		codes:   map[int]string{},
	}
	service := actor.NewService(stub, discardLogger())

	results, _, err := service.Query(context.Background(), actor.QueryFilter{},
		"bogus", "", pagination.Params{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, "amy", results[0].ActorTag)
}

func TestQuery_PageBeyondEnd(t *testing.T) {
	stub := &stubRepository{
		rows:    []*actor.AggregateRow{{ActorID: 1, ActorTag: "solo"}},
		details: map[int][]actor.StudioDetail{},
		codes:   map[int]string{},
	}
	service := actor.NewService(stub, discardLogger())

	results, meta, err := service.Query(context.Background(), actor.QueryFilter{},
		actor.SortName, "asc", pagination.Params{Page: 9, Limit: 20})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, meta.Total)
}
