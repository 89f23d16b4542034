// Copyright (c) 2026 GVDB. All rights reserved.

package actor

import (
	"context"
	"fmt"
	"log/slog"

	"gvdb/internal/platform/apperr"
	"gvdb/pkg/pagination"
	"gvdb/pkg/pointer"
)

// Service implements the actor listing and management logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the actor service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

var sortModes = map[string]bool{
	SortName:       true,
	SortLatest:     true,
	SortCount:      true,
	SortNewestEdit: true,
}

// Query runs the actor listing: one aggregate pass over the whole
// candidate set, in-process sorting, then page assembly. Studio breakdowns
// and latest production codes are resolved only for the page being
// returned.
func (service *Service) Query(ctx context.Context, filter QueryFilter, sortMode, sortOrder string, params pagination.Params) ([]*QueryResult, pagination.Meta, error) {
	if !sortModes[sortMode] {
		sortMode = SortName
	}
	if sortOrder != "desc" {
		sortOrder = "asc"
	}

	rows, err := service.repo.AggregateCandidates(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	total := len(rows)
	SortRows(rows, sortMode, sortOrder)

	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	page := rows[start:end]

	ids := make([]int, len(page))
	for i, row := range page {
		ids[i] = row.ActorID
	}

	details, err := service.repo.StudioDetails(ctx, ids)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	codes, err := service.repo.LatestCodes(ctx, ids)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	results := make([]*QueryResult, 0, len(page))
	for _, row := range page {
		result := &QueryResult{
			ActorID:  row.ActorID,
			ActorTag: row.ActorTag,
			GvdbID:   row.GvdbID,
			Notes:    row.Notes,
			GlobalStats: GlobalStats{
				TotalProductions:  row.TotalProductions,
				LatestReleaseDate: row.LatestDate,
				RoleBreakdown:     row.Roles,
			},
			StudioDetails: details[row.ActorID],
		}
		if code, ok := codes[row.ActorID]; ok {
			result.GlobalStats.LatestProductionCode = pointer.To(code)
		}
		if result.StudioDetails == nil {
			result.StudioDetails = []StudioDetail{}
		}
		results = append(results, result)
	}

	return results, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Get returns one actor with its stage names.
func (service *Service) Get(ctx context.Context, id int) (*Actor, error) {
	return service.repo.FindByID(ctx, id)
}

// Update validates and applies an actor edit. The actor tag must stay
// unique across the catalog.
func (service *Service) Update(ctx context.Context, id int, input UpdateInput) error {
	if input.ActorTag == "" {
		return apperr.ValidationError("actor_tag is required")
	}

	inUse, err := service.repo.TagInUse(ctx, input.ActorTag, id)
	if err != nil {
		return err
	}
	if inUse {
		return apperr.Conflict(fmt.Sprintf("Actor tag '%s' is already in use", input.ActorTag))
	}

	if err := service.repo.Update(ctx, id, input); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "actor updated", slog.Int("actor_id", id))
	return nil
}

// Create validates and stores a new actor. At least one stage name is
// required and no studio may appear twice.
func (service *Service) Create(ctx context.Context, input CreateInput) (int, error) {
	if input.ActorTag == "" {
		return 0, apperr.ValidationError("actor_tag is required")
	}
	if len(input.StageNames) == 0 {
		return 0, apperr.ValidationError("at least one stage name is required")
	}

	seen := make(map[int]bool, len(input.StageNames))
	for _, name := range input.StageNames {
		if name.StudioID == 0 || name.StageName == "" {
			return 0, apperr.ValidationError("each stage name needs a studio_id and a stage_name")
		}
		if seen[name.StudioID] {
			return 0, apperr.ValidationError("duplicate studio in stage names")
		}
		seen[name.StudioID] = true
	}

	inUse, err := service.repo.TagInUse(ctx, input.ActorTag, 0)
	if err != nil {
		return 0, err
	}
	if inUse {
		return 0, apperr.Conflict(fmt.Sprintf("Actor tag '%s' is already in use", input.ActorTag))
	}

	id, err := service.repo.Create(ctx, input)
	if err != nil {
		return 0, err
	}

	service.logger.InfoContext(ctx, "actor created",
		slog.Int("actor_id", id),
		slog.String("actor_tag", input.ActorTag))
	return id, nil
}

// Search returns stage-name autocomplete hits.
func (service *Service) Search(ctx context.Context, query string) ([]*SearchHit, error) {
	hits, err := service.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if hits == nil {
		hits = []*SearchHit{}
	}
	return hits, nil
}

// Suggestions returns grouped actor suggestions for a query prefix.
func (service *Service) Suggestions(ctx context.Context, query string) ([]*Suggestion, error) {
	suggestions, err := service.repo.Suggestions(ctx, query)
	if err != nil {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []*Suggestion{}
	}
	return suggestions, nil
}
