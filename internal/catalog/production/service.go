// Copyright (c) 2026 GVDB. All rights reserved.

package production

import (
	"context"
	"log/slog"

	"gvdb/internal/platform/validate"
	"gvdb/pkg/pagination"
)

// Service implements the production domain's business rules on top of a
// [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the production service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Search runs a faceted catalog search: the filter compiles to one
// predicate set used for both count and fetch, the sort parameter compiles
// through the whitelist, and performer names resolve per row.
func (service *Service) Search(context context.Context, filter SearchFilter, sortParam string, params pagination.Params) ([]*SearchRow, pagination.Meta, error) {
	if sortParam == "" {
		sortParam = DefaultSort
	}
	orderBy := CompileSort(sortParam)

	results, total, err := service.repo.Search(context, filter, orderBy, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if results == nil {
		results = []*SearchRow{}
	}

	return results, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Segments returns one album's segment rows ordered by code.
func (service *Service) Segments(context context.Context, parentID int) ([]*SearchRow, error) {
	results, err := service.repo.SegmentsByParent(context, parentID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*SearchRow{}
	}
	return results, nil
}

// Get returns a production hydrated for the edit form.
func (service *Service) Get(context context.Context, id int) (*Production, error) {
	return service.repo.FindByID(context, id)
}

// Create validates and persists a new production.
func (service *Service) Create(context context.Context, input CreateInput) (int, error) {
	productionType := Type(input.Type)

	v := &validate.Validator{}
	v.Custom("type", !productionType.IsValid(), "Must be one of: single, album, segment").
		Required("code", input.Code)

	if productionType == TypeSingle || productionType == TypeAlbum {
		v.Custom("studio_id", input.StudioID == nil, "This field is required").
			Required("release_date", input.ReleaseDate).
			DateYM("release_date", input.ReleaseDate)
	}
	if productionType == TypeSegment {
		v.Required("parent_album", input.ParentCode)
	}

	if err := v.Err(); err != nil {
		return 0, err
	}

	id, err := service.repo.Create(context, input)
	if err != nil {
		return 0, err
	}

	service.logger.InfoContext(context, "production created",
		slog.Int("production_id", id),
		slog.String("code", input.Code),
		slog.String("type", input.Type))
	return id, nil
}

// Update validates and applies an edit payload atomically.
func (service *Service) Update(context context.Context, id int, input UpdateInput) error {
	productionType, err := service.repo.GetType(context, id)
	if err != nil {
		return err
	}

	v := &validate.Validator{}
	v.Required("code", input.Code)

	if input.ReleaseDate != "" {
		v.DateYM("release_date", input.ReleaseDate)
	}

	// Segments inherit studio and release date, so only non-segments
	// must carry them.
	if productionType != TypeSegment {
		v.Custom("studio_id", input.StudioID == nil, "This field is required").
			Required("release_date", input.ReleaseDate)
	}

	if err := v.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, id, productionType, input); err != nil {
		return err
	}

	service.logger.InfoContext(context, "production updated", slog.Int("production_id", id))
	return nil
}

// Picker returns productions for the edit-form picker.
func (service *Service) Picker(context context.Context, filter PickerFilter) ([]*PickerRow, error) {
	if filter.Limit < 1 || filter.Limit > 50 {
		filter.Limit = 10
	}

	results, err := service.repo.Picker(context, filter)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*PickerRow{}
	}
	return results, nil
}

// SearchAlbums returns album autocomplete suggestions.
func (service *Service) SearchAlbums(context context.Context, query string) ([]*AlbumSuggestion, error) {
	results, err := service.repo.SearchAlbums(context, query)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*AlbumSuggestion{}
	}
	return results, nil
}
