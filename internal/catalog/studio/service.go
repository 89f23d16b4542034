// Copyright (c) 2026 GVDB. All rights reserved.

package studio

import (
	"context"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"gvdb/internal/platform/apperr"
	"gvdb/internal/platform/constants"
)

// Service implements studio management logic.
type Service struct {
	repo   Repository
	cache  *redis.Client
	logger *slog.Logger
}

// NewService constructs the studio service. The cache client may be nil
// when the deployment runs without Redis.
func NewService(repo Repository, cache *redis.Client, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// List returns every studio ordered by name.
func (service *Service) List(ctx context.Context) ([]*Studio, error) {
	studios, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if studios == nil {
		studios = []*Studio{}
	}
	return studios, nil
}

// Create validates and stores a new studio, then drops the cached
// filter options so the new studio shows up in search facets.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Studio, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.ValidationError("name is required")
	}

	id, err := service.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	service.invalidateFilterOptions(ctx)
	service.logger.InfoContext(ctx, "studio created",
		slog.Int("studio_id", id),
		slog.String("name", name))

	return &Studio{ID: id, Name: name}, nil
}

// Roster returns all stage names billed at a studio, pools first.
func (service *Service) Roster(ctx context.Context, studioID int) ([]*RosterEntry, error) {
	entries, err := service.repo.Roster(ctx, studioID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*RosterEntry{}
	}
	return entries, nil
}

// invalidateFilterOptions drops the cached facet payload. Cache failures
// are logged and swallowed; the entry would expire on its own anyway.
func (service *Service) invalidateFilterOptions(ctx context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Del(ctx, constants.RedisKeyFilterOptions).Err(); err != nil {
		service.logger.WarnContext(ctx, "filter options cache invalidation failed",
			slog.String("error", err.Error()))
	}
}
