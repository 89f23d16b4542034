// Copyright (c) 2026 GVDB. All rights reserved.

package reference

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/redis/go-redis/v9"

	"gvdb/internal/platform/constants"
)

// Service assembles the reference payloads, with a Redis read-through
// cache in front of the filter options.
type Service struct {
	repo   Repository
	cache  *redis.Client
	logger *slog.Logger
}

// NewService constructs the reference service. The cache client may be
// nil when the deployment runs without Redis.
func NewService(repo Repository, cache *redis.Client, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// FilterOptions returns the search page's dropdown payload. Cache
// failures never fail the request; the payload is rebuilt from the
// database instead.
func (service *Service) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	if cached := service.fromCache(ctx); cached != nil {
		return cached, nil
	}

	studios, err := service.repo.StudioNames(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := service.repo.TagsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	sexActs := append([]string{}, byCategory["sex_act"]...)
	sort.Strings(sexActs)

	options := &FilterOptions{
		Studios: studios,
		Tags: TagFacets{
			SexActs:   sexActs,
			Styles:    StyleFacets(byCategory["style"]),
			BodyTypes: OrderTags(byCategory["body_type"], BodyTypeOrder),
			Sources:   OrderTags(byCategory["source"], SourceOrder),
		},
	}

	service.toCache(ctx, options)
	return options, nil
}

// ActorFilters returns the actor listing's studio dropdown and sort
// descriptors.
func (service *Service) ActorFilters(ctx context.Context) (*ActorFilters, error) {
	studios, err := service.repo.Studios(ctx)
	if err != nil {
		return nil, err
	}

	return &ActorFilters{
		Studios:     studios,
		SortOptions: ActorSortOptions(),
	}, nil
}

func (service *Service) fromCache(ctx context.Context) *FilterOptions {
	if service.cache == nil {
		return nil
	}

	payload, err := service.cache.Get(ctx, constants.RedisKeyFilterOptions).Bytes()
	if err != nil {
		if err != redis.Nil {
			service.logger.WarnContext(ctx, "filter options cache read failed",
				slog.String("error", err.Error()))
		}
		return nil
	}

	options := &FilterOptions{}
	if err := json.Unmarshal(payload, options); err != nil {
		service.logger.WarnContext(ctx, "filter options cache entry corrupt",
			slog.String("error", err.Error()))
		return nil
	}
	return options
}

func (service *Service) toCache(ctx context.Context, options *FilterOptions) {
	if service.cache == nil {
		return
	}

	payload, err := json.Marshal(options)
	if err != nil {
		return
	}
	if err := service.cache.Set(ctx, constants.RedisKeyFilterOptions, payload, constants.FilterOptionsTTL).Err(); err != nil {
		service.logger.WarnContext(ctx, "filter options cache write failed",
			slog.String("error", err.Error()))
	}
}
