// Copyright (c) 2026 GVDB. All rights reserved.

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gvdb/internal/platform/respond"
)

// Handler implements the HTTP layer for reference lookups.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the reference endpoints on the API router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/filter-options", handler.filterOptions)
	router.Get("/actors/filters", handler.actorFilters)
}

// GET /api/filter-options. Studio names and ordered tag facets.
func (handler *Handler) filterOptions(writer http.ResponseWriter, request *http.Request) {
	options, err := handler.service.FilterOptions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, options)
}

// GET /api/actors/filters. Studio references and sort descriptors.
func (handler *Handler) actorFilters(writer http.ResponseWriter, request *http.Request) {
	filters, err := handler.service.ActorFilters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, filters)
}
