// Copyright (c) 2026 GVDB. All rights reserved.

package actor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gvdb/internal/platform/apperr"
	requestutil "gvdb/internal/platform/request"
	"gvdb/internal/platform/respond"
	"gvdb/pkg/convert"
	"gvdb/pkg/pagination"
	"gvdb/pkg/query"
)

// Handler implements the HTTP layer for actor listing and management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new actor [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the actor endpoints on the API router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/actors/query", handler.query)
	router.Get("/actors/search", handler.search)
	router.Get("/actors/suggestions", handler.suggestions)
	router.Get("/actor/{id}", handler.getActor)
	router.Put("/actor/{id}", handler.updateActor)
	router.Post("/actors", handler.createActor)
}

/*
GET /api/actors/query.

Query params: search, studios, sort, sort_order, show_anonymous, page,
per_page.

Response: {total, page, per_page, total_pages, results[]} where each result
carries the actor's global aggregate and its per-studio breakdowns.
*/
func (handler *Handler) query(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	studioIDs, err := query.Ints(queryParams.Get("studios"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid studios filter", apperr.FieldError{
			Field:   "studios",
			Message: "Must be a comma-separated list of integer ids",
		}))
		return
	}

	filter := QueryFilter{
		Search:        queryParams.Get("search"),
		StudioIDs:     studioIDs,
		ShowAnonymous: convert.ToBool(queryParams.Get("show_anonymous")),
	}

	params := pagination.FromRequest(request, pagination.DefaultLimit)

	results, meta, err := handler.service.Query(
		request.Context(), filter,
		queryParams.Get("sort"), queryParams.Get("sort_order"),
		params,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, results, meta)
}

// GET /api/actors/search?q=. Stage-name autocomplete, first twenty hits.
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	results, err := handler.service.Search(request.Context(), request.URL.Query().Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}

// GET /api/actors/suggestions?q=. Grouped suggestions, prefix matches
// first. An empty query returns an empty list without touching the store.
func (handler *Handler) suggestions(writer http.ResponseWriter, request *http.Request) {
	q := request.URL.Query().Get("q")
	if q == "" {
		respond.OK(writer, []*Suggestion{})
		return
	}

	results, err := handler.service.Suggestions(request.Context(), q)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}

// GET /api/actor/{id}. One actor with its stage names.
func (handler *Handler) getActor(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, actor)
}

// PUT /api/actor/{id}. Updates actor fields and applies stage-name edits.
func (handler *Handler) updateActor(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), id, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"success": true, "message": "Actor updated"})
}

// POST /api/actors. Creates an actor with its initial stage names.
func (handler *Handler) createActor(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{"id": id, "actor_tag": input.ActorTag})
}
