// Copyright (c) 2026 GVDB. All rights reserved.

/*
HTTP interface for the production domain.

The search endpoints keep the two leniency policies apart: malformed filter
identifiers (actor ids, studio ids) reject the request with a 400, while
malformed sort tokens are dropped silently by the sort compiler.
*/
package production

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

// searchPageSize is the default per_page for the catalog search.
const searchPageSize = 30

// Handler implements the HTTP layer for production search and editing.
type Handler struct {
	service *Service
}

// NewHandler constructs a new production [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the production endpoints on the API router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/search", handler.search)
	router.Get("/segments/{parent_id}", handler.segments)
	router.Get("/search_albums", handler.searchAlbums)
	router.Get("/search_productions", handler.searchProductions)
	router.Get("/production/{id}", handler.getProduction)
	router.Put("/production/{id}", handler.updateProduction)
	router.Post("/productions", handler.createProduction)
}

/*
GET /api/search.

Query params: studios, actors, types, sex_acts, styles, body_types,
sources, keyword, date_from, date_to, sort, page, per_page.

Response: {total, page, per_page, total_pages, results[]} where each result
is a view row plus the resolved "actors" string and []-normalized arrays.
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	filter := SearchFilter{
		Studios:   query.Strings(queryParams.Get("studios")),
		SexActs:   query.Strings(queryParams.Get("sex_acts")),
		Styles:    query.Strings(queryParams.Get("styles")),
		BodyTypes: query.Strings(queryParams.Get("body_types")),
		Sources:   query.Strings(queryParams.Get("sources")),
		Keyword:   queryParams.Get("keyword"),
		DateFrom:  queryParams.Get("date_from"),
		DateTo:    queryParams.Get("date_to"),
	}

	// A present types parameter with no recognised tokens must stay
	// distinguishable from an absent one (no predicate vs. the default).
	if raw := queryParams.Get("types"); raw != "" {
		filter.Types = query.Strings(raw)
		if filter.Types == nil {
			filter.Types = []string{}
		}
	}

	actorIDs, err := query.Ints(queryParams.Get("actors"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid actors filter", apperr.FieldError{
			Field:   "actors",
			Message: "Must be a comma-separated list of integer ids",
		}))
		return
	}
	filter.ActorIDs = actorIDs

	params := pagination.FromRequest(request, searchPageSize)

	results, meta, err := handler.service.Search(request.Context(), filter, queryParams.Get("sort"), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, results, meta)
}

// GET /api/segments/{parent_id}. Segment rows of one album, ordered by code.
func (handler *Handler) segments(writer http.ResponseWriter, request *http.Request) {
	parentID, err := requestutil.IntParam(request, "parent_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	results, err := handler.service.Segments(request.Context(), parentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}

// GET /api/search_albums?q=. Album autocomplete, latest ten.
func (handler *Handler) searchAlbums(writer http.ResponseWriter, request *http.Request) {
	results, err := handler.service.SearchAlbums(request.Context(), request.URL.Query().Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}

// GET /api/search_productions. Production picker for edit forms.
func (handler *Handler) searchProductions(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	studioIDs, err := query.Ints(queryParams.Get("studios"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid studios filter", apperr.FieldError{
			Field:   "studios",
			Message: "Must be a comma-separated list of integer ids",
		}))
		return
	}

	filter := PickerFilter{
		Query:     queryParams.Get("q"),
		StudioIDs: studioIDs,
		Types:     query.Strings(queryParams.Get("types")),
		Limit:     convert.ToIntD(queryParams.Get("limit"), 10),
	}

	results, err := handler.service.Picker(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}

// GET /api/production/{id}. Full production detail for the edit form.
func (handler *Handler) getProduction(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	production, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, production)
}

/*
PUT /api/production/{id}.

Atomically applies field edits, performer deletions/inserts/role updates,
and a full tag-set replacement. Rejects duplicate codes and, for
non-segments, missing studio or release date.
*/
func (handler *Handler) updateProduction(writer http.ResponseWriter, request *http.Request) {
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

	respond.OK(writer, map[string]any{"success": true, "message": "Production updated"})
}

// POST /api/productions. Creates a production with its performances/tags.
func (handler *Handler) createProduction(writer http.ResponseWriter, request *http.Request) {
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

	respond.Created(writer, map[string]any{"id": id, "code": input.Code})
}
