// Copyright (c) 2026 GVDB. All rights reserved.

package studio

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "gvdb/internal/platform/request"
	"gvdb/internal/platform/respond"
)

// Handler implements the HTTP layer for studios.
type Handler struct {
	service *Service
}

// NewHandler constructs a new studio [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the studio endpoints on the API router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/studios", handler.list)
	router.Post("/studios", handler.create)
	router.Get("/studio_actors/{studio_id}", handler.roster)
}

// GET /api/studios. Every studio as {id, name}, ordered by name.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	studios, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, studios)
}

// POST /api/studios. Creates a studio and seeds its pool stage names.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	studio, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, studio)
}

// GET /api/studio_actors/{studio_id}. The studio's roster, pools first.
func (handler *Handler) roster(writer http.ResponseWriter, request *http.Request) {
	studioID, err := requestutil.IntParam(request, "studio_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, err := handler.service.Roster(request.Context(), studioID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}
