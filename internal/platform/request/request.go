// Copyright (c) 2026 GVDB. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gvdb/internal/platform/apperr"
	"gvdb/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns [validate.ErrInvalidJSON] if decoding fails.
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as an integer ID.

A malformed value is a client error, never a silent fallback: route ids
identify concrete rows and guessing at them risks touching the wrong record.
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Invalid "+name, apperr.FieldError{
			Field:   name,
			Message: "Must be an integer",
		})
	}
	return id, nil
}
