// Copyright (c) 2026 GVDB. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses so that
// every response (success or error) across the application follows a
// predictable JSON structure the frontend can parse robustly.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"gvdb/internal/platform/apperr"
	"gvdb/internal/platform/ctxkey"
	"gvdb/pkg/pagination"
)

// Page is the JSON envelope for paginated list responses.
type Page struct {
	Total      int         `json:"total"`
	PageNumber int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
	Results    interface{} `json:"results"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload as-is.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, data)
}

// Created writes a 201 Created response with the payload as-is.
func Created(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusCreated, data)
}

// Paginated writes a 200 OK response with results and pagination metadata
// flattened into the envelope the search frontends expect.
func Paginated(writer http.ResponseWriter, results interface{}, meta pagination.Meta) {
	JSON(writer, http.StatusOK, Page{
		Total:      meta.Total,
		PageNumber: meta.Page,
		PerPage:    meta.Limit,
		TotalPages: meta.TotalPages,
		Results:    results,
	})
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", getRequestIDFromContext(request)),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", getRequestIDFromContext(request)),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// getLoggerFromContext extracts the per-request logger.
func getLoggerFromContext(request *http.Request) *slog.Logger {
	if logger, ok := request.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// getRequestIDFromContext extracts the X-Request-ID for log correlation.
func getRequestIDFromContext(request *http.Request) string {
	if id, ok := request.Context().Value(ctxkey.KeyRequestID).(string); ok {
		return id
	}
	return ""
}
