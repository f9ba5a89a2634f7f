// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON HTTP handlers of the newsboard API.
// Handlers parse path and query parameters as raw strings, hand them to the
// news service and shape the response envelope. Every error response has
// the form {"msg": "..."}.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsboard/internal/apperr"
	"newsboard/internal/middleware"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeRawJSON writes an already encoded JSON body.
func writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

// writeError writes the error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

// handleServiceError maps an error's kind to a status code. Unclassified
// errors are logged and answered with an opaque 500.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindBadRequest:
		writeError(w, http.StatusBadRequest, apperr.Message(err))
	case apperr.KindNotFound:
		writeError(w, http.StatusNotFound, apperr.Message(err))
	case apperr.KindConflict:
		writeError(w, http.StatusConflict, apperr.Message(err))
	default:
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, apperr.MsgInternal)
	}
}

// decodeBody decodes a JSON request body into dst. Malformed JSON, fields of
// the wrong type and oversized bodies are bad requests.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperr.Wrap(apperr.KindBadRequest, "Request body too large", err)
		}
		return apperr.Wrap(apperr.KindBadRequest, apperr.MsgBadRequest, err)
	}
	return nil
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, apperr.MsgPathNotFound)
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
