// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

// Package api exposes the HTTP surface: recommendation queries, product
// lookup, engine configuration and health probes, all wrapped in a
// uniform JSON envelope.
package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/ssharm10/amazon-reviews/internal/logging"
)

// APIResponse is the uniform envelope for every JSON endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// APIError carries a machine-readable code plus a human message.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Meta carries response provenance.
type Meta struct {
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := APIResponse{
		Success: status < http.StatusBadRequest,
		Data:    data,
		Meta:    &Meta{RequestID: requestID, Timestamp: time.Now().UTC()},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("encode response failed")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message, Details: details},
		Meta:    &Meta{Timestamp: time.Now().UTC()},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("encode error response failed")
	}
}
