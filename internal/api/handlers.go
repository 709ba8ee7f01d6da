// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/ssharm10/amazon-reviews/internal/catalog"
	"github.com/ssharm10/amazon-reviews/internal/logging"
	"github.com/ssharm10/amazon-reviews/internal/recommend"
	"github.com/ssharm10/amazon-reviews/internal/validation"
)

// requestTimeout bounds handler work beyond the client's own deadline.
const requestTimeout = 10 * time.Second

// Handlers serves the API over the engine and catalog.
type Handlers struct {
	engine *recommend.Engine
	cat    *catalog.Catalog
}

// NewHandlers wires the API handlers.
func NewHandlers(engine *recommend.Engine, cat *catalog.Catalog) *Handlers {
	return &Handlers{engine: engine, cat: cat}
}

// recommendParams are the validated query parameters of the
// recommendations endpoint. Pointer fields are optional overrides. The
// engine clamps n to the configured maximum and reports the applied
// value as effective_n in the response metadata.
type recommendParams struct {
	Query      string   `validate:"required"`
	N          int      `validate:"gte=0"`
	TextWeight *float64 `validate:"omitempty,gte=0,lte=1"`
	MinRatings *int64   `validate:"omitempty,gte=0"`
	MaxAgeDays *float64 `validate:"omitempty,gte=0"`
}

// handleRecommendations serves GET /api/v1/recommendations.
func (h *Handlers) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	q := r.URL.Query()
	params := recommendParams{Query: q.Get("query")}

	var parseErr error
	params.N = intParam(q.Get("n"), 0, &parseErr)
	params.TextWeight = floatPtrParam(q.Get("text_weight"), &parseErr)
	params.MinRatings = int64PtrParam(q.Get("min_ratings"), &parseErr)
	params.MaxAgeDays = floatPtrParam(q.Get("max_age_days"), &parseErr)
	if parseErr != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", parseErr.Error(), nil)
		return
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), verr.Details())
		return
	}

	req := recommend.Request{
		Query:                params.Query,
		N:                    params.N,
		TextWeight:           params.TextWeight,
		RatingCountThreshold: params.MinRatings,
		NewItemAgeDays:       params.MaxAgeDays,
		RequestID:            middleware.GetReqID(r.Context()),
	}

	resp, err := h.engine.Recommend(ctx, req)
	if err != nil {
		h.respondRecommendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp, resp.Metadata.RequestID)
}

// respondRecommendError maps the engine's error taxonomy onto HTTP.
func (h *Handlers) respondRecommendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		respondError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, catalog.ErrAmbiguousTitle):
		respondError(w, http.StatusConflict, "AMBIGUOUS_TITLE", err.Error(), nil)
	case errors.Is(err, recommend.ErrIndexNotReady):
		respondError(w, http.StatusServiceUnavailable, "INDEX_NOT_READY", "service warming up, try again shortly", nil)
	case errors.Is(err, recommend.ErrInvalidRequest):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		respondError(w, http.StatusGatewayTimeout, "TIMEOUT", "request timed out", nil)
	default:
		logging.Error().Err(err).Msg("recommendation failed")
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "internal error", nil)
	}
}

// handleProducts serves GET /api/v1/products: titles for the search
// box, optionally filtered by the q substring.
func (h *Handlers) handleProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var parseErr error
	limit := intParam(q.Get("limit"), 100, &parseErr)
	if parseErr != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", parseErr.Error(), nil)
		return
	}
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	titles := h.cat.SearchTitles(q.Get("q"), limit)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"titles": titles,
		"total":  h.cat.Len(),
	}, middleware.GetReqID(r.Context()))
}

// handleProductByID serves GET /api/v1/products/{id}.
func (h *Handlers) handleProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := h.cat.ByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "no product with id "+id, nil)
		return
	}
	respondJSON(w, http.StatusOK, p, middleware.GetReqID(r.Context()))
}

// handleGetConfig serves GET /api/v1/recommendations/config.
func (h *Handlers) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.Config(), middleware.GetReqID(r.Context()))
}

// handlePutConfig serves PUT /api/v1/recommendations/config, swapping
// the engine configuration after validation.
func (h *Handlers) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg recommend.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "malformed config body", nil)
		return
	}
	if err := h.engine.UpdateConfig(cfg); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	respondJSON(w, http.StatusOK, h.engine.Config(), middleware.GetReqID(r.Context()))
}

// handleHealthLive serves GET /api/v1/health/live.
func (h *Handlers) handleHealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"}, middleware.GetReqID(r.Context()))
}

// handleHealthReady serves GET /api/v1/health/ready: ready once the
// similarity index is fitted.
func (h *Handlers) handleHealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.engine.Ready() {
		respondError(w, http.StatusServiceUnavailable, "INDEX_NOT_READY", "similarity index not fitted yet", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"}, middleware.GetReqID(r.Context()))
}

func intParam(raw string, def int, parseErr *error) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*parseErr = errors.New("invalid integer parameter: " + raw)
		return def
	}
	return v
}

func int64PtrParam(raw string, parseErr *error) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		*parseErr = errors.New("invalid integer parameter: " + raw)
		return nil
	}
	return &v
}

func floatPtrParam(raw string, parseErr *error) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*parseErr = errors.New("invalid numeric parameter: " + raw)
		return nil
	}
	return &v
}
