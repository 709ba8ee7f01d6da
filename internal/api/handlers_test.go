// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/ssharm10/amazon-reviews/internal/catalog"
	"github.com/ssharm10/amazon-reviews/internal/logging"
	"github.com/ssharm10/amazon-reviews/internal/recommend"
	"github.com/ssharm10/amazon-reviews/internal/textindex"
)

func testRouter(t *testing.T) *httptest.Server {
	t.Helper()

	cat, err := catalog.New([]catalog.Product{
		{ID: "A", Title: "Wireless Gaming Mouse", TitleCategory: "Wireless Gaming Mouse Electronics", RatingScore: 4.2, RatingCount: 150, Price: 30, AgeDays: 2000},
		{ID: "B", Title: "Wireless Gaming Keyboard", TitleCategory: "Wireless Gaming Keyboard Electronics", RatingScore: 4.4, RatingCount: 320, Price: 60, AgeDays: 1800},
		{ID: "C", Title: "Gaming Mouse Pad Large", TitleCategory: "Gaming Mouse Pad Large Electronics", RatingScore: 4.0, RatingCount: 90, Price: 12, AgeDays: 400},
		{ID: "D", Title: "Office Desk Lamp", TitleCategory: "Office Desk Lamp Lighting", RatingScore: 3.8, RatingCount: 45, Price: 22, AgeDays: 2500},
	})
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}

	ix := textindex.New(textindex.Config{MinDocFreq: 1})
	if err := ix.Fit(cat.Corpus()); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	var buf bytes.Buffer
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, ix, logging.NewTestLogger(&buf))
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	router := NewRouter(NewHandlers(engine, cat), RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		CORSOrigins:       []string{"*"},
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string) (int, APIResponse) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	var envelope APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode, envelope
}

func TestHealthEndpoints(t *testing.T) {
	srv := testRouter(t)

	status, body := getJSON(t, srv.URL+"/api/v1/health/live")
	if status != http.StatusOK || !body.Success {
		t.Errorf("live: status %d success %v", status, body.Success)
	}

	status, body = getJSON(t, srv.URL+"/api/v1/health/ready")
	if status != http.StatusOK || !body.Success {
		t.Errorf("ready: status %d success %v", status, body.Success)
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	srv := testRouter(t)

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "ok by id",
			url:        "/api/v1/recommendations?query=A&n=2&min_ratings=0",
			wantStatus: http.StatusOK,
		},
		{
			name:       "ok by title",
			url:        "/api/v1/recommendations?query=Wireless+Gaming+Mouse&min_ratings=0",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown product",
			url:        "/api/v1/recommendations?query=Nonexistent+Product",
			wantStatus: http.StatusNotFound,
			wantCode:   "PRODUCT_NOT_FOUND",
		},
		{
			name:       "missing query",
			url:        "/api/v1/recommendations",
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "bad text weight",
			url:        "/api/v1/recommendations?query=A&text_weight=1.5",
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "unparseable n",
			url:        "/api/v1/recommendations?query=A&n=abc",
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := getJSON(t, srv.URL+tt.url)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", status, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if body.Error == nil || body.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %s", body.Error, tt.wantCode)
				}
			}
		})
	}
}

func TestRecommendationsSelfExcluded(t *testing.T) {
	srv := testRouter(t)

	status, body := getJSON(t, srv.URL+"/api/v1/recommendations?query=A&min_ratings=0&n=4")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	raw, err := json.Marshal(body.Data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	var resp recommend.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("no recommendations returned")
	}
	for _, item := range resp.Items {
		if item.Title == "Wireless Gaming Mouse" {
			t.Errorf("result contains the query item")
		}
	}
}

func TestRecommendationsLargeNClamped(t *testing.T) {
	srv := testRouter(t)

	// n beyond the configured maximum is accepted, clamped by the
	// engine and the applied cap surfaced as effective_n.
	status, body := getJSON(t, srv.URL+"/api/v1/recommendations?query=A&min_ratings=0&n=500")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	raw, err := json.Marshal(body.Data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	var resp recommend.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	maxN := recommend.DefaultConfig().Limits.MaxN
	if resp.Metadata.EffectiveN != maxN {
		t.Errorf("effective_n = %d, want %d", resp.Metadata.EffectiveN, maxN)
	}
	if len(resp.Items) > maxN {
		t.Errorf("result has %d rows, more than cap %d", len(resp.Items), maxN)
	}
}

func TestProductsEndpoints(t *testing.T) {
	srv := testRouter(t)

	status, body := getJSON(t, srv.URL+"/api/v1/products?q=gaming&limit=10")
	if status != http.StatusOK || !body.Success {
		t.Fatalf("products: status %d", status)
	}

	status, _ = getJSON(t, srv.URL+"/api/v1/products/B")
	if status != http.StatusOK {
		t.Errorf("products/B: status %d, want 200", status)
	}

	status, body = getJSON(t, srv.URL+"/api/v1/products/ZZ")
	if status != http.StatusNotFound || body.Error == nil {
		t.Errorf("products/ZZ: status %d, want 404", status)
	}
}

func TestConfigEndpoints(t *testing.T) {
	srv := testRouter(t)

	status, body := getJSON(t, srv.URL+"/api/v1/recommendations/config")
	if status != http.StatusOK || !body.Success {
		t.Fatalf("get config: status %d", status)
	}

	update := recommend.DefaultConfig()
	update.Limits.DefaultN = 4
	payload, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/recommendations/config", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put config: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put config: status %d", resp.StatusCode)
	}

	// Invalid config is rejected.
	bad := strings.NewReader(`{"weights":{"text":3}}`)
	req, err = http.NewRequest(http.MethodPut, srv.URL+"/api/v1/recommendations/config", bad)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put bad config: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Errorf("put bad config: status %d, want 400", resp2.StatusCode)
	}
}
