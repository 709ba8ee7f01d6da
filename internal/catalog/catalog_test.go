// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package catalog

import (
	"errors"
	"testing"
)

func testProducts() []Product {
	return []Product{
		{ID: "A1", Title: "Wireless Mouse", TitleCategory: "Wireless Mouse Electronics", RatingScore: 4.2, RatingCount: 120, Price: 25.99, AgeDays: 900},
		{ID: "B2", Title: "Mechanical Keyboard", TitleCategory: "Mechanical Keyboard Electronics", RatingScore: 4.5, RatingCount: 340, Price: 89.99, AgeDays: 2000},
		{ID: "C3", Title: "USB Hub", RatingScore: 3.9, RatingCount: 55, Price: 15.00, AgeDays: 400},
		{ID: "D4", Title: "USB Hub", RatingScore: 4.0, RatingCount: 80, Price: 18.50, AgeDays: 100},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
		wantErr  error
	}{
		{
			name:     "valid catalog",
			products: testProducts(),
		},
		{
			name: "duplicate id rejected",
			products: []Product{
				{ID: "A1", Title: "First"},
				{ID: "A1", Title: "Second"},
			},
			wantErr: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.products)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if c.Len() != len(tt.products) {
				t.Errorf("Len() = %d, want %d", c.Len(), len(tt.products))
			}
			if c.Version() == "" {
				t.Error("Version() is empty")
			}
		})
	}
}

func TestCatalogDoesNotAliasInput(t *testing.T) {
	products := testProducts()
	c, err := New(products)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	products[0].Title = "mutated"

	if got := c.At(0).Title; got != "Wireless Mouse" {
		t.Errorf("At(0).Title = %q after caller mutation, want %q", got, "Wireless Mouse")
	}
}

func TestResolve(t *testing.T) {
	c, err := New(testProducts())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		name    string
		query   string
		wantID  string
		wantRow int
		wantErr error
	}{
		{name: "by id", query: "B2", wantID: "B2", wantRow: 1},
		{name: "by unique title", query: "Wireless Mouse", wantID: "A1", wantRow: 0},
		{name: "id wins over title", query: "A1", wantID: "A1", wantRow: 0},
		{name: "unknown query", query: "Gaming Chair", wantErr: ErrNotFound},
		{name: "ambiguous title", query: "USB Hub", wantErr: ErrAmbiguousTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, row, err := c.Resolve(tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.query, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.query, err)
			}
			if p.ID != tt.wantID {
				t.Errorf("Resolve(%q).ID = %q, want %q", tt.query, p.ID, tt.wantID)
			}
			if row != tt.wantRow {
				t.Errorf("Resolve(%q) row = %d, want %d", tt.query, row, tt.wantRow)
			}
		})
	}
}

func TestText(t *testing.T) {
	withCategory := Product{Title: "USB Hub", TitleCategory: "USB Hub Electronics Accessories"}
	if got := withCategory.Text(); got != "USB Hub Electronics Accessories" {
		t.Errorf("Text() = %q, want combined representation", got)
	}

	titleOnly := Product{Title: "USB Hub"}
	if got := titleOnly.Text(); got != "USB Hub" {
		t.Errorf("Text() = %q, want title fallback", got)
	}
}

func TestTitlesAndSearch(t *testing.T) {
	c, err := New(testProducts())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	titles := c.Titles()
	if len(titles) != 3 {
		t.Fatalf("Titles() returned %d entries, want 3 distinct titles", len(titles))
	}
	if titles[0] != "Wireless Mouse" {
		t.Errorf("Titles()[0] = %q, want row order preserved", titles[0])
	}

	hits := c.SearchTitles("usb", 10)
	if len(hits) != 1 || hits[0] != "USB Hub" {
		t.Errorf("SearchTitles(usb) = %v, want [USB Hub]", hits)
	}

	if got := c.SearchTitles("", 2); len(got) != 2 {
		t.Errorf("SearchTitles with empty query and limit 2 returned %d entries", len(got))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr bool
	}{
		{
			name: "valid snapshot",
			data: `[
				{"parent_asin":"A1","product_title":"Wireless Mouse","bayesian_rating":4.2,"rating_number":120,"price":25.99,"product_age_days":900},
				{"parent_asin":"B2","product_title":"Mechanical Keyboard","bayesian_rating":4.5,"rating_number":340,"price":89.99,"product_age_days":2000}
			]`,
			wantLen: 2,
		},
		{
			name:    "missing title rejected",
			data:    `[{"parent_asin":"A1","bayesian_rating":4.2,"rating_number":120,"price":25.99,"product_age_days":900}]`,
			wantErr: true,
		},
		{
			name:    "negative rating count rejected",
			data:    `[{"parent_asin":"A1","product_title":"Mouse","rating_number":-5}]`,
			wantErr: true,
		},
		{
			name:    "empty array rejected",
			data:    `[]`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			data:    `{not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if c.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
		})
	}
}
