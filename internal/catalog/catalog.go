// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

// Package catalog holds the read-only product catalog: an immutable,
// ordered snapshot of product records with id and title lookup indexes.
// Row order is fixed at construction and shared with the text similarity
// index, so similarity vectors align positionally with the catalog.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the query matched zero catalog rows.
	ErrNotFound = errors.New("product not found")

	// ErrAmbiguousTitle indicates a title lookup matched more than one
	// distinct product id. Callers must not pick a row silently.
	ErrAmbiguousTitle = errors.New("title matches multiple products")

	// ErrDuplicateID indicates the input data carried the same id twice.
	ErrDuplicateID = errors.New("duplicate product id")
)

// Product is one catalog row. Numeric fields arrive precomputed from the
// data preparation pipeline; RatingScore is already confidence-adjusted.
type Product struct {
	ID            string  `json:"parent_asin" validate:"required"`
	Title         string  `json:"product_title" validate:"required"`
	TitleCategory string  `json:"title_category"`
	RatingScore   float64 `json:"bayesian_rating" validate:"gte=0"`
	RatingCount   int64   `json:"rating_number" validate:"gte=0"`
	Price         float64 `json:"price" validate:"gte=0"`
	AgeDays       float64 `json:"product_age_days" validate:"gte=0"`
}

// Text returns the combined text representation fed to the similarity
// index: title plus category when available, title alone otherwise.
func (p Product) Text() string {
	if p.TitleCategory != "" {
		return p.TitleCategory
	}
	return p.Title
}

// Catalog is an immutable snapshot over an ordered product slice.
// Safe for concurrent readers; never mutated after construction.
type Catalog struct {
	products []Product
	byID     map[string]int
	byTitle  map[string][]int
	version  string
}

// New builds a catalog from products, rejecting duplicate ids.
// The slice is copied; the caller's data is never aliased.
func New(products []Product) (*Catalog, error) {
	rows := make([]Product, len(products))
	copy(rows, products)

	byID := make(map[string]int, len(rows))
	byTitle := make(map[string][]int, len(rows))
	hash := sha256.New()

	for i, p := range rows {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		byID[p.ID] = i
		byTitle[p.Title] = append(byTitle[p.Title], i)

		hash.Write([]byte(p.ID))
		hash.Write([]byte{0})
		hash.Write([]byte(p.Title))
		hash.Write([]byte{0})
	}

	return &Catalog{
		products: rows,
		byID:     byID,
		byTitle:  byTitle,
		version:  hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int { return len(c.products) }

// At returns the product at row i. Row order is construction order.
func (c *Catalog) At(i int) Product { return c.products[i] }

// Version is a fingerprint of catalog identity (ids and titles in row
// order). The similarity index and response caches key on it.
func (c *Catalog) Version() string { return c.version }

// ByID looks up a product by its id.
func (c *Catalog) ByID(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Resolve locates the query item by id first, then by exact title.
// A title shared by multiple distinct ids is ErrAmbiguousTitle; zero
// matches either way is ErrNotFound. Returns the row index alongside
// the product so callers can align with similarity vectors.
func (c *Catalog) Resolve(query string) (Product, int, error) {
	if i, ok := c.byID[query]; ok {
		return c.products[i], i, nil
	}
	rows := c.byTitle[query]
	switch len(rows) {
	case 0:
		return Product{}, 0, fmt.Errorf("%w: %q", ErrNotFound, query)
	case 1:
		return c.products[rows[0]], rows[0], nil
	default:
		return Product{}, 0, fmt.Errorf("%w: %q matches %d rows", ErrAmbiguousTitle, query, len(rows))
	}
}

// Titles returns every distinct product title in row order, for the
// search/autocomplete surface.
func (c *Catalog) Titles() []string {
	seen := make(map[string]struct{}, len(c.products))
	titles := make([]string, 0, len(c.products))
	for _, p := range c.products {
		if _, ok := seen[p.Title]; ok {
			continue
		}
		seen[p.Title] = struct{}{}
		titles = append(titles, p.Title)
	}
	return titles
}

// SearchTitles returns up to limit titles containing the case-insensitive
// substring q, in row order. Empty q returns the first limit titles.
func (c *Catalog) SearchTitles(q string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	q = strings.ToLower(q)
	var out []string
	for _, title := range c.Titles() {
		if q == "" || strings.Contains(strings.ToLower(title), q) {
			out = append(out, title)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Corpus returns the text representation of every row in row order,
// the input for fitting the similarity index.
func (c *Catalog) Corpus() []string {
	corpus := make([]string, len(c.products))
	for i, p := range c.products {
		corpus[i] = p.Text()
	}
	return corpus
}
