// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/ssharm10/amazon-reviews/internal/validation"
)

// Load reads a JSON catalog snapshot from path: a top-level array of
// product records as produced by the data preparation pipeline. Every
// record is validated before the catalog is built.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw JSON bytes. Split out from Load so
// tests and embedded fixtures can skip the filesystem.
func Parse(data []byte) (*Catalog, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("decode catalog: no products")
	}

	for i := range products {
		if verr := validation.ValidateStruct(&products[i]); verr != nil {
			return nil, fmt.Errorf("catalog row %d (%q): %w", i, products[i].ID, verr)
		}
	}

	return New(products)
}
