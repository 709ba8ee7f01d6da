// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package recommend

import "errors"

var (
	// ErrIndexNotReady indicates the similarity index is unavailable or
	// still warming up. A fatal precondition for the request; never
	// retried internally.
	ErrIndexNotReady = errors.New("similarity index not ready")

	// ErrInvalidConfig indicates engine configuration failed validation.
	ErrInvalidConfig = errors.New("invalid recommendation config")

	// ErrInvalidRequest indicates request parameters failed validation.
	ErrInvalidRequest = errors.New("invalid recommendation request")
)
