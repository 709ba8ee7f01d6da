// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

// Package supervisor owns the service lifecycle with a suture tree:
// the index service fits the similarity index and the HTTP service
// serves the API, each restarted independently on failure.
package supervisor

import (
	"context"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	"github.com/ssharm10/amazon-reviews/internal/logging"
)

// Tree is the root supervisor.
type Tree struct {
	root *suture.Supervisor
}

// NewTree builds the root supervisor with suture events routed through
// the zerolog pipeline via the slog adapter.
func NewTree() *Tree {
	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()
	root := suture.New("amazon-reviews", suture.Spec{
		EventHook: hook,
	})
	return &Tree{root: root}
}

// Add registers a service with the root supervisor.
func (t *Tree) Add(svc suture.Service) suture.ServiceToken {
	return t.root.Add(svc)
}

// Serve runs the tree until ctx is cancelled.
func (t *Tree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}
