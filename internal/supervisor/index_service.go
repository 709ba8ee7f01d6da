// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package supervisor

import (
	"context"
	"time"

	"github.com/ssharm10/amazon-reviews/internal/catalog"
	"github.com/ssharm10/amazon-reviews/internal/logging"
	"github.com/ssharm10/amazon-reviews/internal/metrics"
	"github.com/ssharm10/amazon-reviews/internal/textindex"
)

// IndexService fits the TF-IDF index over the catalog corpus. A failed
// fit returns the error so suture restarts the service with backoff;
// once fitted, the service re-checks readiness on an interval and
// refits if the index was somehow lost.
type IndexService struct {
	index         *textindex.Index
	cat           *catalog.Catalog
	checkInterval time.Duration
}

// NewIndexService wires the index builder. checkInterval <= 0 disables
// the periodic readiness check.
func NewIndexService(index *textindex.Index, cat *catalog.Catalog, checkInterval time.Duration) *IndexService {
	return &IndexService{index: index, cat: cat, checkInterval: checkInterval}
}

// Serve implements suture.Service.
func (s *IndexService) Serve(ctx context.Context) error {
	if err := s.fit(); err != nil {
		return err
	}

	if s.checkInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.index.Ready() {
				if err := s.fit(); err != nil {
					return err
				}
			}
		}
	}
}

func (s *IndexService) fit() error {
	start := time.Now()
	if err := s.index.Fit(s.cat.Corpus()); err != nil {
		logging.Error().Err(err).Msg("index fit failed")
		return err
	}
	metrics.IndexBuildDuration.Observe(time.Since(start).Seconds())
	metrics.IndexVocabularySize.Set(float64(s.index.VocabularySize()))
	logging.Info().
		Int("products", s.cat.Len()).
		Int("vocabulary", s.index.VocabularySize()).
		Dur("elapsed", time.Since(start)).
		Msg("similarity index fitted")
	return nil
}

// String names the service in supervisor logs.
func (s *IndexService) String() string { return "text-index" }
