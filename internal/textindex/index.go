// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

// Package textindex implements the TF-IDF vector space the recommendation
// engine queries for text similarity. The index is fit once over the
// catalog corpus and then serves concurrent read-only similarity lookups;
// row order of every similarity vector matches the corpus order.
package textindex

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
)

var (
	// ErrNotFitted indicates Similarity was called before Fit.
	ErrNotFitted = errors.New("text index not fitted")

	// ErrEmptyVocabulary indicates document-frequency pruning removed
	// every term, leaving nothing to index.
	ErrEmptyVocabulary = errors.New("no terms remain after document frequency pruning")
)

// Config bounds the vocabulary by document frequency. Rare terms add
// noise, near-universal terms add no signal; both are pruned at fit.
type Config struct {
	// MinDocFreq drops terms appearing in fewer than this many documents.
	MinDocFreq int

	// MaxDocFraction drops terms appearing in more than this fraction
	// of documents. Zero disables the upper bound.
	MaxDocFraction float64
}

// DefaultConfig returns pruning bounds suitable for real catalogs.
func DefaultConfig() Config {
	return Config{MinDocFreq: 2, MaxDocFraction: 0.7}
}

type posting struct {
	doc    int
	weight float64
}

// Index is a fit-once, read-many TF-IDF index.
type Index struct {
	cfg Config

	mu       sync.RWMutex
	fitted   bool
	version  int
	docs     int
	vocab    map[string]int
	idf      []float64
	postings [][]posting // term id -> (doc, normalized tf-idf weight)
}

// New returns an unfitted index with the given pruning bounds.
func New(cfg Config) *Index {
	if cfg.MinDocFreq < 1 {
		cfg.MinDocFreq = 1
	}
	return &Index{cfg: cfg}
}

// Ready reports whether the index has been fitted.
func (ix *Index) Ready() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.fitted
}

// Version increments on every successful Fit. Response caches key on it
// so stale entries die with the index they were computed against.
func (ix *Index) Version() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.version
}

// VocabularySize returns the number of indexed terms, 0 before Fit.
func (ix *Index) VocabularySize() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.idf)
}

// Fit builds the vocabulary, idf vector and L2-normalized document
// vectors from corpus. Replaces any previous fit atomically.
func (ix *Index) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return fmt.Errorf("fit: empty corpus")
	}

	docTokens := make([][]string, len(corpus))
	df := make(map[string]int)
	for i, text := range corpus {
		toks := Tokenize(text)
		docTokens[i] = toks
		for _, t := range toks {
			df[t]++ // tokens are deduplicated per document
		}
	}

	maxDF := len(corpus)
	if ix.cfg.MaxDocFraction > 0 {
		maxDF = int(ix.cfg.MaxDocFraction * float64(len(corpus)))
		if maxDF < 1 {
			maxDF = 1
		}
	}

	vocab := make(map[string]int)
	var idf []float64
	n := float64(len(corpus))
	for term, freq := range df {
		if freq < ix.cfg.MinDocFreq || freq > maxDF {
			continue
		}
		vocab[term] = len(idf)
		// Smoothed idf so every retained term keeps a positive weight.
		idf = append(idf, math.Log((1+n)/(1+float64(freq)))+1)
	}
	if len(vocab) == 0 {
		return ErrEmptyVocabulary
	}

	postings := make([][]posting, len(idf))
	for doc, toks := range docTokens {
		vec := vectorize(toks, vocab, idf)
		for term, w := range vec {
			postings[term] = append(postings[term], posting{doc: doc, weight: w})
		}
	}

	ix.mu.Lock()
	ix.fitted = true
	ix.version++
	ix.docs = len(corpus)
	ix.vocab = vocab
	ix.idf = idf
	ix.postings = postings
	ix.mu.Unlock()

	return nil
}

// Similarity returns the cosine similarity of queryText against every
// corpus document, aligned to corpus row order. Deterministic for a
// given fit; a query sharing no vocabulary with the corpus yields an
// all-zero vector, not an error.
func (ix *Index) Similarity(ctx context.Context, queryText string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if !ix.fitted {
		return nil, ErrNotFitted
	}

	sims := make([]float64, ix.docs)
	query := vectorize(Tokenize(queryText), ix.vocab, ix.idf)
	// Document and query vectors are both L2-normalized, so the dot
	// product over shared terms is the cosine similarity.
	for term, qw := range query {
		for _, p := range ix.postings[term] {
			sims[p.doc] += qw * p.weight
		}
	}
	return sims, nil
}

// vectorize maps tokens into a sparse L2-normalized tf-idf vector keyed
// by term id. Tokens outside the vocabulary are ignored.
func vectorize(tokens []string, vocab map[string]int, idf []float64) map[int]float64 {
	vec := make(map[int]float64)
	for _, t := range tokens {
		id, ok := vocab[t]
		if !ok {
			continue
		}
		vec[id] = idf[id] // tf is 1 for deduplicated tokens
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for id, w := range vec {
		vec[id] = w / norm
	}
	return vec
}
