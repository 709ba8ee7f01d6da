// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package recommend

import (
	"fmt"
	"sync"
	"time"
)

// responseCache is a TTL cache over complete responses, keyed by the
// full parameter tuple plus the similarity index version. Entries for
// an old index version can never be served because the version is part
// of the key.
type responseCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
}

type cacheEntry struct {
	response Response
	expires  time.Time
}

func newResponseCache(cfg CacheConfig) *responseCache {
	return &responseCache{
		entries:    make(map[string]cacheEntry),
		ttl:        cfg.TTL,
		maxEntries: cfg.MaxEntries,
	}
}

// cacheKey builds the lookup key from everything that affects the
// result.
func cacheKey(resolvedID string, n int, textWeight float64, minRatings int64, newAgeDays float64, indexVersion int) string {
	return fmt.Sprintf("%s|%d|%.4f|%d|%.1f|%d", resolvedID, n, textWeight, minRatings, newAgeDays, indexVersion)
}

func (c *responseCache) get(key string) (Response, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return Response{}, false
	}
	return entry.response, true
}

func (c *responseCache) put(key string, resp Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict expired entries first; if still full, drop one arbitrary
	// entry rather than grow without bound.
	if len(c.entries) >= c.maxEntries {
		now := time.Now()
		for k, e := range c.entries {
			if now.After(e.expires) {
				delete(c.entries, k)
			}
		}
		for k := range c.entries {
			if len(c.entries) < c.maxEntries {
				break
			}
			delete(c.entries, k)
		}
	}

	c.entries[key] = cacheEntry{response: resp, expires: time.Now().Add(c.ttl)}
}

func (c *responseCache) purge() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

func (c *responseCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
