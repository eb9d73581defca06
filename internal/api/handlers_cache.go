// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package api

import (
	"net/http"

	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/logging"
)

// CacheStats is the body of GET /api/cache.
type CacheStats struct {
	Backend string         `json:"backend"`
	Entries map[string]int `json:"entries"`
	Total   int            `json:"total"`
}

// CacheSize handles GET /api/cache.
func (h *Handler) CacheSize(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.cacheStats())
}

// CacheClear handles DELETE /api/cache. With ?category= only that category
// is emptied; without it every category is.
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var categories []cache.Category
	if name := r.URL.Query().Get("category"); name != "" {
		category, err := cache.ParseCategory(name)
		if err != nil {
			rw.BadRequest(err.Error())
			return
		}
		categories = append(categories, category)
	}

	h.deps.Cache.Clear(categories...)

	cleared := "all"
	if len(categories) == 1 {
		cleared = string(categories[0])
	}
	logging.Ctx(r.Context()).Info().Str("category", cleared).Msg("Cache cleared")

	rw.Success(map[string]interface{}{
		"cleared": cleared,
		"cache":   h.cacheStats(),
	})
}

func (h *Handler) cacheStats() CacheStats {
	stats := CacheStats{
		Backend: h.deps.Cache.Backend(),
		Entries: make(map[string]int, len(cache.AllCategories)),
	}
	for category, n := range h.deps.Cache.Size() {
		stats.Entries[string(category)] = n
		stats.Total += n
	}
	return stats
}
