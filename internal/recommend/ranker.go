// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/metrics"
	"github.com/tomtom215/roadtrip/internal/models"
)

const rankSystemPrompt = "You are an AI assistant that ranks restaurants, hotels, and attractions based on user preferences."

// Ranker outcomes recorded in metrics.
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
	OutcomeLLMError = "llm_error"
)

// Ranker orders candidates with an LLM.
type Ranker struct {
	chat      ChatCompleter
	maxRanked int
	cutoff    float64
	logger    zerolog.Logger
}

// NewRanker creates a ranker using cfg.MaxRanked and cfg.MatchCutoff.
func NewRanker(chat ChatCompleter, cfg Config) *Ranker {
	return &Ranker{
		chat:      chat,
		maxRanked: cfg.MaxRanked,
		cutoff:    cfg.MatchCutoff,
		logger:    logging.WithComponent("ranker"),
	}
}

// Rank returns at most maxRanked places from places, ordered by the LLM.
// Every returned place is one of the inputs, with no two sharing a name.
// When the LLM fails or none of its lines match a candidate, the first
// candidates in input order are returned.
func (r *Ranker) Rank(ctx context.Context, places []models.Place, category string) []models.Place {
	if len(places) == 0 {
		return nil
	}

	reply, err := r.chat.Complete(ctx, rankSystemPrompt, rankPrompt(places, category))
	if err != nil {
		r.logger.Error().Err(err).Str("category", category).Msg("AI ranking failed, using upstream order")
		metrics.RecordRankerOutcome(category, OutcomeLLMError)
		return r.fallback(places)
	}

	ranked := r.match(ParseRankedNames(reply), places)
	if len(ranked) == 0 {
		r.logger.Warn().Str("category", category).Msg("No AI matches, using upstream order")
		metrics.RecordRankerOutcome(category, OutcomeFallback)
		return r.fallback(places)
	}

	metrics.RecordRankerOutcome(category, OutcomeMatched)
	return ranked
}

func (r *Ranker) match(names []string, places []models.Place) []models.Place {
	byName := make(map[string]models.Place, len(places))
	for _, p := range places {
		byName[normalizeName(p.Name)] = p
	}
	keys := make([]string, 0, len(byName))
	for k := range byName {
		keys = append(keys, k)
	}

	var ranked []models.Place
	seen := make(map[string]struct{})
	for _, name := range names {
		key, ok := closestMatch(name, keys, r.cutoff)
		if ok {
			place := byName[key]
			if _, dup := seen[place.Name]; !dup {
				seen[place.Name] = struct{}{}
				ranked = append(ranked, place)
			}
		}
		if len(ranked) >= r.maxRanked {
			break
		}
	}
	return ranked
}

func (r *Ranker) fallback(places []models.Place) []models.Place {
	n := min(len(places), r.maxRanked)
	out := make([]models.Place, n)
	copy(out, places[:n])
	return out
}

func rankPrompt(places []models.Place, category string) string {
	var b strings.Builder
	b.WriteString("Rank these ")
	b.WriteString(category)
	b.WriteString(" based on reviews and relevance:\n")
	for _, p := range places {
		b.WriteString("- ")
		b.WriteString(p.Name)
		b.WriteString(" (Rating: ")
		b.WriteString(p.Rating.String())
		b.WriteString(")\n")
	}
	return b.String()
}
