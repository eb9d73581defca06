// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/roadtrip/internal/metrics"
	"github.com/tomtom215/roadtrip/internal/models"
)

func placeNames(ps []models.Place) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

func equalNames(t *testing.T, got []models.Place, want ...string) {
	t.Helper()
	names := placeNames(got)
	if len(names) != len(want) {
		t.Fatalf("got %q, want %q", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %q, want %q", names, want)
		}
	}
}

func TestRankerMatchesAndDeduplicates(t *testing.T) {
	t.Parallel()

	chat := &fakeChat{reply: "1. Cafe Du Monde\n2. The Ritz Hotel\n3. Cafe Du Monde"}
	r := NewRanker(chat, DefaultConfig())

	got := r.Rank(context.Background(), places("Cafe du Monde", "The Ritz"), "rank_match")
	equalNames(t, got, "Cafe du Monde", "The Ritz")

	if v := testutil.ToFloat64(metrics.RankerOutcomes.WithLabelValues("rank_match", OutcomeMatched)); v != 1 {
		t.Errorf("matched outcomes = %v, want 1", v)
	}
}

func TestRankerFollowsReplyOrder(t *testing.T) {
	t.Parallel()

	chat := &fakeChat{reply: "Ranking:\n1. Cochon\n2. Arnaud's\n3. Brennan's"}
	r := NewRanker(chat, DefaultConfig())

	got := r.Rank(context.Background(), places("Arnaud's", "Brennan's", "Cochon"), "restaurants")
	equalNames(t, got, "Cochon", "Arnaud's", "Brennan's")
}

func TestRankerFallbackWithoutNumberedLines(t *testing.T) {
	t.Parallel()

	chat := &fakeChat{reply: "I'm sorry, I can't rank these places."}
	r := NewRanker(chat, DefaultConfig())

	in := places("A1", "B2", "C3", "D4", "E5", "F6", "G7")
	got := r.Rank(context.Background(), in, "rank_fallback")
	equalNames(t, got, "A1", "B2", "C3", "D4", "E5")

	if v := testutil.ToFloat64(metrics.RankerOutcomes.WithLabelValues("rank_fallback", OutcomeFallback)); v != 1 {
		t.Errorf("fallback outcomes = %v, want 1", v)
	}
}

func TestRankerFallbackWhenNothingMatches(t *testing.T) {
	t.Parallel()

	chat := &fakeChat{reply: "1. Commander's Palace\n2. Galatoire's"}
	r := NewRanker(chat, DefaultConfig())

	got := r.Rank(context.Background(), places("Cochon", "Felix's"), "restaurants")
	equalNames(t, got, "Cochon", "Felix's")
}

func TestRankerFallbackOnLLMError(t *testing.T) {
	t.Parallel()

	chat := &fakeChat{err: errors.New("llm unavailable")}
	r := NewRanker(chat, DefaultConfig())

	in := places("A1", "B2", "C3", "D4", "E5", "F6")
	got := r.Rank(context.Background(), in, "rank_llm_error")
	equalNames(t, got, "A1", "B2", "C3", "D4", "E5")

	if v := testutil.ToFloat64(metrics.RankerOutcomes.WithLabelValues("rank_llm_error", OutcomeLLMError)); v != 1 {
		t.Errorf("llm_error outcomes = %v, want 1", v)
	}
}

func TestRankerStopsAtMaxRanked(t *testing.T) {
	t.Parallel()

	names := []string{"Arnaud's", "Brennan's", "Cochon", "Domilise's", "Elizabeth's", "Felix's", "Galatoire's"}
	chat := &fakeChat{reply: "1. Galatoire's\n2. Felix's\n3. Elizabeth's\n4. Domilise's\n5. Cochon\n6. Brennan's\n7. Arnaud's"}
	r := NewRanker(chat, DefaultConfig())

	got := r.Rank(context.Background(), places(names...), "restaurants")
	equalNames(t, got, "Galatoire's", "Felix's", "Elizabeth's", "Domilise's", "Cochon")
}

func TestRankerSameNormalizedNameKeepsLast(t *testing.T) {
	t.Parallel()

	in := []models.Place{
		{Name: "Joe's", PlaceID: "first"},
		{Name: "Joes", PlaceID: "second"},
	}
	chat := &fakeChat{reply: "1. Joes"}
	r := NewRanker(chat, DefaultConfig())

	got := r.Rank(context.Background(), in, "restaurants")
	if len(got) != 1 || got[0].PlaceID != "second" {
		t.Errorf("Rank() = %+v, want only place 'second'", got)
	}
}

func TestRankerPrompt(t *testing.T) {
	t.Parallel()

	chat := &fakeChat{reply: "1. Hotel Monteleone"}
	r := NewRanker(chat, DefaultConfig())

	in := []models.Place{
		{Name: "Hotel Monteleone", PlaceID: "a", Rating: models.RatingOf(4.5)},
		{Name: "The Roosevelt", PlaceID: "b", Rating: models.RatingOf(4)},
		{Name: "Pontchartrain", PlaceID: "c"},
	}
	r.Rank(context.Background(), in, "hotels")

	wantUser := "Rank these hotels based on reviews and relevance:\n" +
		"- Hotel Monteleone (Rating: 4.5)\n" +
		"- The Roosevelt (Rating: 4.0)\n" +
		"- Pontchartrain (Rating: N/A)\n"
	if chat.user != wantUser {
		t.Errorf("user prompt = %q, want %q", chat.user, wantUser)
	}
	if chat.system != rankSystemPrompt {
		t.Errorf("system prompt = %q", chat.system)
	}
}

func TestRankerEmptyInput(t *testing.T) {
	t.Parallel()

	chat := &fakeChat{reply: "1. anything"}
	r := NewRanker(chat, DefaultConfig())

	if got := r.Rank(context.Background(), nil, "hotels"); len(got) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", got)
	}
	if chat.calls != 0 {
		t.Errorf("LLM called %d times for empty input", chat.calls)
	}
}
