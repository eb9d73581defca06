// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

var (
	// numberedLine matches lines such as "1." or "2)" after trimming.
	numberedLine = regexp.MustCompile(`^\d+[.)]`)

	// rankedName captures the name in "1. **Name** (Rating: 4.5)" and similar.
	rankedName = regexp.MustCompile(`^\s*[\d•\-]+[.)\s-]*\**(.*?)\**(?:\s*\(|$)`)
)

// ParseRankedNames extracts normalized place names from the numbered lines of
// an LLM ranking reply, in reply order. Unnumbered lines and lines whose name
// normalizes to nothing are skipped.
func ParseRankedNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if !numberedLine.MatchString(strings.TrimSpace(line)) {
			continue
		}
		m := rankedName.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := normalizeName(m[1])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// normalizeName removes every rune that is neither a word character nor
// whitespace, lowercases and trims.
func normalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(strings.ToLower(b.String()))
}

// similarity is the SequenceMatcher ratio 2*M/T between two strings,
// compared rune by rune.
func similarity(candidate, word string) float64 {
	return difflib.NewMatcher(strings.Split(candidate, ""), strings.Split(word, "")).Ratio()
}

// closestMatch returns the candidate most similar to word with a ratio of at
// least cutoff. Equal scores go to the lexicographically larger candidate.
func closestMatch(word string, candidates []string, cutoff float64) (string, bool) {
	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		score := similarity(c, word)
		if score < cutoff {
			continue
		}
		if score > bestScore || (score == bestScore && c > best) {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}
