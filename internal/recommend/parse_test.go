// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"math"
	"reflect"
	"testing"
)

func TestParseRankedNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain numbered list",
			text: "1. Cafe Du Monde\n2. The Ritz Hotel",
			want: []string{"cafe du monde", "the ritz hotel"},
		},
		{
			name: "markdown bold with rating suffix",
			text: "1. **Commander's Palace** (Rating: 4.7)\n2. **Galatoire's** (Rating: 4.6)",
			want: []string{"commanders palace", "galatoires"},
		},
		{
			name: "parenthesis numbering and indentation",
			text: "  1) Cochon\n   2) Domilise's Po-Boys",
			want: []string{"cochon", "domilises poboys"},
		},
		{
			name: "prose and bullets are ignored",
			text: "Here is my ranking:\n- Cafe Beignet\n1. Cafe Beignet\nHope this helps!",
			want: []string{"cafe beignet"},
		},
		{
			name: "empty names are skipped",
			text: "1.\n2. ***\n3. Arnaud's",
			want: []string{"arnauds"},
		},
		{
			name: "unicode names keep letters",
			text: "1. Café Amélie\n2. Ñame Bistro",
			want: []string{"café amélie", "ñame bistro"},
		},
		{
			name: "crlf line endings",
			text: "1. Felix's\r\n2. Acme Oyster House\r\n",
			want: []string{"felixs", "acme oyster house"},
		},
		{
			name: "no numbered lines",
			text: "I am unable to rank these places.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseRankedNames(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRankedNames() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Cafe du Monde", "cafe du monde"},
		{"  Joe's Crab-Shack! ", "joes crabshack"},
		{"The Ritz-Carlton, New Orleans", "the ritzcarlton new orleans"},
		{"Café Amélie", "café amélie"},
		{"snake_case_name", "snake_case_name"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := normalizeName(tt.in); got != tt.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	if got := similarity("cafe du monde", "cafe du monde"); got != 1 {
		t.Errorf("identical similarity = %v, want 1", got)
	}
	// 2*8 / (8+14)
	if got := similarity("the ritz", "the ritz hotel"); math.Abs(got-16.0/22.0) > 1e-9 {
		t.Errorf("similarity = %v, want %v", got, 16.0/22.0)
	}
	if got := similarity("abc", "xyz"); got != 0 {
		t.Errorf("disjoint similarity = %v, want 0", got)
	}
}

func TestClosestMatch(t *testing.T) {
	t.Parallel()

	candidates := []string{"cafe du monde", "the ritz", "cochon"}

	if got, ok := closestMatch("the ritz hotel", candidates, 0.7); !ok || got != "the ritz" {
		t.Errorf("closestMatch() = %q, %v, want the ritz", got, ok)
	}
	if _, ok := closestMatch("commanders palace", candidates, 0.7); ok {
		t.Error("expected no match below cutoff")
	}
	if _, ok := closestMatch("anything", nil, 0.7); ok {
		t.Error("expected no match without candidates")
	}

	// "abd" and "abe" both score 2*2/6 against "abc"; the larger key wins.
	if got, ok := closestMatch("abc", []string{"abd", "abe"}, 0.5); !ok || got != "abe" {
		t.Errorf("tie-break = %q, %v, want abe", got, ok)
	}
}
