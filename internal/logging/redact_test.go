// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package logging

import (
	"strings"
	"testing"
)

func TestSanitizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"short", "***"},
		{"exactly12chr", "***"},
		{"AIzaSyD-1234567890abcdef", "AIza...cdef"},
	}
	for _, tt := range tests {
		if got := SanitizeToken(tt.in); got != tt.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRedactURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		contains []string
		absent   []string
	}{
		{
			name:     "google key",
			in:       "https://maps.googleapis.com/maps/api/geocode/json?address=Memphis&key=AIzaSyD-1234567890abcdef",
			contains: []string{"address=Memphis", "key=AIza...cdef"},
			absent:   []string{"1234567890"},
		},
		{
			name:     "weather key short",
			in:       "https://api.weatherapi.com/v1/current.json?key=abc&q=Austin",
			contains: []string{"key=%2A%2A%2A", "q=Austin"},
			absent:   []string{"key=abc"},
		},
		{
			name:     "no query",
			in:       "https://example.com/openai/deployments/gpt/chat/completions",
			contains: []string{"https://example.com/openai/deployments/gpt/chat/completions"},
		},
		{
			name:     "no secrets untouched",
			in:       "https://example.com/x?b=2&a=1",
			contains: []string{"https://example.com/x?b=2&a=1"},
		},
		{
			name:   "unparseable drops query",
			in:     "http://[::1%zz/path?key=secretsecretsecret",
			absent: []string{"secretsecretsecret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RedactURL(tt.in)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("RedactURL() = %q, missing %q", got, want)
				}
			}
			for _, bad := range tt.absent {
				if strings.Contains(got, bad) {
					t.Errorf("RedactURL() = %q, still contains %q", got, bad)
				}
			}
		})
	}
}
