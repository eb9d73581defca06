// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package logging

import (
	"net/url"
	"strings"
)

// sensitiveKeys are parameter and header names whose values never reach the logs.
var sensitiveKeys = map[string]bool{
	"key":           true,
	"api_key":       true,
	"api-key":       true,
	"apikey":        true,
	"token":         true,
	"access_token":  true,
	"authorization": true,
	"secret":        true,
	"password":      true,
}

// SanitizeToken masks a credential, keeping the first and last four
// characters of long values.
// Example: "AIzaSyD-1234567890abcdef" -> "AIza...cdef"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// RedactURL masks credential query parameters in raw. Unparseable input is
// returned with its query dropped.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexByte(raw, '?'); i >= 0 {
			return raw[:i]
		}
		return raw
	}
	if u.RawQuery == "" {
		return raw
	}

	q := u.Query()
	changed := false
	for k, values := range q {
		if !sensitiveKeys[strings.ToLower(k)] {
			continue
		}
		for i, v := range values {
			values[i] = SanitizeToken(v)
		}
		changed = true
	}
	if !changed {
		return raw
	}
	u.RawQuery = q.Encode()
	return u.String()
}
