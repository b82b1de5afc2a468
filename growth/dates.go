/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"strings"
	"time"
)

// Fallback layouts for stored record timestamps, tried in order after the
// ISO-8601 variants with zone offsets. Layouts without a zone are pinned to
// UTC so parsing does not depend on the host time zone.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05.000",
}

// ParseTimestamp attempts to parse a stored timestamp string in each of the
// supported formats, first match wins. Returns nil if the input is empty or
// unparseable; callers treat nil as "skip this record".
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}

	return nil
}
