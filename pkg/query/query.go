// Copyright (c) 2026 GVDB. All rights reserved.

// Package query parses comma-separated query-string values into typed slices.
//
// Two parsing policies coexist deliberately: [Ints] rejects malformed input
// (filter identifiers are whitelist-then-reject), while [Strings] merely
// trims and drops empties (free-form name lists).
package query

import (
	"strconv"
	"strings"
)

// Strings parses a single comma-separated query string into a trimmed
// slice of strings. Empty entries are dropped; an empty input yields nil.
func Strings(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Ints parses a comma-separated list of integer identifiers.
//
// Unlike [Strings], any malformed entry is an error: identifier filters must
// fail loudly rather than silently narrowing the result set.
func Ints(val string) ([]int, error) {
	if val == "" {
		return nil, nil
	}
	var res []int
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean == "" {
			continue
		}
		i, err := strconv.Atoi(clean)
		if err != nil {
			return nil, err
		}
		res = append(res, i)
	}
	return res, nil
}
