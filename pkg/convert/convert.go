// Copyright (c) 2026 GVDB. All rights reserved.

/*
Package convert provides fault-tolerant string conversions.

It wraps [strconv] so that handler code parsing query parameters can fall
back to a zero or default value instead of branching on errors. Do not use
it where a malformed value must be distinguished from an absent one; parse
explicitly in that case.
*/
package convert

import (
	"strconv"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	v, _ := strconv.Atoi(s)
	return v
}

// ToIntD converts a string to an int, returning the provided default if
// parsing fails or the string is empty.
func ToIntD(s string, def int) int {
	if s == "" {
		return def
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v
	}

	return def
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}
