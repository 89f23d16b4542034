// Copyright (c) 2026 GVDB. All rights reserved.

/*
Package pointer provides generic helpers for creating and dereferencing
pointers without boilerplate.
*/
package pointer

// To returns a pointer to the provided value.
// Useful when a struct field or function parameter expects a pointer to a
// primitive (e.g. pointer.To("something")).
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
