// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package to contains small generic helpers for the pointer-heavy Azure SDK models.
package to

// Ptr returns a pointer to the supplied value.
func Ptr[T any](v T) *T {
	return &v
}

// ValOrZero returns the value of the pointer or the zero value of the type if the pointer is nil.
func ValOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// ValOrDefault returns the value of the pointer, or def if the pointer is nil or points at the zero value.
func ValOrDefault[T comparable](v *T, def T) T {
	var zero T
	if v == nil || *v == zero {
		return def
	}
	return *v
}
