// Package util provides shared utility functions used across the application.
package util

import "strings"

// StripHash removes the # prefix from a hex colour string.
// This is useful for formats that don't expect the hash prefix.
func StripHash(hex string) string {
	return strings.TrimPrefix(hex, "#")
}

// EnsureHash prepends a # to a hex colour string if it is missing.
func EnsureHash(hex string) string {
	if hex == "" || strings.HasPrefix(hex, "#") {
		return hex
	}
	return "#" + hex
}
