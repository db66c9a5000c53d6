package utils

import "strings"

// ValueOr dereferences an optional display field, using fallback when it is nil or blank.
func ValueOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}
