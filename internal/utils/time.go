package utils

import "strings"

// ClockHM trims "HH:MM:SS" to "HH:MM". Other shapes pass through trimmed.
func ClockHM(v string) string {
	v = strings.TrimSpace(v)
	if len(v) == 8 && v[2] == ':' && v[5] == ':' {
		return v[:5]
	}
	return v
}
