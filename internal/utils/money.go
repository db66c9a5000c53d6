package utils

import "strconv"

// FormatLKR renders a ticket price as "LKR 1250". Missing or zero prices render as fallback.
func FormatLKR(price *float64, fallback string) string {
	if price == nil || *price == 0 {
		return fallback
	}
	return "LKR " + strconv.FormatFloat(*price, 'f', -1, 64)
}
