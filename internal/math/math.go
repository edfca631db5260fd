package math

import (
	"strconv"
)

// Format formats a float with 2 decimals.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
