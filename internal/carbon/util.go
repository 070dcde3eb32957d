package carbon

import (
	"math"
	"strconv"
	"strings"
)

// floatOrZero converts a raw input string to a float, treating blank or
// unparsable values as 0. Estimation never fails on a malformed numeric;
// the validator is responsible for rejecting them earlier.
func floatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// intOrZero converts a raw input string to an int, treating blank or
// unparsable values as 0. Fractional values are truncated.
func intOrZero(s string) int {
	return int(floatOrZero(s))
}

// firstWord returns the first whitespace-separated word of a selection
// label, so "High (Locally Grown)" matches on "High".
func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// finalize clamps a computed total to >= 0 and rounds it to the standard
// result precision. Applied exactly once, at the very end of an estimate.
func finalize(total float64) float64 {
	if total < 0 {
		total = 0
	}
	shift := math.Pow(10, resultPrecision)
	return math.Round(total*shift) / shift
}
