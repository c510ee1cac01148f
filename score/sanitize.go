package score

import "math"

// Valid reports whether a raw numeric field is usable. Upstream sensors ship
// NaN and infinite values through JSON-relaxed channels; those are treated as
// absent, never coerced to zero.
func Valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidPositive is Valid plus the strictly-positive constraint applied to
// speed and PM2.5 readings.
func ValidPositive(v float64) bool {
	return Valid(v) && v > 0
}

// OptionalValue unwraps an optional reading, reporting absence for nil
// pointers and unusable values alike.
func OptionalValue(v *float64) (float64, bool) {
	if v == nil || !Valid(*v) {
		return 0, false
	}
	return *v, true
}

// OptionalPositive is OptionalValue with the strictly-positive constraint.
func OptionalPositive(v *float64) (float64, bool) {
	if v == nil || !ValidPositive(*v) {
		return 0, false
	}
	return *v, true
}
