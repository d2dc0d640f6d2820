package service

import "math"

// RoundingPrecision is the divisor used for two-decimal monetary rounding.
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places. Used throughout the
// service layer so every monetary figure leaves the core with consistent
// 0.01 precision.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
