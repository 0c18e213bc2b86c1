// Package floatutils provides utilities for working with floats
package floatutils

import "math"

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// Where returns the indices of all values in a slice for which the
// condition function returns true
func Where(values []float64, condition func(float64) bool) []int {
	var indices []int
	for i, v := range values {
		if condition(v) {
			indices = append(indices, i)
		}
	}
	return indices
}
