// Package chart renders the price-performance chart: the daily close series
// with simple moving average overlays, as a single PNG image.
package chart

import "math"

// SMA computes the simple moving average of values over a trailing window.
// The result has the same length as the input; the first window-1 entries are
// NaN. A window larger than the series yields an all-NaN result.
func SMA(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if window <= 0 || len(values) < window {
		return out
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}
