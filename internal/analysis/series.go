package analysis

import "math"

// ZeroCrossings counts index positions where the sign of x flips between
// consecutive samples. Exact zeros carry the previous sign forward so a
// touch of the axis is not double counted.
func ZeroCrossings(x []float64) int {
	crossings := 0
	prev := 0.0
	for _, v := range x {
		s := sign(v)
		if s == 0 {
			continue
		}
		if prev != 0 && s != prev {
			crossings++
		}
		prev = s
	}
	return crossings
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Square returns the elementwise square of xs.
func Square(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = v * v
	}
	return out
}

func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, v := range xs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func MaxAbs(xs []float64) float64 {
	m := 0.0
	for _, v := range xs {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// HasNonFinite reports whether xs contains a NaN or infinite value.
func HasNonFinite(xs []float64) bool {
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
