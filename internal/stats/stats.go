// Package stats contains the statistic helpers shared by the query views
// and the terminal plots.
package stats

import "math"

// Mean returns the arithmetic mean, or NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Std returns the sample standard deviation. Fewer than two values yield
// NaN, matching the undefined-normalization rule for tiny groups.
func Std(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	m := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// MinMax returns the smallest and largest value. An empty slice yields
// (0, 0).
func MinMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// Linspace returns n evenly spaced points from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// Histogram buckets values into bins equal-width bins between the minimum
// and maximum. It returns the per-bin counts and the bin edges
// (len(edges) == bins+1). The maximum value lands in the last bin.
func Histogram(values []float64, bins int) (counts []int, edges []float64) {
	if bins <= 0 || len(values) == 0 {
		return nil, nil
	}
	lo, hi := MinMax(values)
	counts = make([]int, bins)
	edges = Linspace(lo, hi, bins+1)
	if hi == lo {
		counts[0] = len(values)
		return counts, edges
	}
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts, edges
}

// KDE evaluates a gaussian kernel density estimate of values at each point
// of xs, using Silverman's rule of thumb for the bandwidth. Fewer than two
// values yield all NaN.
func KDE(values, xs []float64) []float64 {
	out := make([]float64, len(xs))
	if len(values) < 2 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	n := float64(len(values))
	h := Std(values) * math.Pow(4.0/(3.0*n), 0.2)
	if h == 0 || math.IsNaN(h) {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	norm := 1.0 / (n * h * math.Sqrt(2*math.Pi))
	for i, x := range xs {
		sum := 0.0
		for _, v := range values {
			u := (x - v) / h
			sum += math.Exp(-0.5 * u * u)
		}
		out[i] = norm * sum
	}
	return out
}
