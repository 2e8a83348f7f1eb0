package answer

import (
	"errors"
	"math"
)

// ErrBoundary is returned by NormedProbDiff when the expected probability
// sits exactly on the boundary the deviation points at.
var ErrBoundary = errors.New("expected probability at boundary")

const (
	// ThetaFloor and ThetaCeil bound the probability passed to Theta so the
	// logit stays finite at the extremes.
	ThetaFloor = 0.01
	ThetaCeil  = 0.99
)

// NormedProbDiff returns the signed deviation of an observed probability
// from an expected one, normalized against the distance to the nearest
// boundary (0 or 1) in the direction of the deviation.
func NormedProbDiff(expected, given float64) (float64, error) {
	diff := expected - given
	sign := -1.0
	if diff > 0 {
		sign = 1.0
	}
	den := math.Abs(expected - 0.5 + sign*0.5)
	if den == 0 {
		return 0, ErrBoundary
	}
	return math.Abs(diff) / den, nil
}

// Theta is the logit transform of prob, clamped to [ThetaFloor, ThetaCeil].
func Theta(prob float64) float64 {
	p := clamp(prob, ThetaFloor, ThetaCeil)
	return -math.Log((1 - p) / p)
}

// Sigmoid is the standard logistic function.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidShift maps x through the logistic function with a probability
// floor at c.
func SigmoidShift(x, c float64) float64 {
	return c + (1-c)*Sigmoid(x)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
